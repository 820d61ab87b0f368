// Package core defines the shared data types of the sqlseg system.
//
// This package contains pure data that crosses package boundaries, such as the
// caller-owned DialectConfig. It holds no behaviour beyond copying.
//
// The Golden Rule: pkg/core imports ONLY pkg/token and stdlib.
// All other packages depend on core, not the reverse.
package core
