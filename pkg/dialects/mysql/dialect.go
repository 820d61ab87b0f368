// Package mysql provides the MySQL script segmentation dialect.
// This package is pure Go with no database driver dependencies.
package mysql

import "github.com/leapstack-labs/sqlseg/pkg/dialect"

func init() {
	dialect.Register(MySQL)
}

// MySQL is the MySQL dialect.
var MySQL = dialect.New(Config).
	Describe("MySQL / MariaDB with backtick identifiers and # comments").
	Build()
