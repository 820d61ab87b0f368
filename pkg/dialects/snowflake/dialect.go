// Package snowflake provides the Snowflake script segmentation dialect.
// This package is pure Go with no database driver dependencies.
package snowflake

import "github.com/leapstack-labs/sqlseg/pkg/dialect"

func init() {
	dialect.Register(Snowflake)
}

// Snowflake is the Snowflake dialect.
var Snowflake = dialect.New(Config).
	Describe("Snowflake with 1578 bodies and // comments").
	Build()
