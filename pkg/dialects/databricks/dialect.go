// Package databricks provides the Databricks script segmentation dialect.
// This package is pure Go with no database driver dependencies.
package databricks

import "github.com/leapstack-labs/sqlseg/pkg/dialect"

func init() {
	dialect.Register(Databricks)
}

// Databricks is the Databricks dialect.
var Databricks = dialect.New(Config).
	Describe("Databricks SQL with backtick identifiers").
	Build()
