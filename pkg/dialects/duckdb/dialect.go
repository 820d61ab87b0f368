// Package duckdb provides the DuckDB script segmentation dialect.
// This package is pure Go with no database driver dependencies.
package duckdb

import "github.com/leapstack-labs/sqlseg/pkg/dialect"

func init() {
	dialect.Register(DuckDB)
}

// DuckDB is the DuckDB dialect.
var DuckDB = dialect.New(Config).
	Describe("DuckDB").
	Build()
