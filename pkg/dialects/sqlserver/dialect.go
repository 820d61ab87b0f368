// Package sqlserver provides the SQL Server script segmentation dialect.
// This package is pure Go with no database driver dependencies.
package sqlserver

import "github.com/leapstack-labs/sqlseg/pkg/dialect"

func init() {
	dialect.Register(SQLServer)
}

// SQLServer is the SQL Server dialect.
var SQLServer = dialect.New(Config).
	Describe("SQL Server (T-SQL) with bracketed identifiers").
	Build()
