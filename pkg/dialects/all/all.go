// Package all registers every built-in dialect.
//
// Import it for side effects:
//
//	import _ "github.com/leapstack-labs/sqlseg/pkg/dialects/all"
package all

import (
	_ "github.com/leapstack-labs/sqlseg/pkg/dialects/ansi"       // register ansi
	_ "github.com/leapstack-labs/sqlseg/pkg/dialects/databricks" // register databricks
	_ "github.com/leapstack-labs/sqlseg/pkg/dialects/duckdb"     // register duckdb
	_ "github.com/leapstack-labs/sqlseg/pkg/dialects/mysql"      // register mysql
	_ "github.com/leapstack-labs/sqlseg/pkg/dialects/postgres"   // register postgres
	_ "github.com/leapstack-labs/sqlseg/pkg/dialects/snowflake"  // register snowflake
	_ "github.com/leapstack-labs/sqlseg/pkg/dialects/sqlserver"  // register sqlserver
)

// Names lists the built-in dialect names.
var Names = []string{"ansi", "databricks", "duckdb", "mysql", "postgres", "snowflake", "sqlserver"}
