// Package postgres provides the PostgreSQL script segmentation dialect.
// This package is pure Go with no database driver dependencies.
package postgres

import "github.com/leapstack-labs/sqlseg/pkg/dialect"

func init() {
	dialect.Register(Postgres)
}

// Postgres is the PostgreSQL dialect.
var Postgres = dialect.New(Config).
	Describe("PostgreSQL with dollar-quoted bodies").
	Build()
