// Package main provides the sqlseg command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlseg/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
