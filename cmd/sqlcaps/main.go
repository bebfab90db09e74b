// Package main provides the sqlcaps CLI.
package main

import (
	"os"

	"github.com/sqlcaps/sqlcaps/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
