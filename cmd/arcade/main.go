// Package main is the entry point for the arcade CLI.
//
// Games record their results through arcade, and players browse the
// leaderboards with it.
//
// Usage:
//
//	arcade record --player Alice --score 1500 --game snake
//	arcade top --game snake
//	arcade leaderboard
//	arcade export -o scores.csv
package main

import (
	"fmt"
	"os"

	"github.com/dataKh4n/arcadeKh4n/internal/cli"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
