// Package main provides the entry point for cw20-cli.
//
// cw20-cli is the command-line client for the CW20 token ledger,
// supporting both single-command mode and interactive REPL mode.
package main

import (
	"fmt"
	"os"

	"github.com/rupam-04/cw20/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
