// Package command provides CLI command definitions for cw20-cli.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: Root command, global flags, REPL entry
//   - instantiate.go: Token instantiation
//   - query.go: Token info, balance, and allowance queries
//   - tx.go: State-changing operations (transfer, approve, mint, burn)
//   - admin.go: Owner-only pause controls
//   - system.go: Server health commands
//   - config.go: CLI configuration commands
//
// Commands follow a consistent pattern of parsing flags,
// calling the ledger API, and formatting output.
package command
