// Package command provides CLI command definitions for cw20-cli.
//
// It uses urfave/cli/v2 for command parsing and supports both
// single-command mode and interactive REPL mode.
package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	cliconfig "github.com/rupam-04/cw20/internal/cli/config"
	"github.com/rupam-04/cw20/internal/cli/connection"
	"github.com/rupam-04/cw20/internal/cli/repl"
)

// Build information, set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// App creates the CLI application.
func App() *cli.App {
	// CLI config file supplies flag defaults; flags and env still win.
	cfg, err := cliconfig.Load("")
	if err != nil {
		cfg = cliconfig.Default()
	}

	app := &cli.App{
		Name:    "cw20-cli",
		Usage:   "Command-line client for the CW20 token ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime),
		Flags:   globalFlags(cfg),
		Commands: []*cli.Command{
			InstantiateCommand(),
			TokenCommand(),
			BalanceCommand(),
			AllowanceCommand(),
			TxCommand(),
			AdminCommand(),
			SystemCommand(),
			ConfigCommand(),
			REPLCommand(),
		},
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags(cfg *cliconfig.CLIConfig) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "Ledger server address (e.g., localhost:5080)",
			EnvVars: []string{"CW20_SERVER"},
			Value:   cfg.DefaultServer,
		},
		&cli.StringFlag{
			Name:    "caller",
			Aliases: []string{"c"},
			Usage:   "Caller address for state-changing operations",
			EnvVars: []string{"CW20_CALLER"},
			Value:   cfg.DefaultCaller,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   cfg.DefaultOutput,
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable verbose output",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Server string
	Caller string

	// Output format
	Output string // table, json, yaml
	Wide   bool

	Verbose bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Server:  c.String("server"),
		Caller:  c.String("caller"),
		Output:  c.String("output"),
		Wide:    c.Bool("wide"),
		Verbose: c.Bool("verbose"),
	}
}

// EnsureConnected returns an HTTP client for the configured server.
func EnsureConnected(c *cli.Context) (*connection.HTTPClient, error) {
	flags := ParseGlobalFlags(c)
	return connection.NewHTTPClient(flags.Server), nil
}

// RequireCaller returns the caller address or an error when unset.
func RequireCaller(c *cli.Context) (string, error) {
	caller := c.String("caller")
	if caller == "" {
		return "", fmt.Errorf("caller address required (use --caller or CW20_CALLER)")
	}
	return caller, nil
}

// REPLCommand returns the interactive mode command.
func REPLCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "Start an interactive session",
		Action: func(c *cli.Context) error {
			r := repl.New(func(args []string) error {
				return App().Run(append([]string{"cw20-cli"}, args...))
			})
			return r.Run()
		},
	}
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
