// Package command provides CLI command definitions for cw20-cli.
package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	cliconfig "github.com/rupam-04/cw20/internal/cli/config"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "CLI configuration management",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the CLI configuration",
				Action: configShow,
			},
			{
				Name:  "init",
				Usage: "Write a default configuration file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Overwrite an existing file",
					},
				},
				Action: configInit,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	configPath := cliconfig.DefaultConfigPath()

	fmt.Printf("CLI Configuration\n")
	fmt.Printf("=================\n\n")
	fmt.Printf("Config file: %s\n\n", configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		defaults := cliconfig.Default()
		fmt.Printf("(No configuration file found)\n")
		fmt.Printf("\nDefault settings:\n")
		fmt.Printf("  Server:  %s\n", defaults.DefaultServer)
		fmt.Printf("  Output:  %s\n", defaults.DefaultOutput)
		return nil
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	fmt.Printf("%s\n", string(content))
	return nil
}

func configInit(c *cli.Context) error {
	configPath := cliconfig.DefaultConfigPath()

	if _, err := os.Stat(configPath); err == nil && !c.Bool("force") {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
	}

	cfg := cliconfig.Default()
	if server := c.String("server"); server != "" {
		cfg.DefaultServer = server
	}
	if caller := c.String("caller"); caller != "" {
		cfg.DefaultCaller = caller
	}

	if err := cliconfig.Save(cfg, configPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Configuration written to %s\n", configPath)
	return nil
}
