// Package command provides CLI command definitions for cw20-cli.
package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/rupam-04/cw20/internal/cli/connection"
	"github.com/rupam-04/cw20/internal/cli/output"
)

// SystemCommand returns the system subcommand group.
func SystemCommand() *cli.Command {
	return &cli.Command{
		Name:    "system",
		Aliases: []string{"sys"},
		Usage:   "Server health commands",
		Subcommands: []*cli.Command{
			{
				Name:   "health",
				Usage:  "Check server health",
				Action: systemHealth,
			},
			{
				Name:   "ready",
				Usage:  "Check server readiness",
				Action: systemReady,
			},
		},
	}
}

func systemHealth(c *cli.Context) error {
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := client.Get(ctx, "/health")
	if err != nil {
		PrintError("Health check failed: %v", err)
		return fmt.Errorf("server unhealthy")
	}

	var result struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	flags := ParseGlobalFlags(c)
	switch output.Format(flags.Output) {
	case output.FormatJSON, output.FormatYAML:
		formatter := output.NewFormatter(output.Format(flags.Output), flags.Wide)
		return formatter.Format(os.Stdout, result)
	default:
		if result.Status == "healthy" {
			fmt.Printf("Server is healthy\n")
			fmt.Printf("  Target:  %s\n", client.BaseURL())
			fmt.Printf("  Version: %s\n", result.Version)
		} else {
			fmt.Printf("Server is unhealthy: %s\n", result.Status)
		}
		return nil
	}
}

func systemReady(c *cli.Context) error {
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := client.Get(ctx, "/ready")
	if err != nil {
		PrintError("Readiness check failed: %v", err)
		return fmt.Errorf("server not ready")
	}

	var result struct {
		Status string `json:"status"`
	}
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	flags := ParseGlobalFlags(c)
	switch output.Format(flags.Output) {
	case output.FormatJSON, output.FormatYAML:
		formatter := output.NewFormatter(output.Format(flags.Output), flags.Wide)
		return formatter.Format(os.Stdout, result)
	default:
		fmt.Printf("Server is %s\n", result.Status)
		return nil
	}
}
