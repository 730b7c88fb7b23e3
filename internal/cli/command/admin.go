// Package command provides CLI command definitions for cw20-cli.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// AdminCommand returns the admin subcommand group for owner-only
// controls.
func AdminCommand() *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "Owner-only ledger controls",
		Subcommands: []*cli.Command{
			{
				Name:  "pause",
				Usage: "Pause state-changing operations",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Skip confirmation",
					},
				},
				Action: adminPause,
			},
			{
				Name:   "unpause",
				Usage:  "Resume state-changing operations",
				Action: adminUnpause,
			},
		},
	}
}

func adminPause(c *cli.Context) error {
	if !c.Bool("force") {
		fmt.Print("Pause the ledger? Transfers, approvals, mints, and burns will be rejected. [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	return executeMsg(c, map[string]any{
		"pause": map[string]string{},
	})
}

func adminUnpause(c *cli.Context) error {
	return executeMsg(c, map[string]any{
		"unpause": map[string]string{},
	})
}
