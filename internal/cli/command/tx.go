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

// outcomeResponse mirrors the server's execute result payload.
type outcomeResponse struct {
	Action     string `json:"action"`
	Attributes []struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"attributes,omitempty"`
}

// TxCommand returns the tx subcommand group for state-changing
// operations.
func TxCommand() *cli.Command {
	return &cli.Command{
		Name:  "tx",
		Usage: "Execute state-changing token operations",
		Subcommands: []*cli.Command{
			{
				Name:      "transfer",
				Usage:     "Transfer tokens to a recipient",
				ArgsUsage: "RECIPIENT AMOUNT",
				Action:    txTransfer,
			},
			{
				Name:      "approve",
				Usage:     "Grant a spender an additional allowance",
				ArgsUsage: "SPENDER AMOUNT",
				Action:    txApprove,
			},
			{
				Name:      "transfer-from",
				Usage:     "Transfer tokens from an owner using an allowance",
				ArgsUsage: "OWNER RECIPIENT AMOUNT",
				Action:    txTransferFrom,
			},
			{
				Name:      "decrease-allowance",
				Usage:     "Reduce a spender's allowance",
				ArgsUsage: "SPENDER AMOUNT",
				Action:    txDecreaseAllowance,
			},
			{
				Name:      "mint",
				Usage:     "Mint new tokens to a recipient (owner only)",
				ArgsUsage: "RECIPIENT AMOUNT",
				Action:    txMint,
			},
			{
				Name:      "burn",
				Usage:     "Burn tokens from the caller's balance",
				ArgsUsage: "AMOUNT",
				Action:    txBurn,
			},
		},
	}
}

func txTransfer(c *cli.Context) error {
	recipient, amount, err := twoArgs(c, "RECIPIENT", "AMOUNT")
	if err != nil {
		return err
	}
	return executeMsg(c, map[string]any{
		"transfer": map[string]string{"recipient": recipient, "amount": amount},
	})
}

func txApprove(c *cli.Context) error {
	spender, amount, err := twoArgs(c, "SPENDER", "AMOUNT")
	if err != nil {
		return err
	}
	return executeMsg(c, map[string]any{
		"approve": map[string]string{"spender": spender, "amount": amount},
	})
}

func txTransferFrom(c *cli.Context) error {
	if c.NArg() != 3 {
		return fmt.Errorf("expected OWNER RECIPIENT AMOUNT")
	}
	args := c.Args()
	return executeMsg(c, map[string]any{
		"transfer_from": map[string]string{
			"owner":     args.Get(0),
			"recipient": args.Get(1),
			"amount":    args.Get(2),
		},
	})
}

func txDecreaseAllowance(c *cli.Context) error {
	spender, amount, err := twoArgs(c, "SPENDER", "AMOUNT")
	if err != nil {
		return err
	}
	return executeMsg(c, map[string]any{
		"decrease_allowance": map[string]string{"spender": spender, "amount": amount},
	})
}

func txMint(c *cli.Context) error {
	recipient, amount, err := twoArgs(c, "RECIPIENT", "AMOUNT")
	if err != nil {
		return err
	}
	return executeMsg(c, map[string]any{
		"mint": map[string]string{"recipient": recipient, "amount": amount},
	})
}

func txBurn(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected AMOUNT")
	}
	return executeMsg(c, map[string]any{
		"burn": map[string]string{"amount": c.Args().First()},
	})
}

func twoArgs(c *cli.Context, first, second string) (string, string, error) {
	if c.NArg() != 2 {
		return "", "", fmt.Errorf("expected %s %s", first, second)
	}
	return c.Args().Get(0), c.Args().Get(1), nil
}

// executeMsg posts a single execute variant and prints the outcome.
func executeMsg(c *cli.Context, msg map[string]any) error {
	caller, err := RequireCaller(c)
	if err != nil {
		return err
	}

	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	body := map[string]any{
		"caller": caller,
		"msg":    msg,
	}

	resp, err := client.Post(ctx, "/v1/execute", body)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result outcomeResponse
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	return printOutcome(c, &result)
}

// printOutcome renders an operation outcome in the selected format.
func printOutcome(c *cli.Context, result *outcomeResponse) error {
	flags := ParseGlobalFlags(c)
	switch output.Format(flags.Output) {
	case output.FormatJSON, output.FormatYAML:
		formatter := output.NewFormatter(output.Format(flags.Output), flags.Wide)
		return formatter.Format(os.Stdout, result)
	default:
		table := &output.Table{
			Headers: []string{"KEY", "VALUE"},
		}
		table.Rows = append(table.Rows, []string{"action", result.Action})
		for _, attr := range result.Attributes {
			table.Rows = append(table.Rows, []string{attr.Key, attr.Value})
		}
		return table.Render(os.Stdout)
	}
}
