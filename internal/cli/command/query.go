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

// TokenCommand returns the token subcommand group.
func TokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Token metadata queries",
		Subcommands: []*cli.Command{
			{
				Name:   "info",
				Usage:  "Show token name, symbol, decimals, and total supply",
				Action: tokenInfo,
			},
		},
	}
}

func tokenInfo(c *cli.Context) error {
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.Get(ctx, "/v1/token")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result struct {
		Name        string `json:"name"`
		Symbol      string `json:"symbol"`
		Decimals    uint8  `json:"decimals"`
		TotalSupply string `json:"total_supply"`
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
		table := &output.Table{
			Headers: []string{"NAME", "SYMBOL", "DECIMALS", "TOTAL SUPPLY"},
			Rows: [][]string{{
				result.Name,
				result.Symbol,
				fmt.Sprintf("%d", result.Decimals),
				result.TotalSupply,
			}},
		}
		return table.Render(os.Stdout)
	}
}

// BalanceCommand returns the balance query command.
func BalanceCommand() *cli.Command {
	return &cli.Command{
		Name:      "balance",
		Usage:     "Query the balance of an address",
		ArgsUsage: "ADDRESS",
		Action:    balanceQuery,
	}
}

func balanceQuery(c *cli.Context) error {
	address := c.Args().First()
	if address == "" {
		return fmt.Errorf("address required")
	}

	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.Get(ctx, "/v1/balance/"+address)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result struct {
		Address string `json:"address"`
		Balance string `json:"balance"`
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
		table := &output.Table{
			Headers: []string{"ADDRESS", "BALANCE"},
			Rows:    [][]string{{result.Address, result.Balance}},
		}
		return table.Render(os.Stdout)
	}
}

// AllowanceCommand returns the allowance query command.
func AllowanceCommand() *cli.Command {
	return &cli.Command{
		Name:      "allowance",
		Usage:     "Query the allowance an owner granted a spender",
		ArgsUsage: "OWNER SPENDER",
		Action:    allowanceQuery,
	}
}

func allowanceQuery(c *cli.Context) error {
	owner, spender, err := twoArgs(c, "OWNER", "SPENDER")
	if err != nil {
		return err
	}

	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.Get(ctx, "/v1/allowance/"+owner+"/"+spender)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result struct {
		Owner     string `json:"owner"`
		Spender   string `json:"spender"`
		Allowance string `json:"allowance"`
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
		table := &output.Table{
			Headers: []string{"OWNER", "SPENDER", "ALLOWANCE"},
			Rows:    [][]string{{result.Owner, result.Spender, result.Allowance}},
		}
		return table.Render(os.Stdout)
	}
}
