// Package command provides CLI command definitions for cw20-cli.
package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/rupam-04/cw20/internal/cli/connection"
)

// InstantiateCommand returns the instantiate command.
func InstantiateCommand() *cli.Command {
	return &cli.Command{
		Name:  "instantiate",
		Usage: "Instantiate the token ledger",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "Token name",
			},
			&cli.StringFlag{
				Name:  "symbol",
				Usage: "Token symbol",
			},
			&cli.IntFlag{
				Name:  "decimals",
				Value: -1,
				Usage: "Token decimals (0-18)",
			},
			&cli.StringSliceFlag{
				Name:    "balance",
				Aliases: []string{"b"},
				Usage:   "Initial balance as ADDRESS=AMOUNT (repeatable)",
			},
		},
		Action: instantiateAction,
	}
}

func instantiateAction(c *cli.Context) error {
	caller, err := RequireCaller(c)
	if err != nil {
		return err
	}

	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	body := map[string]any{
		"caller": caller,
	}
	if name := c.String("name"); name != "" {
		body["name"] = name
	}
	if symbol := c.String("symbol"); symbol != "" {
		body["symbol"] = symbol
	}
	if decimals := c.Int("decimals"); decimals >= 0 {
		body["decimals"] = decimals
	}

	balances, err := parseBalanceFlags(c.StringSlice("balance"))
	if err != nil {
		return err
	}
	if len(balances) > 0 {
		body["initial_balances"] = balances
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.Post(ctx, "/v1/instantiate", body)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result outcomeResponse
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	return printOutcome(c, &result)
}

// parseBalanceFlags parses repeated ADDRESS=AMOUNT flags.
func parseBalanceFlags(entries []string) ([]map[string]string, error) {
	var balances []map[string]string
	for _, entry := range entries {
		addr, amount, ok := strings.Cut(entry, "=")
		if !ok || addr == "" || amount == "" {
			return nil, fmt.Errorf("invalid balance %q, want ADDRESS=AMOUNT", entry)
		}
		balances = append(balances, map[string]string{
			"address": addr,
			"amount":  amount,
		})
	}
	return balances, nil
}
