// Package repl provides the interactive REPL mode for cw20-cli.
package repl

import "strings"

// Completer provides command completion for the REPL.
type Completer struct {
	commands []string
}

// NewCompleter creates a new Completer.
func NewCompleter() *Completer {
	return &Completer{
		commands: []string{
			"instantiate",
			"token", "token info",
			"balance", "allowance",
			"tx", "tx transfer", "tx approve", "tx transfer-from",
			"tx decrease-allowance", "tx mint", "tx burn",
			"admin", "admin pause", "admin unpause",
			"system", "system health", "system ready",
			"config", "config show", "config init",
			"help", "exit", "quit",
		},
	}
}

// Complete returns completion suggestions for the given prefix.
func (c *Completer) Complete(prefix string) []string {
	var suggestions []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			suggestions = append(suggestions, cmd)
		}
	}
	return suggestions
}
