// Package repl provides the interactive REPL mode for cw20-cli.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Runner executes a parsed command line. The args slice excludes the
// program name.
type Runner func(args []string) error

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	completer *Completer
	history   *History
	runner    Runner
}

// New creates a new REPL instance dispatching lines to run.
func New(run Runner) *REPL {
	return &REPL{
		input:     os.Stdin,
		output:    os.Stdout,
		completer: NewCompleter(),
		history:   NewHistory(),
		runner:    run,
	}
}

// Run starts the REPL loop.
func (r *REPL) Run() error {
	reader := bufio.NewReader(r.input)

	// History persistence is best effort.
	r.history.Load()
	defer r.history.Save()

	for {
		// Print prompt
		fmt.Fprint(r.output, "cw20> ")

		// Read line
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			fmt.Fprintln(r.output)
			return nil
		}
		if err != nil {
			return err
		}

		// Trim and skip empty lines
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Add to history
		r.history.Add(line)

		// Handle special commands
		if line == "exit" || line == "quit" {
			return nil
		}
		if line == "help" {
			r.printHelp()
			continue
		}

		// Execute command
		if err := r.execute(line); err != nil {
			fmt.Fprintf(r.output, "Error: %v\n", err)
		}
	}
}

func (r *REPL) execute(line string) error {
	if r.runner == nil {
		return fmt.Errorf("no command runner configured")
	}
	return r.runner(strings.Fields(line))
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.output, "Available commands:")
	for _, cmd := range r.completer.Complete("") {
		fmt.Fprintf(r.output, "  %s\n", cmd)
	}
}
