// Package config defines the CLI configuration structure.
package config

// CLIConfig is the configuration for cw20-cli.
type CLIConfig struct {
	// Default connection settings
	DefaultServer string `yaml:"default_server"`
	DefaultOutput string `yaml:"default_output"` // table, json, yaml

	// Default caller address for state-changing operations.
	DefaultCaller string `yaml:"default_caller"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		DefaultServer: "http://localhost:5080",
		DefaultOutput: "table",
	}
}
