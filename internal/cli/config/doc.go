// Package config provides CLI configuration for cw20-cli.
//
// This package defines CLI-specific configuration:
//
//   - spec.go: CLIConfig struct (~/.cw20/cli.yaml)
//   - loader.go: Configuration loading and saving
//
// Configuration includes:
//
//   - Default server address
//   - Default caller address for state-changing operations
//   - Output format preferences
package config
