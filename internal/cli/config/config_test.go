// Package config defines the CLI configuration structure.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DefaultServer != "http://localhost:5080" {
		t.Errorf("DefaultServer = %q, want %q", cfg.DefaultServer, "http://localhost:5080")
	}
	if cfg.DefaultOutput != "table" {
		t.Errorf("DefaultOutput = %q, want %q", cfg.DefaultOutput, "table")
	}
	if cfg.DefaultCaller != "" {
		t.Errorf("DefaultCaller = %q, want empty", cfg.DefaultCaller)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if path == "" {
		t.Error("DefaultConfigPath should not be empty")
	}

	if !filepath.IsAbs(path) {
		t.Error("Path should be absolute")
	}

	expected := filepath.Join(".cw20", "cli.yaml")
	if !containsSuffix(path, expected) {
		t.Errorf("Path = %q, should end with %q", path, expected)
	}
}

func containsSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

func TestLoad_NonExistentFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("Load should not error for nonexistent file: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load should return default config")
	}
	if cfg.DefaultServer != "http://localhost:5080" {
		t.Error("Should return default config for nonexistent file")
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cli.yaml")

	content := "default_server: http://ledger.example.com:5080\ndefault_output: json\ndefault_caller: owner\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DefaultServer != "http://ledger.example.com:5080" {
		t.Errorf("DefaultServer = %q", cfg.DefaultServer)
	}
	if cfg.DefaultOutput != "json" {
		t.Errorf("DefaultOutput = %q", cfg.DefaultOutput)
	}
	if cfg.DefaultCaller != "owner" {
		t.Errorf("DefaultCaller = %q", cfg.DefaultCaller)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cli.yaml")

	if err := os.WriteFile(path, []byte("default_caller: treasury\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DefaultCaller != "treasury" {
		t.Errorf("DefaultCaller = %q, want %q", cfg.DefaultCaller, "treasury")
	}
	if cfg.DefaultServer != "http://localhost:5080" {
		t.Errorf("DefaultServer = %q, want default", cfg.DefaultServer)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cli.yaml")

	if err := os.WriteFile(path, []byte("default_server: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "cli.yaml")

	cfg := Default()
	cfg.DefaultOutput = "yaml"
	cfg.DefaultCaller = "owner"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Directory is created as needed
	if _, err := os.Stat(filepath.Dir(path)); os.IsNotExist(err) {
		t.Error("Directory should have been created")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DefaultOutput != "yaml" || loaded.DefaultCaller != "owner" {
		t.Errorf("loaded = %+v", loaded)
	}
}
