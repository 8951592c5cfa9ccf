package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if cfg.DefaultFilter != "all" {
		t.Errorf("default filter = %q", cfg.DefaultFilter)
	}
	if cfg.Keys.Add != "a" || cfg.Keys.Quit != "q" {
		t.Errorf("default keymap = %+v", cfg.Keys)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestLoadOrCreateReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "db_path = \"/tmp/elsewhere.db\"\ndefault_filter = \"pending\"\n\n[keys]\nquit = \"x\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if cfg.DBPath != "/tmp/elsewhere.db" || cfg.DefaultFilter != "pending" || cfg.Keys.Quit != "x" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadOrCreateFillsEmptyDBPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("default_filter = \"all\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, DefaultDBName) {
		t.Errorf("db path = %q", cfg.DBPath)
	}
}
