package config

import (
	"path/filepath"
	"testing"

	"github.com/haivivi/containers/pkg/cli"
)

func TestDir_EnvOverride(t *testing.T) {
	want := t.TempDir()
	t.Setenv(EnvDir, want)

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir error: %v", err)
	}
	if got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDir, dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if want := filepath.Join(dir, cli.DefaultConfigFile); cfg.Path() != want {
		t.Errorf("Path() = %q, want %q", cfg.Path(), want)
	}

	if err := cfg.Set("theme", "ascii"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	again, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom error: %v", err)
	}
	if again.Theme != "ascii" {
		t.Errorf("Theme = %q, want %q", again.Theme, "ascii")
	}
}
