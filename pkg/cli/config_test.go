package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "containers", DefaultConfigFile)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
	if cfg.GrowthFactor != 0 || cfg.Format != "" || cfg.Theme != "" {
		t.Errorf("missing file should give empty settings, got %+v", cfg)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("LoadConfig should not create the file")
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultConfigFile)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	for _, kv := range [][2]string{{"growth_factor", "2"}, {"format", "json"}, {"theme", "ascii"}} {
		if err := cfg.Set(kv[0], kv[1]); err != nil {
			t.Fatalf("Set(%s) error: %v", kv[0], err)
		}
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !strings.Contains(string(data), "growth_factor: 2") {
		t.Errorf("saved config missing growth_factor, got:\n%s", data)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if got.GrowthFactor != 2 || got.Format != FormatJSON || got.Theme != "ascii" {
		t.Errorf("reloaded config = %+v", got)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte("growth_factor: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig should fail on malformed YAML")
	}
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		key, value string
		wantErr    bool
	}{
		{"growth_factor", "1.5", false},
		{"growth_factor", "0", false},
		{"growth_factor", "1.05", true},
		{"growth_factor", "fast", true},
		{"growth_factor", "NaN", true},
		{"growth_factor", "+Inf", true},
		{"format", "box", false},
		{"format", "table", true},
		{"theme", "mono", false},
		{"theme", "neon", true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := &Config{}
			err := cfg.Set(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q, %q) error = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			got, err := cfg.Get(tt.key)
			if err != nil {
				t.Fatalf("Get error: %v", err)
			}
			if tt.value != "0" && got != tt.value {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.value)
			}
		})
	}
}

func TestConfig_UnknownKey(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Set("colour", "red"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Set error = %v, want ErrUnknownKey", err)
	}
	if _, err := cfg.Get("colour"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Get error = %v, want ErrUnknownKey", err)
	}
}
