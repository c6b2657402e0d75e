// Package config locates and loads the settings of the containers CLI.
//
// Settings are stored under os.UserConfigDir()/containers/:
//
//	~/Library/Application Support/containers/config.yaml   (macOS)
//	~/.config/containers/config.yaml                       (Linux)
//	%AppData%/containers/config.yaml                       (Windows)
//
// The CONTAINERS_CONFIG_DIR environment variable overrides the directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/haivivi/containers/pkg/cli"
)

const (
	// appDir is the directory name under os.UserConfigDir().
	appDir = "containers"

	// EnvDir overrides the configuration directory.
	EnvDir = "CONTAINERS_CONFIG_DIR"
)

// Dir returns the configuration directory.
func Dir() (string, error) {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, appDir), nil
}

// Load loads the settings from the default location.
func Load() (*cli.Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(dir)
}

// LoadFrom loads the settings file inside dir.
func LoadFrom(dir string) (*cli.Config, error) {
	return cli.LoadConfig(filepath.Join(dir, cli.DefaultConfigFile))
}
