package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/haivivi/containers/pkg/vector"
)

// DefaultConfigFile is the settings filename inside the config directory.
const DefaultConfigFile = "config.yaml"

// ErrUnknownKey is returned by Config.Set for keys it does not recognize.
var ErrUnknownKey = errors.New("cli: unknown config key")

// Keys lists the settings accepted by Config.Set, in display order.
var Keys = []string{"growth_factor", "format", "theme"}

// Config holds the user settings of the containers tool.
type Config struct {
	// GrowthFactor is applied to growable containers built by scripts.
	// Zero means the container default.
	GrowthFactor float64 `yaml:"growth_factor,omitempty" json:"growth_factor,omitempty"`

	// Format is the default output format.
	Format OutputFormat `yaml:"format,omitempty" json:"format,omitempty"`

	// Theme selects the box renderer theme.
	Theme string `yaml:"theme,omitempty" json:"theme,omitempty"`

	path string
}

// LoadConfig reads settings from path. A missing file yields empty settings
// that will be written to path on Save.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.path = path
	return cfg, nil
}

// Save writes the settings back to their file, creating its directory.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Path returns the settings file path.
func (c *Config) Path() string {
	return c.path
}

// Set parses value for key and stores it. It does not save.
func (c *Config) Set(key, value string) error {
	switch key {
	case "growth_factor":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("growth_factor: %w", err)
		}
		if f != 0 && !vector.ValidGrowthFactor(f) {
			return fmt.Errorf("growth_factor: %v is not a finite number of at least %v", f, vector.MinGrowthFactor)
		}
		c.GrowthFactor = f
	case "format":
		f := OutputFormat(value)
		if !slices.Contains(Formats, f) {
			return fmt.Errorf("format: unsupported output format %q", value)
		}
		c.Format = f
	case "theme":
		if _, ok := Themes[value]; !ok {
			return fmt.Errorf("theme: unknown theme %q", value)
		}
		c.Theme = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}

// Get returns the string form of key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "growth_factor":
		if c.GrowthFactor == 0 {
			return "", nil
		}
		return strconv.FormatFloat(c.GrowthFactor, 'g', -1, 64), nil
	case "format":
		return string(c.Format), nil
	case "theme":
		return c.Theme, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
}
