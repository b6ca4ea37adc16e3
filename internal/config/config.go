// Package config loads the optional YAML settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/spice"
)

type Config struct {
	Store          string             `yaml:"store"`
	Namespace      string             `yaml:"namespace"`
	Catalog        string             `yaml:"catalog,omitempty"`
	Debug          bool               `yaml:"debug"`
	Filters        models.Constraints `yaml:"filters"`
	AnimationDelay time.Duration      `yaml:"animation_delay"`
}

func DefaultConfig() *Config {
	return &Config{
		Store:          constants.DefaultStorePath,
		Namespace:      constants.PlanNamespace,
		Filters:        models.Constraints{}.Normalize(),
		AnimationDelay: constants.AnimationDelay,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.Filters = cfg.Filters.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	path = ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets MEALWEEK_STORE and MEALWEEK_DEBUG override the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MEALWEEK_STORE"); v != "" {
		c.Store = v
	}
	if v := os.Getenv("MEALWEEK_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}

func (c *Config) Validate() error {
	if c.Store == "" {
		return fmt.Errorf("store path must not be empty")
	}
	if c.AnimationDelay < 0 {
		return fmt.Errorf("animation_delay must not be negative: %s", c.AnimationDelay)
	}
	if !slices.Contains(spice.Options(), strings.ToLower(c.Filters.Spice)) {
		return fmt.Errorf("invalid spice filter: %s (valid: %v)", c.Filters.Spice, spice.Options())
	}
	return nil
}

// StorePath returns Store with a leading ~ expanded.
func (c *Config) StorePath() string {
	return ExpandPath(c.Store)
}

// ConfigDir is the directory holding the store; logs and backups live there.
func (c *Config) ConfigDir() string {
	if c.Store == ":memory:" {
		return filepath.Dir(ExpandPath(constants.DefaultStorePath))
	}
	return filepath.Dir(c.StorePath())
}

// ExpandPath replaces a leading "~/" with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
