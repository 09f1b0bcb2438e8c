package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
// It also returns the file it read, empty when only defaults and flags apply.
func Load() (*Config, string, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, "", fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	return cfg, configPath, nil
}

// Reload re-reads path on top of defaults and flags. Used by the watcher.
func Reload(path string) (*Config, error) {
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		return nil, fmt.Errorf("reloading config from %s: %w", path, err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./villagewalk.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "VillageWalk")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "VillageWalk")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "villagewalk")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "villagewalk")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return fmt.Errorf("invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	case c.Physics.Timestep <= 0:
		return fmt.Errorf("physics timestep must be positive, got %v", c.Physics.Timestep)
	case c.Player.CapsuleRadius <= 0 || c.Player.CapsuleHalfHeight < 0:
		return fmt.Errorf("invalid player capsule (half height %v, radius %v)",
			c.Player.CapsuleHalfHeight, c.Player.CapsuleRadius)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("invalid camera clip range [%v, %v]", c.Camera.Near, c.Camera.Far)
	case c.Assets.Workers < 1:
		return fmt.Errorf("assets.workers must be at least 1, got %d", c.Assets.Workers)
	}
	return nil
}
