package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Tracker defaults in row units. The engine's own defaults assume pixel
// geometry; a terminal cell is roughly an order of magnitude taller, so the
// shipped config scales them down.
const (
	DefaultSidebarWidth      = 32
	DefaultActiveOffset      = 4.0
	DefaultViewportThreshold = 0.8
	DefaultScrollPadding     = 2.0
	DefaultVelocityThreshold = 0.5
	DefaultSettleDelayMs     = 150
)

// Config holds application configuration
type Config struct {
	Theme             string            `toml:"theme"`
	SidebarWidth      int               `toml:"sidebar_width"`
	ActiveOffset      float64           `toml:"active_offset"`
	ViewportThreshold float64           `toml:"viewport_threshold"`
	ScrollPadding     float64           `toml:"scroll_padding"`
	VelocityThreshold float64           `toml:"velocity_threshold"`
	SettleDelayMs     int               `toml:"settle_delay_ms"`
	Settings          map[string]string `toml:"settings"`

	// Session settings (not persisted to TOML, overrides persisted settings)
	sessionSettings map[string]string
}

// Load loads the config file from the standard location
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil // Return default if can't find config path
	}

	return LoadFromFile(configPath)
}

// LoadFromFile loads config from a specific file
func LoadFromFile(filePath string) (*Config, error) {
	// If file doesn't exist, return default config
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	err = toml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	config.sessionSettings = make(map[string]string)

	return &config, nil
}

// applyDefaults fills fields the TOML file left unset
func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = "tokyo-night"
	}
	if c.SidebarWidth <= 0 {
		c.SidebarWidth = DefaultSidebarWidth
	}
	if c.ActiveOffset == 0 {
		c.ActiveOffset = DefaultActiveOffset
	}
	if c.ViewportThreshold <= 0 || c.ViewportThreshold > 1 {
		c.ViewportThreshold = DefaultViewportThreshold
	}
	if c.ScrollPadding == 0 {
		c.ScrollPadding = DefaultScrollPadding
	}
	if c.VelocityThreshold == 0 {
		c.VelocityThreshold = DefaultVelocityThreshold
	}
	if c.SettleDelayMs <= 0 {
		c.SettleDelayMs = DefaultSettleDelayMs
	}
	if c.Settings == nil {
		c.Settings = make(map[string]string)
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "tui-docview", "config.toml"), nil
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	c := &Config{
		Settings:        make(map[string]string),
		sessionSettings: make(map[string]string),
	}
	c.applyDefaults()
	return c
}

// GetConfigDir returns the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(home, ".config", "tui-docview")
	return configDir, nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	return os.MkdirAll(configDir, 0755)
}

// Set sets a session configuration value
func (c *Config) Set(key, value string) {
	if c.sessionSettings == nil {
		c.sessionSettings = make(map[string]string)
	}
	c.sessionSettings[key] = value
}

// Get retrieves a configuration value, checking session settings first (which override persisted settings)
// Returns empty string if not found in either source
func (c *Config) Get(key string) string {
	if c.sessionSettings != nil {
		if val, ok := c.sessionSettings[key]; ok {
			return val
		}
	}

	if c.Settings != nil {
		if val, ok := c.Settings[key]; ok {
			return val
		}
	}

	return ""
}

// Save persists the configuration to the TOML file
// Note: This only persists the Settings map, not session settings
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
