package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// AppConfig is the application configuration.
type AppConfig struct {
	// DBPath is the location of the SQLite document store.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`

	// WindowDays is the default trailing window shown on the
	// dashboard. The weekly summary contract itself stays at 7 days.
	WindowDays int `mapstructure:"window_days" yaml:"window_days"`
}

// DefaultConfigPath returns the default path for the configuration
// file, located at ~/.config/timebudget/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "timebudget", "config.yaml")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "timebudget.db")
	}
	return filepath.Join(home, ".config", "timebudget", "timebudget.db")
}

func defaultAppConfig() *AppConfig {
	return &AppConfig{
		DBPath:     defaultDBPath(),
		WindowDays: 7,
	}
}

// LoadConfig reads configuration from the given YAML file path using
// Viper. If the file does not exist, it returns a default
// configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("db_path", defaultDBPath())
	v.SetDefault("window_days", 7)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.WindowDays <= 0 {
		cfg.WindowDays = 7
	}

	return cfg, nil
}
