// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"budgetdash/internal/models"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"data" yaml:"data"`

	Display struct {
		Currency  string `mapstructure:"currency" yaml:"currency"`
		HideCents bool   `mapstructure:"hide_cents" yaml:"hide_cents"`
	} `mapstructure:"display" yaml:"display"`

	Categorization struct {
		Smart bool `mapstructure:"smart" yaml:"smart"`
	} `mapstructure:"categorization" yaml:"categorization"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.budgetdash")
	v.AddConfigPath(".budgetdash")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("BUDGETDASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("data.directory", defaultDataDir())
	v.SetDefault("display.currency", string(models.CurrencyUSD))
	v.SetDefault("display.hide_cents", false)
	v.SetDefault("categorization.smart", true)
}

// validateConfig checks the configuration for invalid values
func validateConfig(c *Config) error {
	switch models.Currency(c.Display.Currency) {
	case models.CurrencyUSD, models.CurrencyEUR, models.CurrencyGBP, models.CurrencyCHF:
	default:
		return fmt.Errorf("unsupported currency: %s", c.Display.Currency)
	}
	if c.Data.Directory == "" {
		return fmt.Errorf("data directory must not be empty")
	}
	return nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".budgetdash"
	}
	return filepath.Join(home, ".budgetdash")
}
