// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Catalog struct {
		// File is the vendor-profile YAML file. Empty means built-in
		// defaults only.
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"catalog" yaml:"catalog"`

	Dedup struct {
		Capacity          int     `mapstructure:"capacity" yaml:"capacity"`
		CleanupThreshold  float64 `mapstructure:"cleanup_threshold" yaml:"cleanup_threshold"`
		RetentionFraction float64 `mapstructure:"retention_fraction" yaml:"retention_fraction"`
	} `mapstructure:"dedup" yaml:"dedup"`

	Extraction struct {
		// FilenameFallback enables the filename-parsing vendor strategy when
		// catalog resolution finds nothing.
		FilenameFallback bool `mapstructure:"filename_fallback" yaml:"filename_fallback"`
		// FutureToleranceHours is the window beyond "now" a candidate date
		// may sit before it is rejected (absorbs timezone skew).
		FutureToleranceHours int `mapstructure:"future_tolerance_hours" yaml:"future_tolerance_hours"`
	} `mapstructure:"extraction" yaml:"extraction"`

	CSV struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"csv" yaml:"csv"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config file, then RECEIPT_-prefixed environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.receipt-extract")
	v.AddConfigPath(".receipt-extract")
	v.AddConfigPath(".")

	v.SetEnvPrefix("RECEIPT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars.
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

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("catalog.file", "")

	v.SetDefault("dedup.capacity", 1000)
	v.SetDefault("dedup.cleanup_threshold", 0.8)
	v.SetDefault("dedup.retention_fraction", 0.6)

	v.SetDefault("extraction.filename_fallback", true)
	v.SetDefault("extraction.future_tolerance_hours", 24)

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.include_headers", true)
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Dedup.Capacity < 1 {
		return fmt.Errorf("dedup.capacity must be positive, got: %d", config.Dedup.Capacity)
	}

	if config.Dedup.CleanupThreshold <= 0 || config.Dedup.CleanupThreshold > 1 {
		return fmt.Errorf("dedup.cleanup_threshold must be in (0,1], got: %f", config.Dedup.CleanupThreshold)
	}

	if config.Dedup.RetentionFraction <= 0 || config.Dedup.RetentionFraction >= config.Dedup.CleanupThreshold {
		return fmt.Errorf("dedup.retention_fraction must be in (0, cleanup_threshold), got: %f", config.Dedup.RetentionFraction)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	return nil
}
