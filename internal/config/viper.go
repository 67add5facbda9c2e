// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable read by viper.
const EnvPrefix = "PACS2MT"

// Supported output formats of the inspect command.
const (
	InspectFormatYAML = "yaml"
	InspectFormatCSV  = "csv"
)

// LogConfig holds the logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Address                  string `mapstructure:"address" yaml:"address"`
	Port                     int    `mapstructure:"port" yaml:"port"`
	ReadHeaderTimeoutSeconds int    `mapstructure:"read_header_timeout_seconds" yaml:"read_header_timeout_seconds"`
	RequestTimeoutSeconds    int    `mapstructure:"request_timeout_seconds" yaml:"request_timeout_seconds"`
	MaxBodyBytes             int64  `mapstructure:"max_body_bytes" yaml:"max_body_bytes"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Address, strconv.Itoa(s.Port))
}

// ReadHeaderTimeout returns the header read timeout as a duration.
func (s ServerConfig) ReadHeaderTimeout() time.Duration {
	return time.Duration(s.ReadHeaderTimeoutSeconds) * time.Second
}

// RequestTimeout returns the per-request timeout as a duration.
func (s ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// InspectConfig holds the settings of the inspect command.
type InspectConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// Config represents the complete application configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Inspect InspectConfig `mapstructure:"inspect" yaml:"inspect"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.pacs2mt")
	v.AddConfigPath(".pacs2mt")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// 5. Unprefixed logging variables, as read by earlier releases
	if err := v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("log.format", EnvPrefix+"_LOG_FORMAT", "LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind LOG_FORMAT: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Normalize and validate configuration
	normalizeConfig(&config)
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("server.address", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout_seconds", 10)
	v.SetDefault("server.request_timeout_seconds", 30)
	v.SetDefault("server.max_body_bytes", 1<<20)

	v.SetDefault("inspect.format", InspectFormatYAML)
}

// DefaultConfig returns the configuration made of defaults only.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	// defaults always decode
	_ = v.Unmarshal(&config)
	return &config
}

// normalizeConfig lowercases the enumerated values so LOG_FORMAT=JSON reads
// the same as json.
func normalizeConfig(config *Config) {
	config.Log.Level = strings.ToLower(strings.TrimSpace(config.Log.Level))
	config.Log.Format = strings.ToLower(strings.TrimSpace(config.Log.Format))
	config.Inspect.Format = strings.ToLower(strings.TrimSpace(config.Inspect.Format))
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got: %d", config.Server.Port)
	}

	if config.Server.ReadHeaderTimeoutSeconds < 1 || config.Server.ReadHeaderTimeoutSeconds > 300 {
		return fmt.Errorf("server.read_header_timeout_seconds must be between 1 and 300, got: %d", config.Server.ReadHeaderTimeoutSeconds)
	}

	if config.Server.RequestTimeoutSeconds < 1 || config.Server.RequestTimeoutSeconds > 300 {
		return fmt.Errorf("server.request_timeout_seconds must be between 1 and 300, got: %d", config.Server.RequestTimeoutSeconds)
	}

	if config.Server.MaxBodyBytes < 1 {
		return fmt.Errorf("server.max_body_bytes must be positive, got: %d", config.Server.MaxBodyBytes)
	}

	if config.Inspect.Format != InspectFormatYAML && config.Inspect.Format != InspectFormatCSV {
		return fmt.Errorf("invalid inspect format: %s (must be 'yaml' or 'csv')", config.Inspect.Format)
	}

	return nil
}

// ToYAML renders the configuration as YAML.
func (c *Config) ToYAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}
