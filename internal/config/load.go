package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for every environment variable override, e.g. TASKS_SERVER_PORT.
const EnvPrefix = "TASKS"

// Default values. They match the fixed constants the service has always used.
const (
	DefaultPort          = 5000
	DefaultLogLevel      = "info"
	DefaultAllowedOrigin = "http://localhost:3000"
	DefaultDriver        = "sqlite"
	DefaultDSN           = "file:database.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	DefaultMaxOpenConns  = 10
	DefaultAPIURL        = "http://localhost:5000"
)

// Load reads configuration from defaults, an optional config.yaml in the
// working directory, and environment variables, in increasing precedence.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile behaves like Load but reads the YAML file at path instead of
// searching the working directory. An empty path falls back to the search.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.allowed_origin", DefaultAllowedOrigin)
	v.SetDefault("database.driver", DefaultDriver)
	v.SetDefault("database.dsn", DefaultDSN)
	v.SetDefault("database.max_open_conns", DefaultMaxOpenConns)
	v.SetDefault("ui.api_url", DefaultAPIURL)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicitly requested file must exist; the implicit one is optional.
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
