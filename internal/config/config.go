package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	UI       UIConfig       `mapstructure:"ui"       validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// AllowedOrigin is the single origin permitted to make cross-origin requests.
	AllowedOrigin string `mapstructure:"allowed_origin" validate:"required,url"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver selects the database/sql driver: "sqlite" for a local file, "pgx" for PostgreSQL.
	Driver       string `mapstructure:"driver"         validate:"required,oneof=sqlite pgx"`
	DSN          string `mapstructure:"dsn"            validate:"required"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=1"`
}

// UIConfig contains settings for the terminal task view.
type UIConfig struct {
	APIURL string `mapstructure:"api_url" validate:"required,url"`
}
