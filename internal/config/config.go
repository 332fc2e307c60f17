package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	App    AppConfig    `mapstructure:"app"    validate:"required"`
	Server ServerConfig `mapstructure:"server" validate:"required"`
}

// AppConfig contains application identity settings reported by the
// health endpoints.
type AppConfig struct {
	Name        string `mapstructure:"name"        validate:"required"`
	Version     string `mapstructure:"version"     validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,oneof=development staging production test"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Host     string `mapstructure:"host"      validate:"required"`
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}
