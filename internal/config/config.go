// Package config loads runtime configuration for the server and gateway
// binaries from environment variables, with local-development defaults.
package config

import "github.com/spf13/viper"

// Config holds settings for both binaries; each reads the fields it needs.
type Config struct {
	// ServerPort is the listen address of the business-logic server.
	ServerPort string
	// GatewayPort is the listen address of the validation gateway.
	GatewayPort string
	// ServerURL is where the gateway forwards validated requests.
	ServerURL string
	// DBDriver selects the GORM dialector: "postgres" or "sqlite".
	DBDriver string
	// DatabaseDSN is the driver-specific connection string (a file path for
	// sqlite).
	DatabaseDSN string
	// RabbitMQURL enables booking-event publication when non-empty.
	RabbitMQURL string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// Load reads configuration from the environment.
func Load() Config {
	viper.SetDefault("SERVER_PORT", ":9090")
	viper.SetDefault("GATEWAY_PORT", ":8080")
	viper.SetDefault("SHAREIT_SERVER_URL", "http://localhost:9090")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "shareit.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.AutomaticEnv()

	return Config{
		ServerPort:  viper.GetString("SERVER_PORT"),
		GatewayPort: viper.GetString("GATEWAY_PORT"),
		ServerURL:   viper.GetString("SHAREIT_SERVER_URL"),
		DBDriver:    viper.GetString("DB_DRIVER"),
		DatabaseDSN: viper.GetString("DATABASE_DSN"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
	}
}
