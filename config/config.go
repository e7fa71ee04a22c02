package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Postgres   PostgresConfig
	Gateway    GatewayConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	Database       string
	SSLMode        string
	MigrationsPath string
}

// GatewayConfig configures the gateway binary: where it listens and where
// the server lives.
type GatewayConfig struct {
	Port            int
	ServerURL       string
	RateLimitPerSec int
	RateLimitBurst  int
}

// URL renders the Postgres connection string.
func (p PostgresConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Database, p.SSLMode)
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/shareit/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/shareit/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")

	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.MigrationsPath = viper.GetString("postgres.migrations_path")

	cfg.Gateway.Port = viper.GetInt("gateway.port")
	cfg.Gateway.ServerURL = viper.GetString("gateway.server_url")
	cfg.Gateway.RateLimitPerSec = viper.GetInt("gateway.rate_limit_per_sec")
	cfg.Gateway.RateLimitBurst = viper.GetInt("gateway.rate_limit_burst")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")

	viper.SetDefault("http_server.port", 9090)
	viper.SetDefault("http_server.mode", "debug")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "shareit")
	viper.SetDefault("postgres.password", "shareit")
	viper.SetDefault("postgres.database", "shareit")
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("postgres.migrations_path", "migrations")

	viper.SetDefault("gateway.port", 8080)
	viper.SetDefault("gateway.server_url", "http://localhost:9090")
	viper.SetDefault("gateway.rate_limit_per_sec", 50)
	viper.SetDefault("gateway.rate_limit_burst", 100)
}
