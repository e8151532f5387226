package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config is built once at startup and handed to whatever needs it.
// The database keys mirror the dashboard's config.json file.
type Config struct {
	Environment string          `mapstructure:"environment"`
	LogLevel    string          `mapstructure:"log_level"`
	Database    DatabaseConfig  `mapstructure:",squash"`
	Server      ServerConfig    `mapstructure:"server"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
}

type DatabaseConfig struct {
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	Name           string        `mapstructure:"database"`
	SSLMode        string        `mapstructure:"sslmode"`
	ConnectRetries int           `mapstructure:"connect_retries"`
	RetryInterval  time.Duration `mapstructure:"retry_interval"`
	MaxOpenConns   int           `mapstructure:"max_open_conns"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// DSN renders the keyword/value connection string understood by pgx.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

// Load reads the JSON config file at path (skipped when empty) and overlays
// environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("host", "localhost")
	v.SetDefault("port", 5432)
	v.SetDefault("sslmode", "disable")
	v.SetDefault("connect_retries", 5)
	v.SetDefault("retry_interval", 5*time.Second)
	v.SetDefault("max_open_conns", 5)
	v.SetDefault("query_timeout", 10*time.Second)
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("rate_limit.rps", 5)
	v.SetDefault("rate_limit.burst", 10)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// Only the names bound here are read from the environment. The file keys
	// are short ("user", "host", "port") and would otherwise pick up $USER,
	// $HOST and the HTTP $PORT.
	v.BindEnv("environment", "ENVIRONMENT")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("user", "DB_USER")
	v.BindEnv("password", "DB_PASSWORD")
	v.BindEnv("host", "DB_HOST")
	v.BindEnv("port", "DB_PORT")
	v.BindEnv("database", "DB_NAME")
	v.BindEnv("sslmode", "DB_SSLMODE")
	v.BindEnv("connect_retries", "DB_CONNECT_RETRIES")
	v.BindEnv("max_open_conns", "DB_MAX_OPEN_CONNS")
	v.BindEnv("query_timeout", "DB_QUERY_TIMEOUT")
	v.BindEnv("server.port", "PORT")
	v.BindEnv("rate_limit.rps", "RATE_LIMIT_RPS")
	v.BindEnv("rate_limit.burst", "RATE_LIMIT_BURST")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// FileIfExists returns path, or "" when nothing exists there, so a missing
// config.json falls back to environment-only configuration.
func FileIfExists(path string) string {
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return ""
	}
	return path
}

// Validate checks if the configuration is usable
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("host is required")
	}
	if c.Database.User == "" {
		return errors.New("user is required")
	}
	if c.Database.Name == "" {
		return errors.New("database is required")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.Database.Port)
	}
	if c.Database.ConnectRetries < 1 {
		return errors.New("connect_retries must be at least 1")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst < 1 {
		return errors.New("rate_limit.rps and rate_limit.burst must be positive")
	}
	return nil
}
