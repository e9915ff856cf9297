// Package config loads server configuration from config.yaml, a .env file
// and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Log      LogConfig
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig holds badger settings.
type DatabaseConfig struct {
	Path     string
	InMemory bool
}

// AuthConfig holds token settings. ProtectReads puts blog and comment reads
// behind authentication.
type AuthConfig struct {
	Secret       string
	TokenTTL     time.Duration
	ProtectReads bool
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Pretty bool
}

// ErrMissingSecret is returned by Validate when no signing secret is set.
var ErrMissingSecret = errors.New("auth.secret (AUTH_SECRET) must be set")

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// Validate checks settings that have no usable default.
func (c *Config) Validate() error {
	if c.Auth.Secret == "" {
		return ErrMissingSecret
	}
	return nil
}

// Load reads configuration. path is the directory searched for config.yaml.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", "3003")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")

	v.SetDefault("database.path", "data/badger")
	v.SetDefault("database.in_memory", false)

	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("auth.protect_reads", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	readTimeout, err := time.ParseDuration(v.GetString("server.read_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid server.read_timeout: %w", err)
	}

	writeTimeout, err := time.ParseDuration(v.GetString("server.write_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid server.write_timeout: %w", err)
	}

	tokenTTL, err := time.ParseDuration(v.GetString("auth.token_ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid auth.token_ttl: %w", err)
	}

	var config Config

	config.Server = ServerConfig{
		Host:         v.GetString("server.host"),
		Port:         v.GetString("server.port"),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	config.Database = DatabaseConfig{
		Path:     v.GetString("database.path"),
		InMemory: v.GetBool("database.in_memory"),
	}

	config.Auth = AuthConfig{
		Secret:       v.GetString("auth.secret"),
		TokenTTL:     tokenTTL,
		ProtectReads: v.GetBool("auth.protect_reads"),
	}

	config.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Pretty: v.GetBool("log.pretty"),
	}

	return &config, nil
}
