// Package config loads application configuration from the environment, an
// optional .env file, and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable Load reads.
const EnvPrefix = "PASSKEEP"

const (
	defaultDBPath       = "passwords.db"
	defaultListenAddr   = "127.0.0.1:8501"
	defaultLogLevel     = "info"
	defaultGenLength    = 12
	minDefaultGenLength = 6
	maxDefaultGenLength = 16
	defaultConfigName   = "passkeep"
	defaultDotEnvPath   = ".env"
)

// Config holds the application configuration.
type Config struct {
	DBPath        string
	ListenAddr    string
	LogLevel      string
	DefaultLength int
}

// Load reads configuration and returns a validated Config. Sources, highest
// precedence first: PASSKEEP_* environment variables (including ones loaded
// from ./.env), the YAML file at configFile (or ./passkeep.yaml when configFile
// is empty and the file exists), then defaults:
// PASSKEEP_DB_PATH (passwords.db), PASSKEEP_LISTEN_ADDR (127.0.0.1:8501),
// PASSKEEP_LOG_LEVEL (info), PASSKEEP_GENERATOR_DEFAULT_LENGTH (12).
func Load(configFile string) (*Config, error) {
	if _, err := os.Stat(defaultDotEnvPath); err == nil {
		if err := godotenv.Load(defaultDotEnvPath); err != nil {
			return nil, fmt.Errorf("load %s: %w", defaultDotEnvPath, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db_path", defaultDBPath)
	v.SetDefault("listen_addr", defaultListenAddr)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("generator.default_length", defaultGenLength)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	cfg := &Config{
		DBPath:        v.GetString("db_path"),
		ListenAddr:    v.GetString("listen_addr"),
		LogLevel:      strings.ToLower(v.GetString("log_level")),
		DefaultLength: v.GetInt("generator.default_length"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBPath == "" {
		return errors.New("PASSKEEP_DB_PATH must not be empty")
	}
	if c.ListenAddr == "" {
		return errors.New("PASSKEEP_LISTEN_ADDR must not be empty")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.DefaultLength < minDefaultGenLength || c.DefaultLength > maxDefaultGenLength {
		return fmt.Errorf("PASSKEEP_GENERATOR_DEFAULT_LENGTH must be between %d and %d, got %d",
			minDefaultGenLength, maxDefaultGenLength, c.DefaultLength)
	}
	return nil
}

// SlogLevel returns the configured log level. Load has already validated it.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("PASSKEEP_LOG_LEVEL has invalid value %q", s)
	}
}
