package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by sitecheck
const EnvPrefix = "SITECHECK"

// Config holds the application configuration
type Config struct {
	LogLevel  string `mapstructure:"log_level"`  // debug, info, warn, error
	LogFormat string `mapstructure:"log_format"` // text or json
}

// keys lists every configuration key; each maps to SITECHECK_<KEY>
var keys = []string{"log_level", "log_format"}

// LoadConfig loads configuration from ~/.sitecheck/config.yaml, a .env file in
// the working directory and environment variables, in increasing precedence.
func LoadConfig() (*Config, error) {
	return load(filepath.Join(getHomeDir(), ".sitecheck"), ".env")
}

func load(configDir, envFile string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	// Set config file location
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(expandPath(configDir))

	// Config file is optional, a broken one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// .env values sit between the config file and the real environment
	if err := applyDotEnv(v, envFile); err != nil {
		return nil, err
	}

	// Override with environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for _, key := range keys {
		_ = v.BindEnv(key, envName(key)) // nolint:errcheck // only fails without a key
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	return &cfg, nil
}

// applyDotEnv copies SITECHECK_* entries of envFile into v without touching
// the process environment. Variables already set in the environment win.
func applyDotEnv(v *viper.Viper, envFile string) error {
	if envFile == "" {
		return nil
	}

	values, err := godotenv.Read(envFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read env file %s: %w", envFile, err)
	}

	for _, key := range keys {
		name := envName(key)
		if _, set := os.LookupEnv(name); set {
			continue
		}
		if value, ok := values[name]; ok {
			v.Set(key, value)
		}
	}
	return nil
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}

// getHomeDir returns the user's home directory
func getHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		home := getHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
