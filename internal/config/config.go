// Package config resolves runtime settings from flags, the environment, an
// optional .env file and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	SeedFile     string
	MaxBodyBytes int64
	CORS         CORSConfig
	Log          LogConfig
	Metrics      MetricsConfig
}

// CORSConfig controls cross-origin response headers.
type CORSConfig struct {
	Enabled bool
	Origins []string
}

// LogConfig selects the logger level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// Option adjusts the viper instance before settings are resolved.
type Option func(*viper.Viper) error

// WithFlags binds command line flags over their config keys. bindings maps a
// config key to a flag name; a set flag wins over the environment.
func WithFlags(flags *pflag.FlagSet, bindings map[string]string) Option {
	return func(v *viper.Viper) error {
		for key, name := range bindings {
			flag := flags.Lookup(name)
			if flag == nil {
				return fmt.Errorf("bind flag %s: not defined", name)
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
		return nil
	}
}

// Load reads configuration from the environment and, when CONFIG_FILE is
// set, from that file. opts are applied in order on top.
func Load(opts ...Option) (Config, error) {
	v, err := newViper()
	if err != nil {
		return Config{}, err
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return Config{}, err
		}
	}
	return fromViper(v), nil
}

// newViper returns a viper instance bound to the environment. Environment
// values take precedence over the config file.
func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := strings.TrimSpace(os.Getenv(envConfigFile))
	if path == "" {
		return v, nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	return v, nil
}

func fromViper(v *viper.Viper) Config {
	return Config{
		Port:         envOrDefault(v, envPort, defaultPort),
		SeedFile:     envOrDefault(v, envSeedFile, defaultSeedFile),
		MaxBodyBytes: int64(intEnvOrDefault(v, envMaxBodyBytes, defaultMaxBodyBytes)),
		CORS: CORSConfig{
			Enabled: boolEnvOrDefault(v, envCORSEnabled, defaultCORSEnabled),
			Origins: listEnvOrDefault(v, envCORSOrigins, defaultCORSOrigins),
		},
		Log: LogConfig{
			Level:  envOrDefault(v, envLogLevel, defaultLogLevel),
			Format: envOrDefault(v, envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(v),
	}
}

// LoadEnvFiles loads variables from the given .env files without overriding
// values already present in the environment. With no arguments it loads
// ./.env when that file exists.
func LoadEnvFiles(paths ...string) error {
	if len(paths) == 0 {
		if _, err := os.Stat(".env"); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		paths = []string{".env"}
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}
