package config // package config loads application configuration from environment variables

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// DefaultPort is used when PORT is unset or empty.
const DefaultPort = "3000"

// Config holds all runtime configuration values. It is read once at startup
// and passed by value afterwards, so nothing mutates it while the server runs.
type Config struct {
	Env       string `koanf:"env"`        // application environment (e.g. "dev", "prod")
	Port      string `koanf:"port"`       // HTTP port to listen on, passed to the bind call as-is
	LogLevel  string `koanf:"log_level"`  // debug, info, warn or error
	LogFormat string `koanf:"log_format"` // text or json
}

// envKeys whitelists the environment variables the service reads and maps
// them onto koanf keys. Anything else in the environment is ignored.
var envKeys = map[string]string{
	"APP_ENV":    "env",
	"PORT":       "port",
	"LOG_LEVEL":  "log_level",
	"LOG_FORMAT": "log_format",
}

func defaults() Config {
	return Config{
		Env:       "dev",
		Port:      DefaultPort,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads configuration in this order of precedence:
//  1. process environment
//  2. a .env file in the working directory, if one exists
//  3. compiled defaults
//
// Empty variables count as unset. PORT is deliberately not validated: a bad
// value is reported by the listener when it tries to bind.
func Load() (Config, error) {
	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		name, ok := envKeys[key]
		if !ok || value == "" {
			return "", nil
		}
		return name, value
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load env vars: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for the configured port on all interfaces.
func (c Config) Addr() string {
	return ":" + c.Port
}
