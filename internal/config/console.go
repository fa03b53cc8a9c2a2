package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ConsoleConfig holds the admin console configuration.
type ConsoleConfig struct {
	APIURL   string        `mapstructure:"CATALOG_API_URL"`
	Username string        `mapstructure:"CATALOG_USERNAME"`
	Password string        `mapstructure:"CATALOG_PASSWORD"`
	Timeout  time.Duration `mapstructure:"CATALOG_TIMEOUT"`
}

// consoleFlags maps command-line flags onto configuration keys.
var consoleFlags = map[string]string{
	"api-url":  "CATALOG_API_URL",
	"username": "CATALOG_USERNAME",
	"password": "CATALOG_PASSWORD",
	"timeout":  "CATALOG_TIMEOUT",
}

// RegisterConsoleFlags declares the console's global flags on fs.
func RegisterConsoleFlags(fs *pflag.FlagSet) {
	fs.String("api-url", "http://localhost:8080/api", "catalog API base URL")
	fs.String("username", "", "admin username used for write operations")
	fs.String("password", "", "admin password used for write operations")
	fs.Duration("timeout", 15*time.Second, "per-request timeout")
}

// LoadConsoleConfig resolves the console configuration from flags, environment
// and an optional .env file, in that order of precedence.
func LoadConsoleConfig(fs *pflag.FlagSet) (*ConsoleConfig, error) {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.SetDefault("CATALOG_API_URL", "http://localhost:8080/api")
	v.SetDefault("CATALOG_USERNAME", "")
	v.SetDefault("CATALOG_PASSWORD", "")
	v.SetDefault("CATALOG_TIMEOUT", 15*time.Second)
	v.AutomaticEnv()

	if fs != nil {
		for flagName, key := range consoleFlags {
			if f := fs.Lookup(flagName); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flagName, err)
				}
			}
		}
	}

	// A missing .env is fine for the console.
	_ = v.ReadInConfig()

	var cfg ConsoleConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode console config: %w", err)
	}
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("catalog API URL is required")
	}
	return &cfg, nil
}
