package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Session SessionConfig
	UI      UIConfig
	Log     LogConfig
	Catalog CatalogConfig
}

// SessionConfig holds session defaults.
type SessionConfig struct {
	DefaultName string `mapstructure:"default_name"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Splash    time.Duration
	AltScreen bool `mapstructure:"alt_screen"`
}

// LogConfig holds logger settings. An empty Path disables logging, from the
// file or from THEHIRING_LOG_PATH set to "".
type LogConfig struct {
	Path  string
	Level string
}

// CatalogConfig points at an optional YAML file replacing the built-in content.
type CatalogConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix
// THEHIRING_. cfgPath, when non-empty, wins over $THEHIRING_CONFIG.
func Load(cfgPath string) (Config, error) {
	v := viper.New()

	home, _ := os.UserHomeDir() //nolint:errcheck // empty home falls back to relative paths

	v.SetDefault("session.default_name", "Alex")
	v.SetDefault("ui.splash", 2200*time.Millisecond)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("log.path", filepath.Join(home, ".thehiring", "thehiring.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("catalog.path", "")

	v.SetConfigType("toml")

	if cfgPath == "" {
		cfgPath = os.Getenv("THEHIRING_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "thehiring"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("THEHIRING")
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing default file is fine; an explicit file must exist and parse.
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.Splash < 0 {
		return Config{}, fmt.Errorf("ui.splash must not be negative, got %s", c.UI.Splash)
	}
	return c, nil
}
