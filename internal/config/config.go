// Package config loads the tuikit demo's settings with viper.
//
// Values come from, in increasing priority: built-in defaults, a YAML or
// TOML config file, and TUIKIT_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the demo application's configuration.
type Config struct {
	Log LogConfig `mapstructure:"log"`
	UI  UIConfig  `mapstructure:"ui"`
}

// LogConfig controls debug logging.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// File is the log destination. Empty disables logging unless
	// TUIKIT_DEBUG is set.
	File string `mapstructure:"file"`
}

// UIConfig controls the terminal session.
type UIConfig struct {
	// Mouse enables mouse reporting (default: true)
	Mouse bool `mapstructure:"mouse"`
	// QuitKey is the chord that stops the app, e.g. "ctrl+c" or "ctrl+q".
	// "none" disables it.
	QuitKey string `mapstructure:"quit_key"`
	// Accent is a hex colour such as "#5fafff" used for highlights.
	Accent string `mapstructure:"accent"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			Mouse:   true,
			QuitKey: "ctrl+c",
			Accent:  "#5fafff",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.file", defaults.Log.File)

	viper.SetDefault("ui.mouse", defaults.UI.Mouse)
	viper.SetDefault("ui.quit_key", defaults.UI.QuitKey)
	viper.SetDefault("ui.accent", defaults.UI.Accent)
}

// EnvPrefix is the prefix of environment variables that override config
// keys, e.g. TUIKIT_UI_QUIT_KEY for ui.quit_key.
const EnvPrefix = "TUIKIT"

// BindEnv makes viper read EnvPrefix variables for every key.
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tuikit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tuikit"
	}
	return filepath.Join(home, ".config", "tuikit")
}
