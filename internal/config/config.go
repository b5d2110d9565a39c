// Package config resolves runtime settings from flags, environment variables,
// an optional .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"kbtrackpad/internal/hotkey"
	"kbtrackpad/internal/keymap"
)

// EnvPrefix is prepended to every environment variable, e.g.
// KBTRACKPAD_LOG_LEVEL.
const EnvPrefix = "KBTRACKPAD"

// Setting keys, shared by flags, environment and config file.
const (
	KeyConfigFile    = "config"
	KeyLogLevel      = "log-level"
	KeyLogFormat     = "log-format"
	KeyTolerance     = "tolerance"
	KeyPauseHotkey   = "pause-hotkey"
	KeyNotifications = "notifications"
	KeyTray          = "tray"
	KeyPrompt        = "prompt"
)

// ErrInvalid is returned for settings that fail validation.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds the resolved settings.
type Config struct {
	// ConfigFile is an optional TOML, YAML or JSON file. Nothing is written
	// back to it.
	ConfigFile string
	LogLevel   string
	LogFormat  string
	// Tolerance is the geometry change, in points, below which the key
	// table is reused.
	Tolerance float64
	// PauseHotkey toggles routing. Empty disables the hotkey.
	PauseHotkey   string
	Notifications bool
	Tray          bool
	// Prompt lets macOS show its own accessibility request on startup.
	Prompt bool
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Config {
	return Config{
		LogLevel:      "info",
		LogFormat:     "text",
		Tolerance:     keymap.DefaultTolerance,
		PauseHotkey:   hotkey.DefaultPause,
		Notifications: true,
		Tray:          true,
		Prompt:        true,
	}
}

// RegisterFlags adds every setting to flags with its default.
func RegisterFlags(flags *pflag.FlagSet) {
	d := Defaults()
	flags.String(KeyConfigFile, d.ConfigFile, "optional config file (toml, yaml or json)")
	flags.String(KeyLogLevel, d.LogLevel, "log level: debug, info, warn or error")
	flags.String(KeyLogFormat, d.LogFormat, "log format: text or json")
	flags.Float64(KeyTolerance, d.Tolerance, "display geometry change that triggers a key table rebuild")
	flags.String(KeyPauseHotkey, d.PauseHotkey, `global hotkey that pauses routing, "" to disable`)
	flags.Bool(KeyNotifications, d.Notifications, "show desktop notifications")
	flags.Bool(KeyTray, d.Tray, "show the menu-bar icon")
	flags.Bool(KeyPrompt, d.Prompt, "ask macOS to show the accessibility permission prompt")
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are skipped; variables already set win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load resolves settings with precedence flag > environment > config file >
// default, then validates them.
func Load(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString(KeyConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := Config{
		ConfigFile:    v.GetString(KeyConfigFile),
		LogLevel:      v.GetString(KeyLogLevel),
		LogFormat:     v.GetString(KeyLogFormat),
		Tolerance:     v.GetFloat64(KeyTolerance),
		PauseHotkey:   v.GetString(KeyPauseHotkey),
		Notifications: v.GetBool(KeyNotifications),
		Tray:          v.GetBool(KeyTray),
		Prompt:        v.GetBool(KeyPrompt),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the application cannot run with.
func (c Config) Validate() error {
	if _, err := NormalizeLogLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "text", "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.LogFormat)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive, got %v", ErrInvalid, c.Tolerance)
	}
	if c.PauseHotkey != "" {
		if _, err := hotkey.Parse(c.PauseHotkey); err != nil {
			return fmt.Errorf("%w: pause hotkey: %v", ErrInvalid, err)
		}
	}
	return nil
}

// NormalizeLogLevel lower-cases level and maps aliases. Empty means info.
func NormalizeLogLevel(level string) (string, error) {
	switch l := strings.ToLower(strings.TrimSpace(level)); l {
	case "":
		return "info", nil
	case "debug", "info", "warn", "error":
		return l, nil
	case "warning":
		return "warn", nil
	default:
		return "", fmt.Errorf("%w: log level %q", ErrInvalid, level)
	}
}

// DotEnvPaths returns the .env files consulted at startup: the working
// directory and the user config directory.
func DotEnvPaths() []string {
	paths := []string{".env"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "kbtrackpad", ".env"))
	}
	return paths
}
