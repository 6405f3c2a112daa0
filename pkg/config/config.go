// Package config loads eulertour settings from a TOML file.
//
// The file is optional. Missing files yield [Default]; present files are
// decoded strictly, so a misspelled key is reported rather than ignored.
//
//	[cache]
//	dir = "/var/cache/eulertour"
//	ttl = "24h"
//	redis_url = "redis://localhost:6379/0"
//	prefix = "eulertour:"
//
//	[server]
//	addr = ":8080"
//
//	[render]
//	formats = ["dot", "svg"]
//
//	[log]
//	level = "debug"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/eulertour/pkg/errors"
)

const (
	appName  = "eulertour"
	fileName = "config.toml"
)

// Config is the root of the TOML document.
type Config struct {
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	Render RenderConfig `toml:"render"`
	Log    LogConfig    `toml:"log"`
}

// CacheConfig selects and tunes the cache back-end.
type CacheConfig struct {
	Dir      string `toml:"dir"`       // file cache root; empty means the XDG default
	TTL      string `toml:"ttl"`       // Go duration; "0" or empty disables expiry
	RedisURL string `toml:"redis_url"` // when set, Redis replaces the file cache
	Prefix   string `toml:"prefix"`    // key namespace, mainly for shared Redis
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string `toml:"addr"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
}

// RenderConfig holds defaults for render output.
type RenderConfig struct {
	Formats []string `toml:"formats"`
}

// LogConfig holds logging defaults; --verbose overrides Level.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Cache:  CacheConfig{TTL: "168h"},
		Server: ServerConfig{Addr: ":8080", ShutdownTimeout: "10s"},
		Render: RenderConfig{Formats: []string{"svg"}},
		Log:    LogConfig{Level: "info"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/eulertour/config.toml, falling back
// to ~/.config/eulertour/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// DefaultCacheDir returns $XDG_CACHE_HOME/eulertour, falling back to
// ~/.cache/eulertour.
func DefaultCacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// Load reads the file at path over the defaults. A missing file is not an
// error. Unknown keys and invalid values are.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, apperrors.New(apperrors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, apperrors.New(apperrors.ErrCodeInvalidConfig, "unknown key %s", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks durations and enumerations.
func (c Config) Validate() error {
	if _, err := c.CacheTTL(); err != nil {
		return err
	}
	if _, err := c.ShutdownTimeout(); err != nil {
		return err
	}
	if c.Log.Level != "" && !slices.Contains(logLevels, c.Log.Level) {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "log.level must be one of %s, got %q", strings.Join(logLevels, ", "), c.Log.Level)
	}
	return nil
}

// CacheTTL parses Cache.TTL. Empty means no expiry.
func (c Config) CacheTTL() (time.Duration, error) {
	return parseDuration("cache.ttl", c.Cache.TTL)
}

// ShutdownTimeout parses Server.ShutdownTimeout. Empty means no timeout.
func (c Config) ShutdownTimeout() (time.Duration, error) {
	return parseDuration("server.shutdown_timeout", c.Server.ShutdownTimeout)
}

func parseDuration(key, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "%s", key)
	}
	if d < 0 {
		return 0, apperrors.New(apperrors.ErrCodeInvalidConfig, "%s must not be negative", key)
	}
	return d, nil
}

// String renders the config back to TOML, as shown by "eulertour config".
func (c Config) String() string {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return fmt.Sprintf("# encode error: %v\n", err)
	}
	return b.String()
}
