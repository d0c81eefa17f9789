// SPDX-License-Identifier: MIT

// Package config resolves runtime settings from defaults, an optional YAML
// file, SLOTGRAPH_* environment variables and bound flags, in rising order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/slotgraph/core"
)

// EnvPrefix is the prefix of environment overrides, e.g. SLOTGRAPH_LOG_LEVEL.
const EnvPrefix = "SLOTGRAPH"

// DefaultFile is the config file looked up in the home directory.
const DefaultFile = ".slotgraph.yaml"

// Keys.
const (
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyRoutesCapacity = "routes.capacity"
	KeySocialCapacity = "social.capacity"
	KeyLabelLimit     = "labels.limit"
	KeyScenario       = "scenario"
	KeyTrace          = "trace"
	KeyMetricsOut     = "metrics.out"
)

var (
	// ErrBadLogLevel indicates a level other than debug, info, warn or error.
	ErrBadLogLevel = errors.New("config: bad log level")

	// ErrBadLogFormat indicates a format other than text or json.
	ErrBadLogFormat = errors.New("config: bad log format")

	// ErrBadCapacity indicates a non-positive capacity or label limit.
	ErrBadCapacity = errors.New("config: capacity must be positive")
)

// Config is the resolved configuration.
type Config struct {
	Log      LogConfig     `mapstructure:"log"`
	Routes   GraphConfig   `mapstructure:"routes"`
	Social   GraphConfig   `mapstructure:"social"`
	Labels   LabelConfig   `mapstructure:"labels"`
	Scenario string        `mapstructure:"scenario"`
	Trace    bool          `mapstructure:"trace"`
	Metrics  MetricsConfig `mapstructure:"metrics"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GraphConfig sizes one store preset.
type GraphConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// LabelConfig bounds stored labels.
type LabelConfig struct {
	Limit int `mapstructure:"limit"`
}

// MetricsConfig controls the metrics dump.
type MetricsConfig struct {
	Out string `mapstructure:"out"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Routes: GraphConfig{Capacity: core.RouteCapacity},
		Social: GraphConfig{Capacity: core.SocialCapacity},
		Labels: LabelConfig{Limit: core.DefaultLabelLimit},
	}
}

// SetDefaults registers Default() on v so that environment overrides are
// visible to Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFormat, d.Log.Format)
	v.SetDefault(KeyRoutesCapacity, d.Routes.Capacity)
	v.SetDefault(KeySocialCapacity, d.Social.Capacity)
	v.SetDefault(KeyLabelLimit, d.Labels.Limit)
	v.SetDefault(KeyScenario, d.Scenario)
	v.SetDefault(KeyTrace, d.Trace)
	v.SetDefault(KeyMetricsOut, d.Metrics.Out)
}

// Load resolves the configuration held by v. When file is empty the default
// file in the home directory is read if it exists; a missing default file is
// not an error, a missing explicit file is.
func Load(v *viper.Viper, file string) (Config, error) {
	// 1. Defaults and environment
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 2. Config file
	explicit := file != ""
	if !explicit {
		if home, err := os.UserHomeDir(); err == nil {
			file = filepath.Join(home, DefaultFile)
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("config: read %s: %w", file, err)
			}
		}
	}

	// 3. Decode and check
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerations and sizes.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogFormat, c.Log.Format)
	}
	if c.Routes.Capacity <= 0 || c.Social.Capacity <= 0 {
		return fmt.Errorf("%w: routes=%d social=%d", ErrBadCapacity, c.Routes.Capacity, c.Social.Capacity)
	}
	if c.Labels.Limit <= 0 {
		return fmt.Errorf("%w: labels.limit=%d", ErrBadCapacity, c.Labels.Limit)
	}

	return nil
}

// Level parses Log.Level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return lvl, fmt.Errorf("%w: %q", ErrBadLogLevel, c.Log.Level)
	}

	return lvl, nil
}

// Logger builds a slog.Logger writing to w in the configured format.
func (c Config) Logger(w io.Writer) *slog.Logger {
	lvl, err := c.Level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// RouteOptions returns the store options for route maps.
func (c Config) RouteOptions() []core.GraphOption {
	return []core.GraphOption{
		core.WithCapacity(c.Routes.Capacity),
		core.WithLabelLimit(c.Labels.Limit),
	}
}

// SocialOptions returns the store options for social networks.
func (c Config) SocialOptions() []core.GraphOption {
	return []core.GraphOption{
		core.WithCapacity(c.Social.Capacity),
		core.WithLabelLimit(c.Labels.Limit),
	}
}
