// Package config loads topoview settings from a YAML file, the environment
// and defaults, in that order of precedence (environment wins).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/topoview/pkg/geometry"
	"github.com/dd0wney/topoview/pkg/logging"
	"github.com/dd0wney/topoview/pkg/validation"
	"github.com/dd0wney/topoview/pkg/viewport"
	"github.com/dd0wney/topoview/pkg/visualization"
)

// Environment variables that override file settings.
const (
	EnvLogLevel    = "TOPOVIEW_LOG_LEVEL"
	EnvLogFile     = "TOPOVIEW_LOG_FILE"
	EnvSnapshot    = "TOPOVIEW_SNAPSHOT"
	EnvMetricsAddr = "TOPOVIEW_METRICS_ADDR"
)

// Default configuration values
const (
	DefaultZoomStep        = 1.2
	DefaultMinZoom         = 0.2
	DefaultMaxZoom         = 5.0
	DefaultHitRadius       = 4.0
	DefaultCanvasSize      = 100.0
	DefaultRootBand        = 0.2
	DefaultBandHeight      = 0.2
	DefaultRefreshInterval = 5 * time.Second
	DefaultLogLevel        = "info"

	minRefreshInterval = 100 * time.Millisecond
)

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Config is the complete program configuration.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Layout   LayoutConfig   `yaml:"layout"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ViewportConfig tunes zoom and hit-testing.
type ViewportConfig struct {
	ZoomStep  float64 `yaml:"zoom_step"`
	MinZoom   float64 `yaml:"min_zoom"`
	MaxZoom   float64 `yaml:"max_zoom"`
	HitRadius float64 `yaml:"hit_radius"`
}

// LayoutConfig sizes the canvas and the depth bands of the tree layout.
type LayoutConfig struct {
	CanvasWidth  float64 `yaml:"canvas_width"`
	CanvasHeight float64 `yaml:"canvas_height"`
	RootBand     float64 `yaml:"root_band"`
	BandHeight   float64 `yaml:"band_height"`
}

// SnapshotConfig points at the snapshot file and how often to reread it.
type SnapshotConfig struct {
	Path            string        `yaml:"path"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// LoggingConfig selects the log level and file. An empty file discards logs.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// MetricsConfig sets the /metrics listen address. Empty disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads path (optional: an empty path or a missing file yields the
// defaults), applies environment overrides and defaults, then validates.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logging.Debug("config file not found, using defaults", logging.Path(path))
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.ApplyEnv(os.Getenv)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides file settings from the environment. getenv is
// os.Getenv outside tests.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
	if v := getenv(EnvSnapshot); v != "" {
		c.Snapshot.Path = v
	}
	if v := getenv(EnvMetricsAddr); v != "" {
		c.Metrics.Addr = v
	}
}

// ApplyDefaults fills every unset field.
func (c *Config) ApplyDefaults() {
	c.Viewport.ZoomStep = validation.DefaultOrFloat(c.Viewport.ZoomStep, DefaultZoomStep)
	c.Viewport.MinZoom = validation.DefaultOrFloat(c.Viewport.MinZoom, DefaultMinZoom)
	c.Viewport.MaxZoom = validation.DefaultOrFloat(c.Viewport.MaxZoom, DefaultMaxZoom)
	c.Viewport.HitRadius = validation.DefaultOrFloat(c.Viewport.HitRadius, DefaultHitRadius)

	c.Layout.CanvasWidth = validation.DefaultOrFloat(c.Layout.CanvasWidth, DefaultCanvasSize)
	c.Layout.CanvasHeight = validation.DefaultOrFloat(c.Layout.CanvasHeight, DefaultCanvasSize)
	c.Layout.RootBand = validation.DefaultOrFloat(c.Layout.RootBand, DefaultRootBand)
	c.Layout.BandHeight = validation.DefaultOrFloat(c.Layout.BandHeight, DefaultBandHeight)

	c.Snapshot.RefreshInterval = validation.DefaultOrDuration(c.Snapshot.RefreshInterval, DefaultRefreshInterval)
	c.Logging.Level = validation.DefaultOr(c.Logging.Level, DefaultLogLevel)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	v := validation.NewConfigValidator("Config")

	v.GreaterFloat("Viewport.ZoomStep", c.Viewport.ZoomStep, 1).
		PositiveFloat("Viewport.MinZoom", c.Viewport.MinZoom).
		Ordered("Viewport.MinZoom", c.Viewport.MinZoom, "Viewport.MaxZoom", c.Viewport.MaxZoom).
		PositiveFloat("Viewport.HitRadius", c.Viewport.HitRadius)

	v.RangeFloat("Layout.CanvasWidth", c.Layout.CanvasWidth, 1, geometry.ModelMax).
		RangeFloat("Layout.CanvasHeight", c.Layout.CanvasHeight, 1, geometry.ModelMax).
		RangeFloat("Layout.RootBand", c.Layout.RootBand, 0, 1).
		RangeFloat("Layout.BandHeight", c.Layout.BandHeight, 0, 1)

	v.MinDuration("Snapshot.RefreshInterval", c.Snapshot.RefreshInterval, minRefreshInterval)

	v.OneOf("Logging.Level", strings.ToLower(c.Logging.Level), logLevels)

	v.When(c.Metrics.Addr != "", func(v *validation.ConfigValidator) {
		v.Custom("Metrics.Addr", func() error {
			_, _, err := net.SplitHostPort(c.Metrics.Addr)
			return err
		})
	})

	return v.Validate()
}

// ViewportConfig converts the file settings into controller settings.
func (c *Config) ViewportConfig() viewport.Config {
	return viewport.Config{
		ZoomStep:  c.Viewport.ZoomStep,
		MinZoom:   c.Viewport.MinZoom,
		MaxZoom:   c.Viewport.MaxZoom,
		HitRadius: c.Viewport.HitRadius,
		Layout: visualization.LayoutConfig{
			Canvas:     geometry.Size{Width: c.Layout.CanvasWidth, Height: c.Layout.CanvasHeight},
			RootBand:   c.Layout.RootBand,
			BandHeight: c.Layout.BandHeight,
		},
	}
}
