package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/spectra/internal/spectrum"
	"github.com/llehouerou/spectra/internal/transport"
	"github.com/llehouerou/spectra/internal/visualizer"
)

const appName = "spectra"

type Config struct {
	DefaultVolume float64 `koanf:"default_volume"` // 0-1 (default: 0.7)
	SeekStep      float64 `koanf:"seek_step"`      // seconds, arrow keys (default: 5)
	SkipStep      float64 `koanf:"skip_step"`      // seconds, shift+arrows (default: 10)
	Autoplay      bool    `koanf:"autoplay"`       // play as soon as a source is ready
	MPRIS         *bool   `koanf:"mpris"`          // D-Bus remote control on Linux (default: true)

	Visualizer VisualizerConfig `koanf:"visualizer"`

	// Genre classification server (optional)
	Classifier ClassifierConfig `koanf:"classifier"`

	// Per-genre color overrides, keyed by genre ("rock" = "#ff0000")
	Genres map[string]string `koanf:"genres"`
}

// VisualizerConfig holds frequency bar settings.
type VisualizerConfig struct {
	Bars        int     `koanf:"bars"`         // default: 64
	FFTSize     int     `koanf:"fft_size"`     // power of two in [32, 32768] (default: 256)
	FPS         int     `koanf:"fps"`          // 1-120 (default: 30)
	Height      int     `koanf:"height"`       // rows (default: 8)
	Smoothing   float64 `koanf:"smoothing"`    // 0-1 (default: 0.8)
	MinDecibels float64 `koanf:"min_decibels"` // default: -100
	MaxDecibels float64 `koanf:"max_decibels"` // default: -30
}

// ClassifierConfig holds the genre classification server settings.
type ClassifierConfig struct {
	URL     string        `koanf:"url"`     // e.g., "http://localhost:5000"
	Timeout time.Duration `koanf:"timeout"` // default: 60s
}

// Load reads the config files in order of priority (last wins), then
// extra if non-empty, and applies defaults.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}
	if extra != "" {
		if err := k.Load(file.Provider(expandPath(extra)), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.Normalize()
	return cfg
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/spectra/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Normalize applies defaults and clamps out-of-range values.
func (c *Config) Normalize() {
	if c.DefaultVolume <= 0 || c.DefaultVolume > 1 {
		c.DefaultVolume = transport.DefaultVolume
	}
	if c.SeekStep <= 0 {
		c.SeekStep = 5
	}
	if c.SkipStep <= 0 {
		c.SkipStep = 10
	}
	if c.MPRIS == nil {
		enabled := true
		c.MPRIS = &enabled
	}

	v := &c.Visualizer
	if v.Bars <= 0 {
		v.Bars = visualizer.DefaultBars
	}
	if !spectrum.ValidFFTSize(v.FFTSize) {
		v.FFTSize = spectrum.DefaultFFTSize
	}
	if v.FPS <= 0 {
		v.FPS = visualizer.DefaultFPS
	}
	v.FPS = min(v.FPS, 120)
	if v.Height <= 0 {
		v.Height = 8
	}
	if v.Smoothing <= 0 || v.Smoothing >= 1 {
		v.Smoothing = spectrum.DefaultSmoothing
	}
	if v.MinDecibels >= v.MaxDecibels {
		v.MinDecibels = spectrum.DefaultMinDecibels
		v.MaxDecibels = spectrum.DefaultMaxDecibels
	}

	c.Classifier.URL = strings.TrimSuffix(c.Classifier.URL, "/")
	if c.Classifier.Timeout <= 0 {
		c.Classifier.Timeout = 60 * time.Second
	}

	genres := make(map[string]string, len(c.Genres))
	for k, v := range c.Genres {
		genres[strings.ToLower(strings.TrimSpace(k))] = v
	}
	c.Genres = genres
}

// MPRISEnabled returns true if the D-Bus remote control should start.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// HasClassifier returns true if a classification server is configured.
func (c *Config) HasClassifier() bool {
	return c.Classifier.URL != ""
}

// SpectrumOptions returns the analyzer settings.
func (c *Config) SpectrumOptions() spectrum.Options {
	return spectrum.Options{
		FFTSize:     c.Visualizer.FFTSize,
		Smoothing:   c.Visualizer.Smoothing,
		MinDecibels: c.Visualizer.MinDecibels,
		MaxDecibels: c.Visualizer.MaxDecibels,
	}
}
