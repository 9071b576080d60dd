package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when TURNSTILE_CONFIG is unset
const DefaultPath = "config/turnstile.yaml"

// EnvPath names the environment variable that overrides DefaultPath
const EnvPath = "TURNSTILE_CONFIG"

// Config holds all settings for the viewer
type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`

	// RotationStep is the yaw added per turn key press, in degrees
	RotationStep float64 `yaml:"rotation_step_degrees"`

	ShadersDir string `yaml:"shaders_dir"`
	ShowHelp   bool   `yaml:"show_help"`
	LogLevel   string `yaml:"log_level"`
}

// WindowConfig holds window parameters
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CameraConfig holds the orthographic view volume
type CameraConfig struct {
	ViewLength float32 `yaml:"view_length"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// Default returns Config with the stock settings
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  900,
			Height: 600,
			Title:  "turnstile",
		},
		Camera: CameraConfig{
			ViewLength: 500,
			Near:       -1000,
			Far:        1000,
		},
		RotationStep: 18,
		ShadersDir:   "assets/shaders",
		ShowHelp:     true,
		LogLevel:     "info",
	}
}

// Load reads config from a YAML file over the defaults and validates the result.
// If the file doesn't exist, the defaults are used.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the config path from the environment, or DefaultPath
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Validate checks values the viewer cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.ViewLength <= 0 {
		errs = append(errs, fmt.Errorf("camera.view_length %v must be positive", c.Camera.ViewLength))
	}
	if c.Camera.Near >= c.Camera.Far {
		errs = append(errs, fmt.Errorf("camera.near %v must be below camera.far %v", c.Camera.Near, c.Camera.Far))
	}
	if c.RotationStep <= 0 || c.RotationStep >= 360 {
		errs = append(errs, fmt.Errorf("rotation_step_degrees %v must be in (0, 360)", c.RotationStep))
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// AspectRatio returns window width over height
func (c Config) AspectRatio() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}

// ParseLogLevel maps a level name onto slog.Level. Empty means info.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", s)
	}
}
