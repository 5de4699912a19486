// Package config loads the optional cockpit.yaml demo configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the optional cockpit.yaml configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Output  OutputConfig  `yaml:"output"`
	Gamepad GamepadConfig `yaml:"gamepad"`
	Images  ImagesConfig  `yaml:"images"`
}

// DisplayConfig controls the rendered surface and frame count.
type DisplayConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
	Frames int `yaml:"frames,omitempty"`
	FPS    int `yaml:"fps,omitempty"`
}

// OutputConfig controls where rendered frames go.
type OutputConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// GamepadConfig selects an optional joystick device.
type GamepadConfig struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Device  string `yaml:"device,omitempty"`
}

// ImagesConfig points the snapshot carousel at a directory.
type ImagesConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// LoadOptional reads the config file if present; a missing file yields
// an empty config so defaults apply.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve fills defaults and validates the configuration.
func Resolve(path string) (*Config, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}

	if cfg.Display.Width == 0 {
		cfg.Display.Width = 800
	}
	if cfg.Display.Height == 0 {
		cfg.Display.Height = 480
	}
	if cfg.Display.Frames == 0 {
		cfg.Display.Frames = 90
	}
	if cfg.Display.FPS == 0 {
		cfg.Display.FPS = 30
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "frames"
	}
	if cfg.Gamepad.Device == "" {
		cfg.Gamepad.Device = "/dev/input/js0"
	}

	if cfg.Display.Width < 0 || cfg.Display.Height < 0 {
		return nil, fmt.Errorf("display size must be positive (got %dx%d)", cfg.Display.Width, cfg.Display.Height)
	}
	if cfg.Display.FPS < 1 {
		return nil, fmt.Errorf("display.fps must be at least 1 (got %d)", cfg.Display.FPS)
	}
	return cfg, nil
}
