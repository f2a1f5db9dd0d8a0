// Package config provides configuration loading and management.
package config

import (
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for breakstudio.
type Config struct {
	// Canvas
	CanvasWidth  float64 `yaml:"canvas_width"`
	CanvasHeight float64 `yaml:"canvas_height"`
	Background   string  `yaml:"background"`

	// Storage
	Storage StorageConfig `yaml:"storage"`

	// Server
	Server ServerConfig `yaml:"server"`

	// Export
	Export ExportConfig `yaml:"export"`

	// Editor
	ToolboxStatePath string `yaml:"toolbox_state_path"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Debug
	Debug bool `yaml:"debug"`
}

// StorageConfig selects where designs are persisted.
type StorageConfig struct {
	// Driver is "sqlite" or "memory".
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// ServerConfig holds the HTTP persistence service settings.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// ExportConfig holds PNG export settings.
type ExportConfig struct {
	Scale      float64 `yaml:"scale"`
	TimeoutMs  int     `yaml:"timeout_ms"`
	FontPath   string  `yaml:"font_path"`
	Headless   bool    `yaml:"headless"`
	ChromePath string  `yaml:"chrome_path"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Canvas
		CanvasWidth:  1920,
		CanvasHeight: 1080,
		Background:   "#ffffff",

		Storage: StorageConfig{
			Driver: "sqlite",
			Path:   "./breakstudio.db",
		},

		Server: ServerConfig{
			Listen: ":8723",
		},

		Export: ExportConfig{
			Scale:     1.0,
			TimeoutMs: 30000,
			Headless:  true,
		},

		ToolboxStatePath: "./toolbox.json",

		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.Black
	}

	var r, g, b uint8
	for i, c := range []byte{hex[0], hex[1]} {
		v := hexValue(c)
		if i == 0 {
			r = v << 4
		} else {
			r |= v
		}
	}
	for i, c := range []byte{hex[2], hex[3]} {
		v := hexValue(c)
		if i == 0 {
			g = v << 4
		} else {
			g |= v
		}
	}
	for i, c := range []byte{hex[4], hex[5]} {
		v := hexValue(c)
		if i == 0 {
			b = v << 4
		} else {
			b |= v
		}
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
