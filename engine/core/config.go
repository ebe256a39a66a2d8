package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config for the engine run.
type Config struct {
	Title      string     `toml:"title"`
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	VSync      bool       `toml:"vsync"`
	ClearColor [4]float32 `toml:"clear_color"` // RGBA
	GLMajor    int        `toml:"gl_major"`
	GLMinor    int        `toml:"gl_minor"`
}

// DefaultConfig is an 800x600 GL 3.3 core window.
func DefaultConfig() Config {
	return Config{
		Title:      "First OpenGL",
		Width:      800,
		Height:     600,
		VSync:      true,
		ClearColor: [4]float32{0.2, 0.3, 0.3, 1},
		GLMajor:    3,
		GLMinor:    3,
	}
}

// LoadConfig overlays the TOML file at path on DefaultConfig. A missing
// file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("load config %q: %w", path, err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 3) {
		return fmt.Errorf("OpenGL %d.%d is older than 3.3 core", c.GLMajor, c.GLMinor)
	}
	return nil
}
