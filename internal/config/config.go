package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth       = 40
	DefaultHeight      = 10
	DefaultPen         = "*"
	DefaultHistoryFile = "history.txt"
	DefaultTheme       = "retro"
	DefaultDataDir     = ".linepaint"
)

var (
	ErrInvalidDimension = errors.New("config: width and height must be positive")
	ErrInvalidPen       = errors.New("config: pen must be one printable non-space ASCII character")
)

type Config struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Pen         string `yaml:"pen"`
	HistoryFile string `yaml:"history_file"`
	StrictClip  bool   `yaml:"strict_clip"`
	Theme       string `yaml:"theme"`
	DataDir     string `yaml:"data_dir"`
	Debug       bool   `yaml:"debug"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Pen:         DefaultPen,
		HistoryFile: DefaultHistoryFile,
		Theme:       DefaultTheme,
		DataDir:     DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, c.Width, c.Height)
	}
	if _, err := c.PenRune(); err != nil {
		return err
	}
	return nil
}

// PenRune returns the pen as a single rune.
func (c *Config) PenRune() (rune, error) {
	r, size := utf8.DecodeRuneInString(c.Pen)
	if size != len(c.Pen) || r < '!' || r > '~' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPen, c.Pen)
	}
	return r, nil
}

// ApplyPreset copies a preset's dimensions into c.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", name, ListPresets())
	}
	c.Width = p.Width
	c.Height = p.Height
	return nil
}
