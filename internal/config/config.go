package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Fireworks - click to launch, Esc/Q: Quit"

	// Loop parameters
	SpawnChance = 0.03
	TrailAlpha  = 0.2
	TerminalFPS = 60

	// Firework parameters
	ParticleCount  = 100
	MinAscentSpeed = 7.0
	AscentSpread   = 3.0
	TargetMargin   = 50.0
	RocketRadius   = 3.0
	SparkRadius    = 1.0

	// Particle parameters
	Gravity      = 0.1
	MinRadius    = 1.0
	RadiusSpread = 2.0
	MinSpeed     = 2.0
	SpeedSpread  = 4.0
	MinDecay     = 0.005
	DecaySpread  = 0.01
)

// DefaultPalette is the set of colors a firework picks from.
var DefaultPalette = []string{
	"#ff0000", "#00ff00", "#0000ff",
	"#ffff00", "#ff00ff", "#00ffff",
	"#ffa500", "#ffc0cb", "#8a2be2",
}

// Config holds the tunables that may be overridden from a YAML file.
//
// Fixed physics stay in the constants above.
type Config struct {
	Window      WindowConfig `yaml:"window"`
	SpawnChance float64      `yaml:"spawnChance"`
	TrailAlpha  float64      `yaml:"trailAlpha"`
	Seed        uint64       `yaml:"seed"`
	FPS         int          `yaml:"fps"`
	Palette     []string     `yaml:"palette"`
}

// WindowConfig describes the initial window of the ebiten front end.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		SpawnChance: SpawnChance,
		TrailAlpha:  TrailAlpha,
		FPS:         TerminalFPS,
		Palette:     append([]string(nil), DefaultPalette...),
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks every tunable is within its usable range.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.SpawnChance < 0 || c.SpawnChance > 1 {
		return fmt.Errorf("spawnChance must be within [0, 1], got %.3f", c.SpawnChance)
	}
	if c.TrailAlpha <= 0 || c.TrailAlpha > 1 {
		return fmt.Errorf("trailAlpha must be within (0, 1], got %.3f", c.TrailAlpha)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if _, err := c.ParsePalette(); err != nil {
		return err
	}
	return nil
}

// ParsePalette converts the configured hex strings into opaque colors.
func (c *Config) ParsePalette() ([]color.RGBA, error) {
	if len(c.Palette) == 0 {
		return nil, fmt.Errorf("palette must not be empty")
	}
	out := make([]color.RGBA, 0, len(c.Palette))
	for _, s := range c.Palette {
		clr, err := ParseHexColor(s)
		if err != nil {
			return nil, err
		}
		out = append(out, clr)
	}
	return out, nil
}

// ParseHexColor parses "#rrggbb" (the leading '#' is optional).
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
