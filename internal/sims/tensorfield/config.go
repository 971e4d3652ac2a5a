package tensorfield

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tensor-field/internal/field"
	"tensor-field/internal/navigator"
)

// Preset names the field source.
type Preset string

const (
	// PresetRadial is a low centre surrounded by four bright corners.
	PresetRadial Preset = "radial"
	// PresetRandom scatters random samples, seeded.
	PresetRandom Preset = "random"
	// PresetUniform is a constant grid.
	PresetUniform Preset = "uniform"
	// PresetImage reads intensities from the red channel of an image file.
	PresetImage Preset = "image"
)

// ErrInvalidConfig is returned for unparseable or out-of-range settings.
var ErrInvalidConfig = errors.New("tensorfield: invalid config")

// Config controls the field source and the navigator driving across it.
type Config struct {
	Preset Preset
	Width  int
	Height int
	Seed   int64

	// Count is the number of random samples.
	Count int
	// Value is the intensity of a uniform field.
	Value int
	// Image is the file read by PresetImage.
	Image string

	Field     field.BuildOptions
	Navigator navigator.Config
}

// DefaultConfig returns the standard configuration for preset.
func DefaultConfig(preset Preset) Config {
	return Config{
		Preset:    preset,
		Width:     400,
		Height:    400,
		Seed:      1,
		Count:     11,
		Value:     127,
		Field:     field.DefaultBuildOptions(),
		Navigator: navigator.DefaultConfig(),
	}
}

// Validate checks dimensions and preset-specific settings.
func (c Config) Validate() error {
	if c.Preset != PresetImage && (c.Width <= 0 || c.Height <= 0) {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	switch c.Preset {
	case PresetRadial, PresetUniform:
	case PresetRandom:
		if c.Count < 1 {
			return fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidConfig, c.Count)
		}
	case PresetImage:
		if c.Image == "" {
			return fmt.Errorf("%w: image preset needs a path", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, c.Preset)
	}
	if c.Value < 0 || c.Value > 255 {
		return fmt.Errorf("%w: value must be in [0,255], got %d", ErrInvalidConfig, c.Value)
	}
	if c.Field.Nearest < 1 {
		return fmt.Errorf("%w: nearest must be at least 1, got %d", ErrInvalidConfig, c.Field.Nearest)
	}
	return c.Navigator.Validate()
}

// FromMap populates a Config for preset from a string map (flag-style
// key/value pairs). Navigator keys are handled by navigator.FromMap.
func FromMap(preset Preset, cfg map[string]string) (Config, error) {
	c := DefaultConfig(preset)
	nav, err := navigator.FromMap(cfg)
	if err != nil {
		return c, err
	}
	c.Navigator = nav
	if cfg == nil {
		return c, c.Validate()
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"w", &c.Width},
		{"h", &c.Height},
		{"count", &c.Count},
		{"value", &c.Value},
		{"nearest", &c.Field.Nearest},
	}
	for _, entry := range ints {
		v, ok := cfg[entry.key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return c, fmt.Errorf("%w: %s %q", ErrInvalidConfig, entry.key, v)
		}
		*entry.dst = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: seed %q", ErrInvalidConfig, v)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["bounds"]; ok {
		b, err := field.ParseBounds(v)
		if err != nil {
			return c, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		c.Field.Bounds = b
	}
	if v, ok := cfg["weighting"]; ok {
		w, err := field.ParseWeighting(v)
		if err != nil {
			return c, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		c.Field.Weighting = w
	}
	if v, ok := cfg["tint"]; ok {
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return c, fmt.Errorf("%w: tint %q", ErrInvalidConfig, v)
		}
		c.Field.Tint = parsed
	}
	if v, ok := cfg["image"]; ok {
		c.Image = v
	}
	return c, c.Validate()
}
