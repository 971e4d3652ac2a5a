// Package scenario loads headless navigator runs from YAML files.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"tensor-field/internal/core"
	"tensor-field/internal/field"
	"tensor-field/internal/navigator"
	"tensor-field/internal/sims/tensorfield"
)

var (
	// ErrNotFound is returned when the scenario file does not exist.
	ErrNotFound = errors.New("scenario: file not found")
	// ErrInvalidFormat is returned when the file is not valid YAML.
	ErrInvalidFormat = errors.New("scenario: invalid format")
	// ErrInvalid is returned when a decoded scenario fails validation.
	ErrInvalid = errors.New("scenario: invalid")
)

// PresetSamples builds the field from the listed samples.
const PresetSamples = "samples"

// Point is a YAML coordinate pair.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Core converts to a grid point.
func (p Point) Core() core.Point { return core.Point{X: p.X, Y: p.Y} }

// Sample is a YAML field sample.
type Sample struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Value float64 `yaml:"value"`
}

// FieldSpec describes the field source and lookup options.
type FieldSpec struct {
	Preset    string   `yaml:"preset"`
	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	Seed      int64    `yaml:"seed"`
	Count     int      `yaml:"count"`
	Value     *int     `yaml:"value"`
	Image     string   `yaml:"image"`
	Samples   []Sample `yaml:"samples"`
	Nearest   int      `yaml:"nearest"`
	Bounds    string   `yaml:"bounds"`
	Weighting string   `yaml:"weighting"`
	Tint      bool     `yaml:"tint"`
}

// NavigatorSpec holds the stepping tunables. Zero values take defaults.
type NavigatorSpec struct {
	Velocity float64 `yaml:"velocity"`
	Step     float64 `yaml:"step"`
	Angle    string  `yaml:"angle"`
}

// Scenario is one headless run: a field, a start point, a point fixing the
// heading and a tick budget.
type Scenario struct {
	Name      string        `yaml:"name"`
	Field     FieldSpec     `yaml:"field"`
	Navigator NavigatorSpec `yaml:"navigator"`
	Start     Point         `yaml:"start"`
	Target    Point         `yaml:"target"`
	Ticks     int           `yaml:"ticks"`
}

// LoadFile reads a scenario from a .yaml or .yml file. A relative image path
// is resolved against the file's directory.
func LoadFile(path string) (*Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("scenario: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidFormat, path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, err
	}
	if s.Field.Image != "" && !filepath.IsAbs(s.Field.Image) {
		s.Field.Image = filepath.Join(filepath.Dir(path), s.Field.Image)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Load decodes and validates a scenario.
func Load(r io.Reader) (*Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("scenario: read: %w", err)
	}
	s := &Scenario{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadString decodes a scenario held in memory.
func LoadString(content string) (*Scenario, error) {
	return Load(strings.NewReader(content))
}

func (s *Scenario) applyDefaults() {
	if s.Field.Preset == "" {
		if len(s.Field.Samples) > 0 {
			s.Field.Preset = PresetSamples
		} else {
			s.Field.Preset = string(tensorfield.PresetRadial)
		}
	}
	defaults := tensorfield.DefaultConfig(tensorfield.Preset(s.Field.Preset))
	if s.Field.Width == 0 {
		s.Field.Width = defaults.Width
	}
	if s.Field.Height == 0 {
		s.Field.Height = defaults.Height
	}
	if s.Field.Count == 0 {
		s.Field.Count = defaults.Count
	}
	if s.Field.Nearest == 0 {
		s.Field.Nearest = field.DefaultNearest
	}
	nav := navigator.DefaultConfig()
	if s.Navigator.Velocity == 0 {
		s.Navigator.Velocity = nav.Velocity
	}
	if s.Navigator.Step == 0 {
		s.Navigator.Step = nav.StepSize
	}
}

// Validate checks the field source, tunables and selection points.
func (s *Scenario) Validate() error {
	if s.Ticks <= 0 {
		return fmt.Errorf("%w: ticks must be positive, got %d", ErrInvalid, s.Ticks)
	}
	if !finite(s.Start.X) || !finite(s.Start.Y) {
		return fmt.Errorf("%w: start point is not finite", ErrInvalid)
	}
	if !finite(s.Target.X) || !finite(s.Target.Y) {
		return fmt.Errorf("%w: target point is not finite", ErrInvalid)
	}
	if _, err := s.NavigatorConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if s.Field.Preset == PresetSamples {
		if len(s.Field.Samples) == 0 {
			return fmt.Errorf("%w: samples preset needs samples", ErrInvalid)
		}
		if _, err := s.buildOptions(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		return nil
	}
	cfg, err := s.presetConfig()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// NavigatorConfig converts the navigator section.
func (s *Scenario) NavigatorConfig() (navigator.Config, error) {
	mode, err := navigator.ParseAngleMode(s.Navigator.Angle)
	if err != nil {
		return navigator.Config{}, err
	}
	cfg := navigator.Config{Velocity: s.Navigator.Velocity, StepSize: s.Navigator.Step, AngleMode: mode}
	return cfg, cfg.Validate()
}

// BuildField constructs the field the scenario describes.
func (s *Scenario) BuildField() (*field.Field, error) {
	if s.Field.Preset == PresetSamples {
		opts, err := s.buildOptions()
		if err != nil {
			return nil, err
		}
		samples := make([]core.Sample, len(s.Field.Samples))
		for i, sm := range s.Field.Samples {
			samples[i] = core.Sample{X: sm.X, Y: sm.Y, Value: sm.Value}
		}
		return field.Build(samples, s.Field.Width, s.Field.Height, opts)
	}
	cfg, err := s.presetConfig()
	if err != nil {
		return nil, err
	}
	return tensorfield.BuildField(cfg, cfg.Seed)
}

func (s *Scenario) buildOptions() (field.BuildOptions, error) {
	opts := field.DefaultBuildOptions()
	opts.Nearest = s.Field.Nearest
	opts.Tint = s.Field.Tint
	b, err := field.ParseBounds(s.Field.Bounds)
	if err != nil {
		return opts, err
	}
	opts.Bounds = b
	w, err := field.ParseWeighting(s.Field.Weighting)
	if err != nil {
		return opts, err
	}
	opts.Weighting = w
	return opts, nil
}

func (s *Scenario) presetConfig() (tensorfield.Config, error) {
	cfg := tensorfield.DefaultConfig(tensorfield.Preset(s.Field.Preset))
	opts, err := s.buildOptions()
	if err != nil {
		return cfg, err
	}
	nav, err := s.NavigatorConfig()
	if err != nil {
		return cfg, err
	}
	cfg.Width = s.Field.Width
	cfg.Height = s.Field.Height
	cfg.Seed = s.Field.Seed
	cfg.Count = s.Field.Count
	if s.Field.Value != nil {
		cfg.Value = *s.Field.Value
	}
	cfg.Image = s.Field.Image
	cfg.Field = opts
	cfg.Navigator = nav
	return cfg, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
