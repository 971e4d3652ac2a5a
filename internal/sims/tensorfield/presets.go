package tensorfield

import (
	"fmt"

	"tensor-field/internal/core"
	"tensor-field/internal/field"
	pkgcore "tensor-field/pkg/core"
)

// RadialSamples places a dark sample at the centre and bright samples on the
// four corners of a w×h grid.
func RadialSamples(w, h int) []core.Sample {
	fw, fh := float64(w), float64(h)
	return []core.Sample{
		{X: fw / 2, Y: fh / 2, Value: -30},
		{X: fw, Y: fh, Value: 255},
		{X: 0, Y: fh, Value: 255},
		{X: fw, Y: 0, Value: 255},
		{X: 0, Y: 0, Value: 255},
	}
}

// RandomSamples scatters count samples over a w×h grid with values in
// [0,255). The same seed yields the same samples.
func RandomSamples(seed int64, count, w, h int) []core.Sample {
	rng := pkgcore.NewRNG(seed)
	points := rng.Scatter(count, float64(w), float64(h), 255)
	samples := make([]core.Sample, len(points))
	for i, p := range points {
		samples[i] = core.Sample{X: p[0], Y: p[1], Value: p[2]}
	}
	return samples
}

// BuildField constructs the field described by cfg. seed overrides cfg.Seed
// for the random preset.
func BuildField(cfg Config, seed int64) (*field.Field, error) {
	switch cfg.Preset {
	case PresetRadial:
		return field.Build(RadialSamples(cfg.Width, cfg.Height), cfg.Width, cfg.Height, cfg.Field)
	case PresetRandom:
		return field.Build(RandomSamples(seed, cfg.Count, cfg.Width, cfg.Height), cfg.Width, cfg.Height, cfg.Field)
	case PresetUniform:
		return field.Uniform(cfg.Width, cfg.Height, uint8(cfg.Value), cfg.Field)
	case PresetImage:
		return field.LoadImage(cfg.Image, cfg.Field)
	default:
		return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, cfg.Preset)
	}
}
