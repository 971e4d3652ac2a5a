package app

import (
	"flag"
	"strconv"

	"tensor-field/internal/logging"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int

	Width     int
	Height    int
	Nearest   int
	Bounds    string
	Weighting string
	Tint      bool
	Image     string

	Velocity float64
	Step     float64
	Angle    string

	LogLevel  string
	LogFormat string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:       "radial",
		Scale:     2,
		TPS:       60,
		Seed:      42,
		HUDWidth:  240,
		Width:     400,
		Height:    400,
		Nearest:   3,
		Bounds:    "clamp",
		Weighting: "proportional",
		Velocity:  10,
		Step:      1,
		Angle:     "atan2",
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "field preset: radial, random, uniform or image")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "agent ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random preset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels, 0 hides it")
	fs.IntVar(&c.Width, "w", c.Width, "field width")
	fs.IntVar(&c.Height, "h", c.Height, "field height")
	fs.IntVar(&c.Nearest, "nearest", c.Nearest, "samples blended per cell")
	fs.StringVar(&c.Bounds, "bounds", c.Bounds, "off-field lookups: clamp or reject")
	fs.StringVar(&c.Weighting, "weighting", c.Weighting, "quadrangulation weights: proportional or inverse")
	fs.BoolVar(&c.Tint, "tint", c.Tint, "tint every cell the agent reads")
	fs.StringVar(&c.Image, "image", c.Image, "image file for the image preset")
	fs.Float64Var(&c.Velocity, "velocity", c.Velocity, "turn divisor, larger turns slower")
	fs.Float64Var(&c.Step, "step", c.Step, "distance moved per tick")
	fs.StringVar(&c.Angle, "angle", c.Angle, "heading from the second click: atan2 or tangent")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: console or json")
}

// SimConfig converts the field and navigator settings to the string map the
// sim factories take.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"w":         strconv.Itoa(c.Width),
		"h":         strconv.Itoa(c.Height),
		"seed":      strconv.FormatInt(c.Seed, 10),
		"nearest":   strconv.Itoa(c.Nearest),
		"bounds":    c.Bounds,
		"weighting": c.Weighting,
		"tint":      strconv.FormatBool(c.Tint),
		"velocity":  strconv.FormatFloat(c.Velocity, 'f', -1, 64),
		"step":      strconv.FormatFloat(c.Step, 'f', -1, 64),
		"angle":     c.Angle,
	}
	if c.Image != "" {
		m["image"] = c.Image
	}
	return m
}

// Logging returns the logger settings.
func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.LogLevel
	cfg.Format = c.LogFormat
	return cfg
}
