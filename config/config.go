package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Color mode names accepted by HYPERCUBE_COLOR and the -color flag.
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Frame rate bounds for the render ticker.
const (
	DefaultFPS = 60
	MaxFPS     = 240
)

// Options holds the startup preferences. Environment variables seed the
// values; command-line flags overlay them in main.
type Options struct {
	HighContrast bool   `env:"HYPERCUBE_HIGH_CONTRAST" envDefault:"false"`
	Sound        bool   `env:"HYPERCUBE_SOUND"         envDefault:"true"`
	FPS          int    `env:"HYPERCUBE_FPS"           envDefault:"60"`
	ColorMode    string `env:"HYPERCUBE_COLOR"         envDefault:"auto"`
	LogFile      string `env:"HYPERCUBE_LOG"`
}

// Defaults returns the built-in option values used when the environment
// cannot be parsed.
func Defaults() Options {
	return Options{
		Sound:     true,
		FPS:       DefaultFPS,
		ColorMode: ColorAuto,
	}
}

// Load resolves Options from HYPERCUBE_* environment variables. Malformed
// values fall back to the defaults rather than aborting startup.
func Load() Options {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return Defaults()
	}
	return opts.Normalize()
}

// Normalize clamps out-of-range values back to their defaults. Called
// again after the flag overlay in main.
func (o Options) Normalize() Options {
	if o.FPS < 1 || o.FPS > MaxFPS {
		o.FPS = DefaultFPS
	}
	switch o.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		o.ColorMode = ColorAuto
	}
	return o
}

// FrameInterval converts the FPS option into a frame ticker period.
func (o Options) FrameInterval() time.Duration {
	return time.Second / time.Duration(o.FPS)
}
