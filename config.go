package cursor

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Defaults used by DefaultConfig.
const (
	DefaultBreakpoint      = 768
	DefaultResizeQuiet     = 100 * time.Millisecond
	DefaultSpringFrequency = 6.0
	DefaultPaletteFade     = 300 * time.Millisecond
	DefaultGlyphScale      = 1.0
)

// Config tunes an Engine and the Controller that mounts it. Fields map to
// CURSOR_-prefixed environment variables in LoadConfig.
type Config struct {
	// Damping is the per-frame interpolation factor, in (0, 1].
	Damping float64 `env:"DAMPING"`
	// Breakpoint is the viewport width in pixels at or below which the
	// cursor is not mounted.
	Breakpoint int `env:"BREAKPOINT"`
	// ResizeQuiet is how long resize events must stop before one is delivered.
	ResizeQuiet time.Duration `env:"RESIZE_QUIET"`
	// Motion selects the follower model.
	Motion Motion `env:"MOTION"`
	// SpringFrequency is the angular frequency for MotionSpring.
	SpringFrequency float64 `env:"SPRING_FREQUENCY"`
	// PaletteFade is the cross-fade duration after a dark mode toggle.
	// Zero switches colours instantly.
	PaletteFade time.Duration `env:"PALETTE_FADE"`
	// GlyphScale multiplies the target radius to get the glyph font size.
	GlyphScale float64 `env:"GLYPH_SCALE"`
	// DarkMode is the initial theme.
	DarkMode bool `env:"DARK_MODE"`
	// ReducedMotion is the initial reduced-motion preference for hosts that
	// cannot query the platform for it.
	ReducedMotion bool `env:"REDUCED_MOTION"`
	// Debug enables per-frame stats on stderr.
	Debug bool `env:"DEBUG"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Damping:         DefaultDamping,
		Breakpoint:      DefaultBreakpoint,
		ResizeQuiet:     DefaultResizeQuiet,
		Motion:          MotionDamped,
		SpringFrequency: DefaultSpringFrequency,
		PaletteFade:     DefaultPaletteFade,
		GlyphScale:      DefaultGlyphScale,
	}
}

// LoadConfig returns DefaultConfig overridden by CURSOR_* environment
// variables, validated.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "CURSOR_"}); err != nil {
		return Config{}, fmt.Errorf("cursor: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Damping <= 0 || c.Damping > 1:
		return fmt.Errorf("%w: damping %v outside (0, 1]", ErrInvalidConfig, c.Damping)
	case c.Breakpoint < 0:
		return fmt.Errorf("%w: negative breakpoint %d", ErrInvalidConfig, c.Breakpoint)
	case c.ResizeQuiet < 0:
		return fmt.Errorf("%w: negative resize quiet period %v", ErrInvalidConfig, c.ResizeQuiet)
	case c.Motion != MotionDamped && c.Motion != MotionSpring:
		return fmt.Errorf("%w: unknown motion %d", ErrInvalidConfig, c.Motion)
	case c.Motion == MotionSpring && c.SpringFrequency <= 0:
		return fmt.Errorf("%w: spring frequency %v must be positive", ErrInvalidConfig, c.SpringFrequency)
	case c.PaletteFade < 0:
		return fmt.Errorf("%w: negative palette fade %v", ErrInvalidConfig, c.PaletteFade)
	case c.GlyphScale <= 0:
		return fmt.Errorf("%w: glyph scale %v must be positive", ErrInvalidConfig, c.GlyphScale)
	}
	return nil
}

// newFollower builds the follower selected by c.
func (c Config) newFollower() *Follower {
	if c.Motion == MotionSpring {
		return NewSpringFollower(c.SpringFrequency)
	}
	return NewFollower(c.Damping)
}
