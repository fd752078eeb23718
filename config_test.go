package cursor

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero damping", func(c *Config) { c.Damping = 0 }},
		{"damping above one", func(c *Config) { c.Damping = 1.5 }},
		{"negative breakpoint", func(c *Config) { c.Breakpoint = -1 }},
		{"negative quiet", func(c *Config) { c.ResizeQuiet = -time.Millisecond }},
		{"unknown motion", func(c *Config) { c.Motion = Motion(9) }},
		{"spring without frequency", func(c *Config) { c.Motion = MotionSpring; c.SpringFrequency = 0 }},
		{"negative fade", func(c *Config) { c.PaletteFade = -time.Second }},
		{"zero glyph scale", func(c *Config) { c.GlyphScale = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigValidateEdges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Damping = 1
	cfg.Breakpoint = 0
	cfg.ResizeQuiet = 0
	cfg.PaletteFade = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("edge values rejected: %v", err)
	}

	// Frequency only matters for the spring model.
	cfg = DefaultConfig()
	cfg.SpringFrequency = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("damped motion with zero frequency rejected: %v", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CURSOR_DAMPING", "0.35")
	t.Setenv("CURSOR_BREAKPOINT", "1024")
	t.Setenv("CURSOR_RESIZE_QUIET", "250ms")
	t.Setenv("CURSOR_MOTION", "spring")
	t.Setenv("CURSOR_SPRING_FREQUENCY", "8")
	t.Setenv("CURSOR_PALETTE_FADE", "0s")
	t.Setenv("CURSOR_GLYPH_SCALE", "0.8")
	t.Setenv("CURSOR_DARK_MODE", "true")
	t.Setenv("CURSOR_REDUCED_MOTION", "true")
	t.Setenv("CURSOR_DEBUG", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := Config{
		Damping:         0.35,
		Breakpoint:      1024,
		ResizeQuiet:     250 * time.Millisecond,
		Motion:          MotionSpring,
		SpringFrequency: 8,
		PaletteFade:     0,
		GlyphScale:      0.8,
		DarkMode:        true,
		ReducedMotion:   true,
		Debug:           true,
	}
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		t.Setenv("CURSOR_BREAKPOINT", "wide")
		if _, err := LoadConfig(); err == nil {
			t.Error("expected a parse error")
		}
	})
	t.Run("motion", func(t *testing.T) {
		t.Setenv("CURSOR_MOTION", "wobbly")
		if _, err := LoadConfig(); err == nil {
			t.Error("expected an unknown motion error")
		}
	})
	t.Run("range", func(t *testing.T) {
		t.Setenv("CURSOR_DAMPING", "2")
		if _, err := LoadConfig(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("err = %v, want ErrInvalidConfig", err)
		}
	})
}
