package cursor

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Palette holds the fill colours keyed by (hover family, dark mode) and the
// glyph colour drawn over the accent.
type Palette struct {
	Light       Color // non-hover fill on a light theme
	Dark        Color // non-hover fill on a dark theme
	AccentLight Color // hover fill on a light theme
	AccentDark  Color // hover fill on a dark theme
	GlyphLight  Color
	GlyphDark   Color
}

// DefaultPalette is translucent black/white for plain states and a solid
// orange accent for hover states.
var DefaultPalette = Palette{
	Light:       Color{R: 0, G: 0, B: 0, A: 0.5},
	Dark:        Color{R: 1, G: 1, B: 1, A: 0.5},
	AccentLight: Color{R: 0.957, G: 0.447, B: 0.153, A: 1},
	AccentDark:  Color{R: 0.984, G: 0.573, B: 0.235, A: 1},
	GlyphLight:  ColorWhite,
	GlyphDark:   Color{R: 0.07, G: 0.07, B: 0.07, A: 1},
}

// Fill returns the circle colour for s.
func (p Palette) Fill(s State, dark bool) Color {
	switch {
	case s.isHoverFamily() && dark:
		return p.AccentDark
	case s.isHoverFamily():
		return p.AccentLight
	case dark:
		return p.Dark
	default:
		return p.Light
	}
}

// Glyph returns the glyph colour.
func (p Palette) Glyph(dark bool) Color {
	if dark {
		return p.GlyphDark
	}
	return p.GlyphLight
}

// paletteFade tracks the cross-fade from the previous theme to the current
// one. progress runs from 0 (previous theme) to 1 (current theme).
type paletteFade struct {
	tween    *gween.Tween
	progress float64
}

// newPaletteFade starts a fade at progress begin that reaches 1 after the
// remaining fraction of d.
func newPaletteFade(begin float64, d time.Duration) *paletteFade {
	remaining := float32(d.Seconds() * (1 - begin))
	return &paletteFade{
		tween:    gween.New(float32(begin), 1, remaining, ease.OutQuad),
		progress: begin,
	}
}

// update advances the fade by dt seconds and reports whether it finished.
func (f *paletteFade) update(dt float64) bool {
	v, done := f.tween.Update(float32(dt))
	f.progress = float64(v)
	if done {
		f.progress = 1
	}
	return done
}
