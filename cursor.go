package cursor

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at paint time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// lerpColor blends a toward b by t in [0, 1].
func lerpColor(a, b Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// RGBA converts to a premultiplied color.Color suitable for image fills and
// vector drawing.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a screen-space point in pixels.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// State is the interaction mode that drives the cursor's size, colour, and
// glyph. Exactly one is active per engine.
type State uint8

const (
	StateDefault    State = iota // plain pointer
	StateHover                   // explicit cursor-hover target
	StateHoverLink               // explicit cursor-hover-link target
	StateHoverSmall              // native interactive element or cursor-hover-small
	StateTap                     // button held outside a hover target
	StateHoverTap                // button held while in StateHover
	StateDisabled                // cursor-disabled target; nothing is painted
)

var stateNames = [...]string{
	StateDefault:    "default",
	StateHover:      "hover",
	StateHoverLink:  "hover-link",
	StateHoverSmall: "hover-small",
	StateTap:        "tap",
	StateHoverTap:   "hover-tap",
	StateDisabled:   "disabled",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// isHoverFamily reports whether s paints with the accent colour and a glyph.
func (s State) isHoverFamily() bool {
	return s == StateHover || s == StateHoverLink
}

// Glyph identifies the icon drawn inside the cursor circle.
type Glyph uint8

const (
	GlyphNone         Glyph = iota // no icon
	GlyphArrowRight                // →
	GlyphArrowUpRight              // ↗
)

// Rune returns the codepoint hosts render for g, or 0 for GlyphNone.
func (g Glyph) Rune() rune {
	switch g {
	case GlyphArrowRight:
		return '→'
	case GlyphArrowUpRight:
		return '↗'
	default:
		return 0
	}
}

// Marker classes that collaborating markup applies to opt elements into
// custom cursor behavior.
const (
	ClassDisabled   = "cursor-disabled"
	ClassHover      = "cursor-hover"
	ClassHoverLink  = "cursor-hover-link"
	ClassHoverSmall = "cursor-hover-small"
)
