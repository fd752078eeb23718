package cursor

// glyphGate is the fraction of the target radius the circle must reach before
// its glyph is drawn.
const glyphGate = 0.8

// gateEpsilon absorbs rounding in glyphGate*target so a circle at exactly
// 80% of its target passes.
const gateEpsilon = 1e-9

// Appearance is the visual target for a State. SizeFraction is a radius in
// hundredths of the viewport width.
type Appearance struct {
	SizeFraction float64
	Glyph        Glyph
}

var appearances = [...]Appearance{
	StateDefault:    {SizeFraction: 0.75},
	StateHover:      {SizeFraction: 2.0, Glyph: GlyphArrowRight},
	StateHoverLink:  {SizeFraction: 2.0, Glyph: GlyphArrowUpRight},
	StateHoverSmall: {SizeFraction: 0.4},
	StateTap:        {SizeFraction: 0.3},
	StateHoverTap:   {SizeFraction: 0.3},
	StateDisabled:   {SizeFraction: 0},
}

// AppearanceFor returns the appearance of s. Unknown states look like
// StateDefault.
func AppearanceFor(s State) Appearance {
	if int(s) < len(appearances) {
		return appearances[s]
	}
	return appearances[StateDefault]
}

// TargetSize returns the radius in pixels for s at the given viewport width.
func TargetSize(s State, viewportWidth int) float64 {
	if viewportWidth <= 0 {
		return 0
	}
	return AppearanceFor(s).SizeFraction * float64(viewportWidth) / 100
}

// GlyphVisible reports whether a circle of radius current has grown far
// enough toward target to carry its glyph.
func GlyphVisible(current, target float64) bool {
	return target > 0 && current >= glyphGate*target-gateEpsilon
}
