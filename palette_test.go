package cursor

import (
	"testing"
	"time"
)

func TestPaletteFill(t *testing.T) {
	p := DefaultPalette
	tests := []struct {
		s    State
		dark bool
		want Color
	}{
		{StateDefault, false, p.Light},
		{StateDefault, true, p.Dark},
		{StateHover, false, p.AccentLight},
		{StateHover, true, p.AccentDark},
		{StateHoverLink, false, p.AccentLight},
		{StateHoverLink, true, p.AccentDark},
		{StateHoverSmall, false, p.Light},
		{StateTap, true, p.Dark},
		{StateHoverTap, false, p.Light},
	}
	for _, tt := range tests {
		if got := p.Fill(tt.s, tt.dark); got != tt.want {
			t.Errorf("Fill(%s, dark=%v) = %v, want %v", tt.s, tt.dark, got, tt.want)
		}
	}
}

func TestDefaultPaletteAlpha(t *testing.T) {
	if DefaultPalette.Light.A != 0.5 || DefaultPalette.Dark.A != 0.5 {
		t.Error("plain fills should be half transparent")
	}
	if DefaultPalette.AccentLight.A != 1 || DefaultPalette.AccentDark.A != 1 {
		t.Error("accent fills should be opaque")
	}
	if DefaultPalette.Glyph(false) != DefaultPalette.GlyphLight || DefaultPalette.Glyph(true) != DefaultPalette.GlyphDark {
		t.Error("Glyph should pick by theme")
	}
}

func TestPaletteFadeCompletes(t *testing.T) {
	f := newPaletteFade(0, 300*time.Millisecond)
	if f.progress != 0 {
		t.Fatalf("initial progress = %v", f.progress)
	}
	prev := f.progress
	done := false
	for i := 0; i < 60 && !done; i++ {
		done = f.update(1.0 / 60)
		if f.progress < prev {
			t.Fatalf("progress went backwards: %v -> %v", prev, f.progress)
		}
		prev = f.progress
	}
	if !done {
		t.Fatal("fade did not finish within one second")
	}
	if f.progress != 1 {
		t.Errorf("final progress = %v, want 1", f.progress)
	}
}

func TestPaletteFadeResumesFromBegin(t *testing.T) {
	f := newPaletteFade(0.6, 300*time.Millisecond)
	if f.progress != 0.6 {
		t.Fatalf("initial progress = %v, want 0.6", f.progress)
	}
	f.update(0.01)
	if f.progress < 0.6 {
		t.Errorf("progress %v fell below begin", f.progress)
	}
	// Only 40% of the duration remains.
	if !f.update(0.2) {
		t.Error("fade should finish after the remaining fraction")
	}
}
