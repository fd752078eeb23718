package cursor

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-hover", "after-hover"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	g := newTestGame(t)
	g.Screenshot("hover")
	g.ScreenshotCursor("tap")
	want := []capture{{"hover", CaptureFrame}, {"tap", CaptureCursor}}
	if len(g.screenshotQueue) != len(want) {
		t.Fatalf("queue len = %d, want %d", len(g.screenshotQueue), len(want))
	}
	for i := range want {
		if g.screenshotQueue[i] != want[i] {
			t.Errorf("queue[%d] = %+v, want %+v", i, g.screenshotQueue[i], want[i])
		}
	}
}

func TestScreenshotName(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig())
	dark, _ := newTestEngine(t, DefaultConfig())
	dark.Handle(Hover(el("div", ClassHoverLink)))
	dark.SetDarkMode(true)

	tests := []struct {
		name     string
		c        capture
		e        *Engine
		mountErr error
		want     string
	}{
		{"default frame", capture{"start", CaptureFrame}, e, nil, "S_start_frame_default_light.png"},
		{"cursor only dark", capture{"link hover", CaptureCursor}, dark, nil, "S_link_hover_cursor_hover-link_dark.png"},
		{"unmounted", capture{"", CaptureFrame}, nil, nil, "S_unlabeled_frame_unmounted_light.png"},
		{"reduced motion", capture{"rm", CaptureFrame}, nil, ErrReducedMotion, "S_rm_frame_reduced-motion_light.png"},
		{"narrow", capture{"n", CaptureCursor}, nil, ErrNarrowViewport, "S_n_cursor_narrow_light.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := screenshotName("S", tt.c, tt.e, tt.mountErr); got != tt.want {
				t.Errorf("screenshotName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	g := newTestGame(t)
	if g.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", g.ScreenshotDir, "screenshots")
	}
}
