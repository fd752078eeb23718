package cursor

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func newTestOverlay(w, h int) (*Overlay, *[]ebiten.CursorModeType) {
	o := NewOverlay(w, h)
	var modes []ebiten.CursorModeType
	o.setCursorMode = func(m ebiten.CursorModeType) { modes = append(modes, m) }
	return o, &modes
}

func TestOverlayViewport(t *testing.T) {
	o, _ := newTestOverlay(800, 600)
	if w, h := o.ViewportSize(); w != 800 || h != 600 {
		t.Errorf("ViewportSize = %dx%d", w, h)
	}
	o.SetViewport(1024, 768)
	if w, h := o.ViewportSize(); w != 1024 || h != 768 {
		t.Errorf("after SetViewport = %dx%d", w, h)
	}
}

func TestOverlayCanvasHidesCursor(t *testing.T) {
	o, modes := newTestOverlay(320, 240)

	c1, err := o.NewCanvas(320, 240)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	c2, err := o.NewCanvas(320, 240)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	if o.Canvases() != 2 {
		t.Fatalf("Canvases = %d, want 2", o.Canvases())
	}
	if len(*modes) != 1 || (*modes)[0] != ebiten.CursorModeHidden {
		t.Fatalf("cursor modes = %v, want [hidden]", *modes)
	}

	c1.Remove()
	c1.Remove()
	if o.Canvases() != 1 || len(*modes) != 1 {
		t.Errorf("cursor restored while a canvas remains: modes=%v", *modes)
	}
	c2.Remove()
	if o.Canvases() != 0 {
		t.Errorf("Canvases = %d, want 0", o.Canvases())
	}
	if len(*modes) != 2 || (*modes)[1] != ebiten.CursorModeVisible {
		t.Errorf("cursor modes = %v, want [hidden visible]", *modes)
	}
}

func TestOverlayNewCanvasEmptyViewport(t *testing.T) {
	o, modes := newTestOverlay(0, 0)
	_, err := o.NewCanvas(0, 0)
	if !errors.Is(err, ErrNoContext) {
		t.Fatalf("err = %v, want ErrNoContext", err)
	}
	if o.Canvases() != 0 || len(*modes) != 0 {
		t.Error("failed NewCanvas should not attach or hide the cursor")
	}
}

func TestOverlayCanvasDrawing(t *testing.T) {
	o, _ := newTestOverlay(200, 200)
	c, err := o.NewCanvas(200, 200)
	if err != nil {
		t.Fatal(err)
	}
	oc := c.(*overlayCanvas)

	c.Clear()
	c.FillCircle(100, 100, 20, DefaultPalette.AccentLight)
	c.FillCircle(100, 100, 0, DefaultPalette.AccentLight)
	c.DrawGlyph(GlyphArrowRight, 100, 100, 20, ColorWhite)
	c.DrawGlyph(GlyphArrowUpRight, 100, 100, 20, ColorWhite)

	c.Resize(300, 150)
	if oc.w != 300 || oc.h != 150 {
		t.Errorf("size = %dx%d, want 300x150", oc.w, oc.h)
	}
	if b := oc.image.Bounds(); b.Dx() != 300 || b.Dy() != 150 {
		t.Errorf("image bounds = %v", b)
	}
	c.Resize(0, 10)
	if oc.w != 300 {
		t.Error("non-positive resize should be ignored")
	}

	c.Remove()
	if oc.image != nil {
		t.Error("Remove should release the image")
	}
	// Calls after Remove are ignored.
	c.Clear()
	c.FillCircle(1, 1, 1, ColorWhite)
	c.Resize(10, 10)
}

func TestOverlayFrames(t *testing.T) {
	o, _ := newTestOverlay(100, 100)
	now := o.start
	o.now = func() time.Time { return now }

	var got []float64
	var cb FrameFunc
	cb = func(ts float64) {
		got = append(got, ts)
		o.RequestFrame(cb)
	}

	id := o.RequestFrame(cb)
	if id == 0 {
		t.Fatal("FrameID must be non-zero")
	}
	if o.PendingFrames() != 1 {
		t.Fatalf("PendingFrames = %d", o.PendingFrames())
	}

	now = now.Add(500 * time.Millisecond)
	o.runFrames()
	if len(got) != 1 || got[0] != 0.5 {
		t.Fatalf("timestamps = %v, want [0.5]", got)
	}
	// The rescheduled callback waits for the next run.
	if o.PendingFrames() != 1 {
		t.Fatalf("PendingFrames after run = %d, want 1", o.PendingFrames())
	}

	now = now.Add(500 * time.Millisecond)
	o.runFrames()
	if len(got) != 2 || got[1] != 1 {
		t.Fatalf("timestamps = %v, want [0.5 1]", got)
	}
}

func TestOverlayCancelFrame(t *testing.T) {
	o, _ := newTestOverlay(100, 100)
	ran := 0
	a := o.RequestFrame(func(float64) { ran++ })
	b := o.RequestFrame(func(float64) { ran += 10 })
	if a == b {
		t.Fatal("frame IDs should be unique")
	}

	o.CancelFrame(a)
	o.CancelFrame(a)
	o.CancelFrame(999)
	if o.PendingFrames() != 1 {
		t.Fatalf("PendingFrames = %d, want 1", o.PendingFrames())
	}
	o.runFrames()
	if ran != 10 {
		t.Errorf("ran = %d, want only the uncancelled callback", ran)
	}
	if o.PendingFrames() != 0 {
		t.Errorf("PendingFrames = %d, want 0", o.PendingFrames())
	}
}

func TestOverlayHostsEngine(t *testing.T) {
	o, modes := newTestOverlay(1280, 720)
	e, err := New(o, DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if o.Canvases() != 1 || o.PendingFrames() != 1 {
		t.Fatalf("canvases=%d frames=%d, want 1/1", o.Canvases(), o.PendingFrames())
	}

	e.Handle(Move(640, 360))
	for i := 0; i < 5; i++ {
		o.runFrames()
	}
	if o.PendingFrames() != 1 {
		t.Errorf("PendingFrames = %d, want 1", o.PendingFrames())
	}

	e.Dispose()
	if o.Canvases() != 0 || o.PendingFrames() != 0 {
		t.Errorf("after Dispose: canvases=%d frames=%d", o.Canvases(), o.PendingFrames())
	}
	if n := len(*modes); n != 2 || (*modes)[n-1] != ebiten.CursorModeVisible {
		t.Errorf("cursor modes = %v, want native cursor restored", *modes)
	}
}
