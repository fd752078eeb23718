package cursor

// Canvas is a full-viewport drawing surface. It is owned by exactly one
// Engine, which removes it on Dispose.
type Canvas interface {
	// Clear erases the whole surface to transparent.
	Clear()
	// FillCircle paints a filled circle centered at (x, y).
	FillCircle(x, y, radius float64, c Color)
	// DrawGlyph paints g centered at (x, y) at the given font size.
	DrawGlyph(g Glyph, x, y, size float64, c Color)
	// Resize changes the backing store to w x h pixels.
	Resize(w, h int)
	// Remove detaches the surface from the display and releases it.
	Remove()
}

// FrameID identifies a pending frame callback. Hosts never return zero.
type FrameID uint64

// FrameFunc is invoked once per display refresh with a monotonically
// increasing timestamp in seconds.
type FrameFunc func(ts float64)

// Host provides the display resources an Engine needs.
type Host interface {
	// NewCanvas creates and attaches a canvas of w x h pixels above all other
	// content, transparent to pointer input.
	NewCanvas(w, h int) (Canvas, error)
	// RequestFrame schedules fn for the next display refresh.
	RequestFrame(fn FrameFunc) FrameID
	// CancelFrame drops a callback scheduled with RequestFrame. Unknown or
	// already-run IDs are ignored.
	CancelFrame(id FrameID)
	// ViewportSize reports the current viewport in pixels.
	ViewportSize() (w, h int)
}

// Handle removes a subscription made with EventSource.Subscribe.
type Handle interface {
	// Remove unregisters every listener the subscription added. Calling it
	// more than once is a no-op.
	Remove()
}

// EventSource delivers pointer and debounced resize events.
type EventSource interface {
	Subscribe(fn func(Event)) Handle
}
