package cursor

// syntheticPointerEvent represents a single injected pointer sample.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// lastInjectedPressed reports the button state the queue will leave behind.
func (in *PointerInput) lastInjectedPressed() bool {
	if n := len(in.injectQueue); n > 0 {
		return in.injectQueue[n-1].pressed
	}
	return in.down
}

// InjectMove queues a pointer sample at (x, y) that keeps the current button
// state. The event is consumed on the next Update.
func (in *PointerInput) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: in.lastInjectedPressed(),
	})
}

// InjectPress queues a button press at (x, y).
func (in *PointerInput) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
	})
}

// InjectRelease queues a button release at (x, y).
func (in *PointerInput) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: false,
	})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two ticks.
func (in *PointerInput) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectPath queues moves from (fromX, fromY) to (toX, toY), linearly
// interpolated over the given number of ticks (minimum 1).
func (in *PointerInput) InjectPath(fromX, fromY, toX, toY float64, ticks int) {
	if ticks < 1 {
		ticks = 1
	}
	for i := 1; i <= ticks; i++ {
		t := float64(i) / float64(ticks)
		in.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// InjectResize records a layout change as if the window had been resized.
// The Resize event is delivered after the quiet period. The next real
// layout size reported through SetViewport replaces it.
func (in *PointerInput) InjectResize(w, h int) {
	in.SetViewport(w, h)
}

// Pending returns the number of queued synthetic samples.
func (in *PointerInput) Pending() int {
	return len(in.injectQueue)
}

// processInjectedInput pops one synthetic sample and feeds it through
// processPointer. Returns true if a sample was consumed (real mouse input
// should be skipped).
func (in *PointerInput) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	in.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
