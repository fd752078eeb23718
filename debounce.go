package cursor

import "time"

// Debouncer coalesces bursts of viewport sizes into a single EventResize
// delivered once no new size has arrived for the quiet period. Every Push
// cancels the pending delivery and schedules a new one.
//
// It is polled rather than timer-driven so delivery happens on the caller's
// goroutine, between frames.
type Debouncer struct {
	quiet    time.Duration
	pending  bool
	deadline time.Time
	w, h     int
}

// NewDebouncer creates a Debouncer with the given quiet period.
func NewDebouncer(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet}
}

// Push records a new viewport size observed at now.
func (d *Debouncer) Push(now time.Time, w, h int) {
	d.pending = true
	d.deadline = now.Add(d.quiet)
	d.w, d.h = w, h
}

// Poll returns the latest size once the quiet period has elapsed since the
// last Push. Each burst is delivered at most once.
func (d *Debouncer) Poll(now time.Time) (Event, bool) {
	if !d.pending || now.Before(d.deadline) {
		return Event{}, false
	}
	d.pending = false
	return Resize(d.w, d.h), true
}

// Cancel drops any pending delivery.
func (d *Debouncer) Cancel() {
	d.pending = false
}

// Pending reports whether a delivery is scheduled.
func (d *Debouncer) Pending() bool {
	return d.pending
}
