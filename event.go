package cursor

// EventKind identifies a kind of pointer or viewport event.
type EventKind uint8

const (
	EventMove    EventKind = iota // pointer moved (mousemove)
	EventHover                    // pointer entered an element (mouseover)
	EventUnhover                  // pointer left an element (mouseout)
	EventDown                     // button pressed (mousedown)
	EventUp                       // button released (mouseup)
	EventResize                   // viewport resized, already debounced
)

var eventKindNames = [...]string{
	EventMove:    "move",
	EventHover:   "hover",
	EventUnhover: "unhover",
	EventDown:    "down",
	EventUp:      "up",
	EventResize:  "resize",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Event is the single message type the engine consumes. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind EventKind
	// X, Y are screen coordinates for EventMove.
	X, Y float64
	// Target is the element under the pointer for EventHover.
	Target Element
	// Width, Height are the new viewport size for EventResize.
	Width, Height int
}

// Move returns an EventMove to (x, y).
func Move(x, y float64) Event {
	return Event{Kind: EventMove, X: x, Y: y}
}

// Hover returns an EventHover over el.
func Hover(el Element) Event {
	return Event{Kind: EventHover, Target: el}
}

// Unhover returns an EventUnhover.
func Unhover() Event {
	return Event{Kind: EventUnhover}
}

// Down returns an EventDown.
func Down() Event {
	return Event{Kind: EventDown}
}

// Up returns an EventUp.
func Up() Event {
	return Event{Kind: EventUp}
}

// Resize returns an EventResize to a w x h viewport.
func Resize(w, h int) Event {
	return Event{Kind: EventResize, Width: w, Height: h}
}
