package cursor

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Page regions ---

// Region is a rectangular page element. It carries a tag name and CSS-style
// classes so the classifier treats it exactly like a DOM element.
type Region struct {
	Name    string
	TagName string
	Classes []string
	Bounds  Rect

	// Fill and Label are used by Game when drawing the page.
	Fill  Color
	Label string

	// Hidden regions are neither drawn nor hit-tested.
	Hidden bool
}

// HasClass implements Element.
func (r *Region) HasClass(name string) bool {
	for _, c := range r.Classes {
		if c == name {
			return true
		}
	}
	return false
}

// Tag implements Element.
func (r *Region) Tag() string {
	return r.TagName
}

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(Event)
}

// inputHandle is the Handle returned by PointerInput.Subscribe.
type inputHandle struct {
	id uint32
	in *PointerInput
}

// Remove implements Handle. One subscription receives every event kind, so
// removing its single registry entry detaches all of its listeners.
func (h inputHandle) Remove() {
	if h.in == nil {
		return
	}
	h.in.handlers = removeEventHandler(h.in.handlers, h.id)
}

func removeEventHandler(s []eventHandler, id uint32) []eventHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- PointerInput ---

// PointerInput is an Ebitengine EventSource. It polls the mouse once per
// Update, hit-tests the page regions, and translates what changed into
// Move, Hover, Unhover, Down, and Up events. Layout size changes are
// debounced into Resize events.
type PointerInput struct {
	regions  []*Region
	handlers []eventHandler
	dispatch []eventHandler
	nextID   uint32

	hover *Region
	down  bool
	lastX float64
	lastY float64
	seen  bool

	viewW, viewH int
	resize       *Debouncer
	now          func() time.Time

	injectQueue []syntheticPointerEvent
}

// NewPointerInput creates an input source whose resize events wait for the
// given quiet period.
func NewPointerInput(resizeQuiet time.Duration) *PointerInput {
	return &PointerInput{
		resize: NewDebouncer(resizeQuiet),
		now:    time.Now,
	}
}

// Subscribe implements EventSource.
func (in *PointerInput) Subscribe(fn func(Event)) Handle {
	in.nextID++
	id := in.nextID
	in.handlers = append(in.handlers, eventHandler{id: id, fn: fn})
	return inputHandle{id: id, in: in}
}

// Subscribers returns the number of live subscriptions.
func (in *PointerInput) Subscribers() int {
	return len(in.handlers)
}

// AddRegion appends r on top of every existing region.
func (in *PointerInput) AddRegion(r *Region) {
	in.regions = append(in.regions, r)
}

// RemoveRegion removes r. If the pointer is over r, an Unhover is emitted.
func (in *PointerInput) RemoveRegion(r *Region) {
	for i, rr := range in.regions {
		if rr == r {
			copy(in.regions[i:], in.regions[i+1:])
			in.regions[len(in.regions)-1] = nil
			in.regions = in.regions[:len(in.regions)-1]
			break
		}
	}
	if in.hover == r {
		in.hover = nil
		in.emit(Unhover())
	}
}

// Regions returns the page regions in painter order. The returned slice MUST
// NOT be mutated.
func (in *PointerInput) Regions() []*Region {
	return in.regions
}

// SetViewport records the layout size. The first call only initializes it;
// later changes are debounced into a Resize event.
func (in *PointerInput) SetViewport(w, h int) {
	if w == in.viewW && h == in.viewH {
		return
	}
	initial := in.viewW == 0 && in.viewH == 0
	in.viewW, in.viewH = w, h
	if initial {
		return
	}
	in.resize.Push(in.now(), w, h)
}

// Update processes one tick of input. Injected events take precedence over
// the real mouse for the tick they are consumed in.
func (in *PointerInput) Update() {
	if !in.processInjectedInput() {
		mx, my := ebiten.CursorPosition()
		pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		in.processPointer(float64(mx), float64(my), pressed)
	}
	if ev, ok := in.resize.Poll(in.now()); ok {
		in.emit(ev)
	}
}

// hitTest finds the topmost visible region containing (x, y).
func (in *PointerInput) hitTest(x, y float64) *Region {
	for i := len(in.regions) - 1; i >= 0; i-- {
		r := in.regions[i]
		if !r.Hidden && r.Bounds.Contains(x, y) {
			return r
		}
	}
	return nil
}

// processPointer runs the pointer state machine for one sample.
func (in *PointerInput) processPointer(x, y float64, pressed bool) {
	if !in.seen || x != in.lastX || y != in.lastY {
		in.seen = true
		in.lastX, in.lastY = x, y
		in.emit(Move(x, y))
	}

	// Leaving fires before entering, as mouseout precedes mouseover.
	target := in.hitTest(x, y)
	if target != in.hover {
		if in.hover != nil {
			in.emit(Unhover())
		}
		if target != nil {
			in.emit(Hover(target))
		}
		in.hover = target
	}

	if pressed && !in.down {
		in.down = true
		in.emit(Down())
	} else if !pressed && in.down {
		in.down = false
		in.emit(Up())
	}
}

// emit delivers ev to a snapshot of the subscribers so a handler may remove
// itself or others mid-dispatch.
func (in *PointerInput) emit(ev Event) {
	if len(in.handlers) == 0 {
		return
	}
	in.dispatch = append(in.dispatch[:0], in.handlers...)
	for _, h := range in.dispatch {
		if in.subscribed(h.id) {
			h.fn(ev)
		}
	}
}

func (in *PointerInput) subscribed(id uint32) bool {
	for _, h := range in.handlers {
		if h.id == id {
			return true
		}
	}
	return false
}
