//go:build js && wasm

package dom

import (
	"syscall/js"
	"time"

	"github.com/phanxgames/cursor"
)

// element adapts a DOM element to cursor.Element.
type element struct {
	v js.Value
}

func (e element) HasClass(name string) bool {
	list := e.v.Get("classList")
	if list.IsUndefined() || list.IsNull() {
		return false
	}
	return list.Call("contains", name).Bool()
}

func (e element) Tag() string {
	tag := e.v.Get("tagName")
	if tag.Type() != js.TypeString {
		return ""
	}
	return tag.String()
}

// Events implements cursor.EventSource on document and window listeners.
type Events struct {
	quiet time.Duration

	window   js.Value
	document js.Value
}

// NewEvents returns an event source whose resize events wait for quiet
// after the last browser resize.
func NewEvents(quiet time.Duration) *Events {
	w := js.Global()
	return &Events{quiet: quiet, window: w, document: w.Get("document")}
}

type listener struct {
	target js.Value
	typ    string
	fn     js.Func
}

// subscription owns the six listeners added by one Subscribe call and the
// pending resize timer.
type subscription struct {
	window    js.Value
	listeners []listener

	timer    js.Value
	timerSet bool
	timerFn  js.Func
	removed  bool
}

// Subscribe implements cursor.EventSource. It adds mousemove, mouseover,
// mouseout, mousedown, and mouseup listeners on the document and a resize
// listener on the window.
func (e *Events) Subscribe(fn func(cursor.Event)) cursor.Handle {
	s := &subscription{window: e.window}

	s.add(e.document, "mousemove", func(ev js.Value) {
		fn(cursor.Move(ev.Get("clientX").Float(), ev.Get("clientY").Float()))
	})
	s.add(e.document, "mouseover", func(ev js.Value) {
		fn(cursor.Hover(element{v: ev.Get("target")}))
	})
	s.add(e.document, "mouseout", func(js.Value) {
		fn(cursor.Unhover())
	})
	s.add(e.document, "mousedown", func(js.Value) {
		fn(cursor.Down())
	})
	s.add(e.document, "mouseup", func(js.Value) {
		fn(cursor.Up())
	})

	// The timer can outlive Remove by one tick; removed guards delivery.
	s.timerFn = js.FuncOf(func(js.Value, []js.Value) any {
		s.timerSet = false
		if s.removed {
			return nil
		}
		fn(cursor.Resize(e.window.Get("innerWidth").Int(), e.window.Get("innerHeight").Int()))
		return nil
	})
	ms := e.quiet.Milliseconds()
	s.add(e.window, "resize", func(js.Value) {
		s.clearTimer()
		s.timer = e.window.Call("setTimeout", s.timerFn, ms)
		s.timerSet = true
	})
	return s
}

func (s *subscription) add(target js.Value, typ string, handle func(ev js.Value)) {
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if s.removed {
			return nil
		}
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		handle(ev)
		return nil
	})
	target.Call("addEventListener", typ, fn)
	s.listeners = append(s.listeners, listener{target: target, typ: typ, fn: fn})
}

func (s *subscription) clearTimer() {
	if s.timerSet {
		s.window.Call("clearTimeout", s.timer)
		s.timerSet = false
	}
}

// Remove implements cursor.Handle. Every listener added by Subscribe is
// removed and released, and a pending resize is cancelled.
func (s *subscription) Remove() {
	if s.removed {
		return
	}
	s.removed = true
	s.clearTimer()
	for _, l := range s.listeners {
		l.target.Call("removeEventListener", l.typ, l.fn)
		l.fn.Release()
	}
	s.listeners = nil
	s.timerFn.Release()
}

const (
	darkQuery          = "(prefers-color-scheme: dark)"
	reducedMotionQuery = "(prefers-reduced-motion: reduce)"
)

// Env reads the viewport width and the reduced-motion and colour-scheme
// preferences.
func Env() cursor.Environment {
	w := js.Global()
	return cursor.Environment{
		ViewportWidth: w.Get("innerWidth").Int(),
		ReducedMotion: matches(w, reducedMotionQuery),
		DarkMode:      matches(w, darkQuery),
	}
}

func matches(window js.Value, query string) bool {
	mm := window.Get("matchMedia")
	if mm.Type() != js.TypeFunction {
		return false
	}
	return window.Call("matchMedia", query).Get("matches").Bool()
}

// WatchTheme calls fn with the new value each time the colour-scheme
// preference changes. Pass Controller.SetDarkMode to keep a mounted cursor
// in step with the page theme.
func WatchTheme(fn func(dark bool)) cursor.Handle {
	return watchMedia(js.Global(), darkQuery, fn)
}

// WatchReducedMotion calls fn each time the reduced-motion preference
// changes.
func WatchReducedMotion(fn func(reduced bool)) cursor.Handle {
	return watchMedia(js.Global(), reducedMotionQuery, fn)
}

// mediaWatch owns one "change" listener on a MediaQueryList.
type mediaWatch struct {
	list    js.Value
	fn      js.Func
	removed bool
}

func watchMedia(window js.Value, query string, fn func(bool)) *mediaWatch {
	w := &mediaWatch{}
	if window.Get("matchMedia").Type() != js.TypeFunction {
		w.removed = true
		return w
	}
	w.list = window.Call("matchMedia", query)
	w.fn = js.FuncOf(func(_ js.Value, args []js.Value) any {
		if w.removed || len(args) == 0 {
			return nil
		}
		fn(args[0].Get("matches").Bool())
		return nil
	})
	w.list.Call("addEventListener", "change", w.fn)
	return w
}

// Remove implements cursor.Handle.
func (w *mediaWatch) Remove() {
	if w.removed {
		return
	}
	w.removed = true
	w.list.Call("removeEventListener", "change", w.fn)
	w.fn.Release()
}
