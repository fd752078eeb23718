//go:build js && wasm

package dom

import (
	"syscall/js"
	"testing"
)

// fakeMediaList stands in for the MediaQueryList returned by matchMedia.
type fakeMediaList struct {
	obj       js.Value
	listeners []js.Value
	removed   int
	funcs     []js.Func
}

func installMatchMedia(t *testing.T) *fakeMediaList {
	t.Helper()
	f := &fakeMediaList{obj: js.Global().Get("Object").New()}
	f.obj.Set("matches", false)
	add := js.FuncOf(func(_ js.Value, args []js.Value) any {
		f.listeners = append(f.listeners, args[1])
		return nil
	})
	remove := js.FuncOf(func(_ js.Value, args []js.Value) any {
		f.removed++
		for i, l := range f.listeners {
			if l.Equal(args[1]) {
				f.listeners = append(f.listeners[:i], f.listeners[i+1:]...)
				break
			}
		}
		return nil
	})
	mm := js.FuncOf(func(js.Value, []js.Value) any { return f.obj })
	f.obj.Set("addEventListener", add)
	f.obj.Set("removeEventListener", remove)
	f.funcs = []js.Func{add, remove, mm}

	prev := js.Global().Get("matchMedia")
	js.Global().Set("matchMedia", mm)
	t.Cleanup(func() {
		js.Global().Set("matchMedia", prev)
		for _, fn := range f.funcs {
			fn.Release()
		}
	})
	return f
}

func (f *fakeMediaList) fire(matches bool) {
	ev := js.Global().Get("Object").New()
	ev.Set("matches", matches)
	for _, l := range append([]js.Value(nil), f.listeners...) {
		l.Invoke(ev)
	}
}

func TestWatchThemeDeliversChanges(t *testing.T) {
	media := installMatchMedia(t)

	var got []bool
	h := WatchTheme(func(dark bool) { got = append(got, dark) })
	if len(media.listeners) != 1 {
		t.Fatalf("listeners = %d, want 1", len(media.listeners))
	}

	media.fire(true)
	media.fire(false)
	if len(got) != 2 || !got[0] || got[1] {
		t.Errorf("deliveries = %v, want [true false]", got)
	}

	h.Remove()
	h.Remove()
	if media.removed != 1 || len(media.listeners) != 0 {
		t.Errorf("removed=%d listeners=%d, want 1/0", media.removed, len(media.listeners))
	}
	media.fire(true)
	if len(got) != 2 {
		t.Error("change delivered after Remove")
	}
}

func TestWatchWithoutMatchMedia(t *testing.T) {
	prev := js.Global().Get("matchMedia")
	js.Global().Set("matchMedia", js.Undefined())
	t.Cleanup(func() { js.Global().Set("matchMedia", prev) })

	h := WatchReducedMotion(func(bool) { t.Error("unexpected delivery") })
	h.Remove()
}
