//go:build js && wasm

package dom

import (
	"fmt"
	"math"
	"strconv"
	"syscall/js"

	"github.com/phanxgames/cursor"
)

// topLayer is the highest z-index browsers honour.
const topLayer = "2147483647"

// defaultGlyphFont is the CSS font family for cursor glyphs.
const defaultGlyphFont = "system-ui, sans-serif"

type frameEntry struct {
	handle js.Value
	fn     js.Func
}

// Host implements cursor.Host on the browser document.
type Host struct {
	// GlyphFont is the CSS font family used for glyphs.
	GlyphFont string

	window   js.Value
	document js.Value

	frames map[cursor.FrameID]frameEntry
	nextID cursor.FrameID
}

// NewHost returns a Host bound to the global window and document.
func NewHost() *Host {
	w := js.Global()
	return &Host{
		GlyphFont: defaultGlyphFont,
		window:    w,
		document:  w.Get("document"),
		frames:    make(map[cursor.FrameID]frameEntry),
	}
}

// ViewportSize implements cursor.Host.
func (h *Host) ViewportSize() (int, int) {
	return h.window.Get("innerWidth").Int(), h.window.Get("innerHeight").Int()
}

// NewCanvas implements cursor.Host. The canvas is fixed over the viewport,
// ignores pointer events, and sits on the top stacking layer. The body's
// native cursor is hidden until the canvas is removed.
func (h *Host) NewCanvas(w, hgt int) (cursor.Canvas, error) {
	el := h.document.Call("createElement", "canvas")
	ctx := el.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, cursor.ErrNoContext
	}

	style := el.Get("style")
	style.Set("position", "fixed")
	style.Set("top", "0")
	style.Set("left", "0")
	style.Set("pointerEvents", "none")
	style.Set("zIndex", topLayer)
	el.Set("width", w)
	el.Set("height", hgt)

	body := h.document.Get("body")
	if body.IsNull() || body.IsUndefined() {
		return nil, fmt.Errorf("%w: document has no body", cursor.ErrNoContext)
	}
	body.Call("appendChild", el)

	bodyStyle := body.Get("style")
	prev := bodyStyle.Get("cursor").String()
	bodyStyle.Set("cursor", "none")

	return &canvas{
		el:         el,
		ctx:        ctx,
		bodyStyle:  bodyStyle,
		prevCursor: prev,
		font:       h.GlyphFont,
		w:          w,
		h:          hgt,
	}, nil
}

// RequestFrame implements cursor.Host with requestAnimationFrame. The
// callback's js.Func is released after it runs or is cancelled.
func (h *Host) RequestFrame(fn cursor.FrameFunc) cursor.FrameID {
	h.nextID++
	id := h.nextID
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		entry, ok := h.frames[id]
		if !ok {
			return nil
		}
		delete(h.frames, id)
		entry.fn.Release()
		ts := 0.0
		if len(args) > 0 {
			ts = args[0].Float() / 1000
		}
		fn(ts)
		return nil
	})
	handle := h.window.Call("requestAnimationFrame", cb)
	h.frames[id] = frameEntry{handle: handle, fn: cb}
	return id
}

// CancelFrame implements cursor.Host.
func (h *Host) CancelFrame(id cursor.FrameID) {
	entry, ok := h.frames[id]
	if !ok {
		return
	}
	delete(h.frames, id)
	h.window.Call("cancelAnimationFrame", entry.handle)
	entry.fn.Release()
}

// PendingFrames returns the number of scheduled animation frames.
func (h *Host) PendingFrames() int {
	return len(h.frames)
}

// canvas implements cursor.Canvas on a <canvas> element's 2D context.
type canvas struct {
	el         js.Value
	ctx        js.Value
	bodyStyle  js.Value
	prevCursor string
	font       string
	w, h       int
	removed    bool
}

func (c *canvas) Clear() {
	if c.removed {
		return
	}
	c.ctx.Call("clearRect", 0, 0, c.w, c.h)
}

func (c *canvas) FillCircle(x, y, radius float64, clr cursor.Color) {
	if c.removed || radius <= 0 {
		return
	}
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", x, y, radius, 0, 2*math.Pi)
	c.ctx.Set("fillStyle", cssColor(clr))
	c.ctx.Call("fill")
}

func (c *canvas) DrawGlyph(g cursor.Glyph, x, y, size float64, clr cursor.Color) {
	r := g.Rune()
	if c.removed || r == 0 || size <= 0 {
		return
	}
	c.ctx.Set("font", strconv.Itoa(int(math.Round(size)))+"px "+c.font)
	c.ctx.Set("textAlign", "center")
	c.ctx.Set("textBaseline", "middle")
	c.ctx.Set("fillStyle", cssColor(clr))
	c.ctx.Call("fillText", string(r), x, y)
}

func (c *canvas) Resize(w, h int) {
	if c.removed || w <= 0 || h <= 0 {
		return
	}
	c.w, c.h = w, h
	c.el.Set("width", w)
	c.el.Set("height", h)
}

func (c *canvas) Remove() {
	if c.removed {
		return
	}
	c.removed = true
	c.el.Call("remove")
	c.bodyStyle.Set("cursor", c.prevCursor)
}

// cssColor formats c as a CSS rgba() string.
func cssColor(c cursor.Color) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)",
		int(math.Round(clamp01(c.R)*255)),
		int(math.Round(clamp01(c.G)*255)),
		int(math.Round(clamp01(c.B)*255)),
		clamp01(c.A))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
