package cursor

import (
	"bytes"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// pendingFrame is a callback queued by RequestFrame.
type pendingFrame struct {
	id FrameID
	fn FrameFunc
}

// Overlay is an Ebitengine Host. Canvases are offscreen images composited
// over the screen at the end of every Draw, and frame callbacks run once per
// Draw, the game-loop counterpart of requestAnimationFrame.
type Overlay struct {
	width, height int

	canvases []*overlayCanvas
	frames   []pendingFrame
	running  []pendingFrame
	nextID   FrameID

	start time.Time
	now   func() time.Time

	// setCursorMode hides the native cursor while a canvas is attached.
	setCursorMode func(ebiten.CursorModeType)
}

// NewOverlay creates an overlay with a w x h viewport. Call SetViewport from
// ebiten.Game.Layout to keep it current.
func NewOverlay(w, h int) *Overlay {
	o := &Overlay{
		width:         w,
		height:        h,
		now:           time.Now,
		setCursorMode: ebiten.SetCursorMode,
	}
	o.start = o.now()
	return o
}

// SetViewport records the current layout size.
func (o *Overlay) SetViewport(w, h int) {
	o.width, o.height = w, h
}

// ViewportSize implements Host.
func (o *Overlay) ViewportSize() (int, int) {
	return o.width, o.height
}

// NewCanvas implements Host. The canvas is attached immediately and drawn on
// top of everything else from the next Draw on.
func (o *Overlay) NewCanvas(w, h int) (Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: canvas size %dx%d", ErrNoContext, w, h)
	}
	if _, err := glyphFaceSource(); err != nil {
		return nil, fmt.Errorf("cursor: load glyph font: %w", err)
	}
	c := &overlayCanvas{
		overlay: o,
		image:   ebiten.NewImage(w, h),
		w:       w,
		h:       h,
	}
	o.canvases = append(o.canvases, c)
	if len(o.canvases) == 1 {
		o.setCursorMode(ebiten.CursorModeHidden)
	}
	return c, nil
}

func (o *Overlay) detach(c *overlayCanvas) {
	for i, cc := range o.canvases {
		if cc == c {
			copy(o.canvases[i:], o.canvases[i+1:])
			o.canvases[len(o.canvases)-1] = nil
			o.canvases = o.canvases[:len(o.canvases)-1]
			if len(o.canvases) == 0 {
				o.setCursorMode(ebiten.CursorModeVisible)
			}
			return
		}
	}
}

// RequestFrame implements Host.
func (o *Overlay) RequestFrame(fn FrameFunc) FrameID {
	o.nextID++
	o.frames = append(o.frames, pendingFrame{id: o.nextID, fn: fn})
	return o.nextID
}

// CancelFrame implements Host.
func (o *Overlay) CancelFrame(id FrameID) {
	for i := range o.frames {
		if o.frames[i].id == id {
			copy(o.frames[i:], o.frames[i+1:])
			o.frames[len(o.frames)-1] = pendingFrame{}
			o.frames = o.frames[:len(o.frames)-1]
			return
		}
	}
}

// PendingFrames returns the number of scheduled frame callbacks.
func (o *Overlay) PendingFrames() int {
	return len(o.frames)
}

// Canvases returns the number of attached canvases.
func (o *Overlay) Canvases() int {
	return len(o.canvases)
}

// runFrames invokes every callback queued before this call. Callbacks queued
// while running wait for the next Draw.
func (o *Overlay) runFrames() {
	if len(o.frames) == 0 {
		return
	}
	o.running = append(o.running[:0], o.frames...)
	for i := range o.frames {
		o.frames[i] = pendingFrame{}
	}
	o.frames = o.frames[:0]

	ts := o.now().Sub(o.start).Seconds()
	for i := range o.running {
		o.running[i].fn(ts)
		o.running[i] = pendingFrame{}
	}
}

// Draw runs pending frame callbacks, then composites every attached canvas
// onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.runFrames()
	o.drawCanvases(screen)
}

func (o *Overlay) drawCanvases(dst *ebiten.Image) {
	for _, c := range o.canvases {
		if c.image != nil {
			dst.DrawImage(c.image, nil)
		}
	}
}

// overlayCanvas is a Canvas backed by an offscreen *ebiten.Image.
type overlayCanvas struct {
	overlay *Overlay
	image   *ebiten.Image
	w, h    int
}

// Clear implements Canvas.
func (c *overlayCanvas) Clear() {
	if c.image == nil {
		return
	}
	c.image.Clear()
}

// FillCircle implements Canvas.
func (c *overlayCanvas) FillCircle(x, y, radius float64, clr Color) {
	if c.image == nil || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(c.image, float32(x), float32(y), float32(radius), clr.RGBA(), true)
}

// DrawGlyph implements Canvas. The Go Regular face has no diagonal arrows,
// so GlyphArrowUpRight is drawn as a rotated right arrow.
func (c *overlayCanvas) DrawGlyph(g Glyph, x, y, size float64, clr Color) {
	if c.image == nil || g == GlyphNone || size <= 0 {
		return
	}
	src, err := glyphFaceSource()
	if err != nil {
		return
	}
	r, rot := GlyphArrowRight.Rune(), 0.0
	if g == GlyphArrowUpRight {
		rot = -math.Pi / 4
	}

	face := &text.GoTextFace{Source: src, Size: size}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Rotate(rot)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr.RGBA())
	text.Draw(c.image, string(r), face, op)
}

// Resize implements Canvas. The old image is deallocated and a new one of
// the given size is created.
func (c *overlayCanvas) Resize(w, h int) {
	if c.image == nil || w <= 0 || h <= 0 {
		return
	}
	c.image.Deallocate()
	c.image = ebiten.NewImage(w, h)
	c.w, c.h = w, h
}

// Remove implements Canvas.
func (c *overlayCanvas) Remove() {
	if c.image == nil {
		return
	}
	c.overlay.detach(c)
	c.image.Deallocate()
	c.image = nil
}

var (
	glyphOnce   sync.Once
	glyphSource *text.GoTextFaceSource
	glyphErr    error
)

// glyphFaceSource parses the Go Regular TTF once.
func glyphFaceSource() (*text.GoTextFaceSource, error) {
	glyphOnce.Do(func() {
		glyphSource, glyphErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	return glyphSource, glyphErr
}
