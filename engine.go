package cursor

import "fmt"

// offscreen is where the cursor waits until the first pointer move.
const offscreen = -100

// maxFrameDelta caps the time step fed to the palette fade after a stall
// (background tab, debugger pause).
const maxFrameDelta = 0.25

// Engine renders one custom cursor onto a canvas it owns. Events push targets
// through Handle; the frame loop pulls and smooths them independently.
//
// An Engine is not safe for concurrent use. Hosts deliver events and frames
// from the same goroutine (the browser event loop or the ebiten game loop).
type Engine struct {
	host    Host
	canvas  Canvas
	cfg     Config
	palette Palette

	state  State
	follow *Follower
	dark   bool
	fade   *paletteFade

	viewW, viewH int

	frameID FrameID
	lastTS  float64
	haveTS  bool
	live    bool

	debug bool
	stats frameStats
}

// New creates the canvas, sizes it to the host viewport, and starts the frame
// loop. It fails if the configuration is invalid or the host cannot provide
// a canvas; no frame is scheduled in that case.
func New(host Host, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h := host.ViewportSize()
	canvas, err := host.NewCanvas(w, h)
	if err != nil {
		return nil, fmt.Errorf("cursor: create canvas: %w", err)
	}
	if canvas == nil {
		return nil, ErrNoContext
	}

	e := &Engine{
		host:    host,
		canvas:  canvas,
		cfg:     cfg,
		palette: DefaultPalette,
		state:   StateDefault,
		follow:  cfg.newFollower(),
		dark:    cfg.DarkMode,
		viewW:   w,
		viewH:   h,
		live:    true,
		debug:   cfg.Debug,
	}
	start := Vec2{X: offscreen, Y: offscreen}
	e.follow.Current = start
	e.follow.Target = start
	e.follow.SetTargetSize(TargetSize(StateDefault, w))
	e.follow.Size = e.follow.TargetSize

	e.frameID = host.RequestFrame(e.frame)
	return e, nil
}

// Handle applies one event. Events arriving after Dispose are ignored.
func (e *Engine) Handle(ev Event) {
	if !e.live {
		return
	}
	switch ev.Kind {
	case EventMove:
		e.follow.Target = Vec2{X: ev.X, Y: ev.Y}
	case EventHover, EventUnhover, EventDown, EventUp:
		e.setState(Classify(ev.Kind, ev.Target, e.state))
	case EventResize:
		e.resize(ev.Width, ev.Height)
	}
}

func (e *Engine) setState(s State) {
	e.state = s
	e.follow.SetTargetSize(TargetSize(s, e.viewW))
}

func (e *Engine) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	e.viewW, e.viewH = w, h
	e.canvas.Resize(w, h)
	e.follow.SetTargetSize(TargetSize(e.state, w))
}

// SetDarkMode switches the palette. With a non-zero Config.PaletteFade the
// colours cross-fade; toggling mid-fade reverses from the current blend.
func (e *Engine) SetDarkMode(dark bool) {
	if dark == e.dark {
		return
	}
	begin := 0.0
	if e.fade != nil {
		begin = 1 - e.fade.progress
	}
	e.dark = dark
	if !e.live || e.cfg.PaletteFade <= 0 {
		e.fade = nil
		return
	}
	e.fade = newPaletteFade(begin, e.cfg.PaletteFade)
}

// SetPalette replaces the colours used for painting.
func (e *Engine) SetPalette(p Palette) {
	e.palette = p
}

// SetDebug enables or disables per-frame stats on stderr.
func (e *Engine) SetDebug(enabled bool) {
	e.debug = enabled
}

// Dispose removes the canvas and cancels the pending frame. It is safe to
// call more than once.
func (e *Engine) Dispose() {
	if !e.live {
		return
	}
	e.live = false
	if e.frameID != 0 {
		e.host.CancelFrame(e.frameID)
		e.frameID = 0
	}
	e.canvas.Remove()
	e.canvas = nil
	e.fade = nil
}

// frame is the animation-frame callback. It always reschedules itself while
// the engine is live so the follower converges without further events.
func (e *Engine) frame(ts float64) {
	e.frameID = 0
	if !e.live {
		return
	}
	e.paint(e.advanceClock(ts))
	if e.debug {
		e.debugLog()
	}
	e.frameID = e.host.RequestFrame(e.frame)
}

func (e *Engine) advanceClock(ts float64) float64 {
	if !e.haveTS {
		e.haveTS = true
		e.lastTS = ts
		return 0
	}
	dt := ts - e.lastTS
	e.lastTS = ts
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}

func (e *Engine) paint(dt float64) {
	e.stats = frameStats{}
	e.canvas.Clear()
	e.stats.clears++

	e.follow.Step()
	if e.fade != nil && e.fade.update(dt) {
		e.fade = nil
	}

	if e.state == StateDisabled {
		e.stats.skipped = true
		return
	}

	pos := e.follow.Current
	e.canvas.FillCircle(pos.X, pos.Y, e.follow.Size, e.fillColor())
	e.stats.fills++

	app := AppearanceFor(e.state)
	if app.Glyph != GlyphNone && GlyphVisible(e.follow.Size, e.follow.TargetSize) {
		size := e.follow.TargetSize * e.cfg.GlyphScale
		e.canvas.DrawGlyph(app.Glyph, pos.X, pos.Y, size, e.palette.Glyph(e.dark))
		e.stats.glyphs++
	}
}

func (e *Engine) fillColor() Color {
	to := e.palette.Fill(e.state, e.dark)
	if e.fade == nil {
		return to
	}
	from := e.palette.Fill(e.state, !e.dark)
	return lerpColor(from, to, e.fade.progress)
}

// State returns the active interaction state.
func (e *Engine) State() State {
	return e.state
}

// Position returns the rendered (smoothed) position.
func (e *Engine) Position() Vec2 {
	return e.follow.Current
}

// TargetPosition returns the last observed pointer position.
func (e *Engine) TargetPosition() Vec2 {
	return e.follow.Target
}

// Size returns the rendered radius.
func (e *Engine) Size() float64 {
	return e.follow.Size
}

// TargetSize returns the radius the cursor is growing or shrinking toward.
func (e *Engine) TargetSize() float64 {
	return e.follow.TargetSize
}

// DarkMode reports the active theme.
func (e *Engine) DarkMode() bool {
	return e.dark
}

// Live reports whether the engine has not been disposed.
func (e *Engine) Live() bool {
	return e.live
}
