package cursor

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Game is an ebiten.Game that draws a page of Regions with a custom cursor
// on top. It wires PointerInput, Overlay, and Controller together and
// re-syncs the mount whenever the environment changes.
type Game struct {
	Input      *PointerInput
	Overlay    *Overlay
	Controller *Controller

	// ClearColor fills the screen before the page is drawn.
	ClearColor Color
	// ShowDebug draws the debug HUD over the page.
	ShowDebug bool
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	darkMode      bool
	reducedMotion bool
	width, height int

	synced   bool
	lastEnv  Environment
	mountErr error

	hud             *debugHUD
	screenshotQueue []capture
	testRunner      *TestRunner
}

// NewGame creates a game whose cursor is tuned by cfg. The initial theme and
// reduced-motion preference come from cfg.DarkMode and cfg.ReducedMotion.
func NewGame(cfg Config) (*Game, error) {
	overlay := NewOverlay(0, 0)
	input := NewPointerInput(cfg.ResizeQuiet)
	ctrl, err := NewController(overlay, input, cfg)
	if err != nil {
		return nil, err
	}
	return &Game{
		Input:         input,
		Overlay:       overlay,
		Controller:    ctrl,
		ClearColor:    Color{R: 0.96, G: 0.95, B: 0.93, A: 1},
		ScreenshotDir: "screenshots",
		darkMode:      cfg.DarkMode,
		reducedMotion: cfg.ReducedMotion,
		hud:           newDebugHUD(),
	}, nil
}

// AddRegion adds a page element on top of the existing ones.
func (g *Game) AddRegion(r *Region) {
	g.Input.AddRegion(r)
}

// SetDarkMode switches the theme. The cursor picks it up on the next Update.
func (g *Game) SetDarkMode(dark bool) {
	g.darkMode = dark
}

// DarkMode reports the current theme.
func (g *Game) DarkMode() bool {
	return g.darkMode
}

// SetReducedMotion records the reduced-motion preference. Turning it on
// unmounts the cursor on the next Update.
func (g *Game) SetReducedMotion(reduced bool) {
	g.reducedMotion = reduced
}

// ReducedMotion reports the reduced-motion preference.
func (g *Game) ReducedMotion() bool {
	return g.reducedMotion
}

// MountErr returns why the cursor is not mounted after the last sync, or nil.
func (g *Game) MountErr() error {
	return g.mountErr
}

func (g *Game) environment() Environment {
	return Environment{
		ViewportWidth: g.width,
		ReducedMotion: g.reducedMotion,
		DarkMode:      g.darkMode,
	}
}

// syncEnvironment calls Controller.Sync when the environment changed since
// the last sync. Gate failures are recorded, not returned: the native
// cursor simply stays in use.
func (g *Game) syncEnvironment() error {
	if g.width == 0 {
		return nil
	}
	env := g.environment()
	if g.synced && env == g.lastEnv {
		return nil
	}
	g.synced = true
	g.lastEnv = env
	err := g.Controller.Sync(env)
	g.mountErr = err
	if errors.Is(err, ErrReducedMotion) || errors.Is(err, ErrNarrowViewport) {
		return nil
	}
	return err
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	if err := g.syncEnvironment(); err != nil {
		return err
	}
	g.Input.Update()
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.ClearColor.RGBA())
	for _, r := range g.Input.Regions() {
		if r.Hidden {
			continue
		}
		b := r.Bounds
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), r.Fill.RGBA(), false)
		if r.Label != "" {
			ebitenutil.DebugPrintAt(screen, r.Label, int(b.X)+8, int(b.Y)+8)
		}
	}
	g.Overlay.Draw(screen)
	if g.ShowDebug {
		g.hud.draw(screen, g.Controller.Engine(), g.mountErr)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The page is laid out at the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	g.Overlay.SetViewport(outsideWidth, outsideHeight)
	g.Input.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close unmounts the cursor.
func (g *Game) Close() {
	g.Controller.Unmount()
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	ShowDebug bool
}

// Run opens a resizable window and runs g until the window is closed. The
// cursor is unmounted before Run returns.
func Run(g *Game, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	g.ShowDebug = g.ShowDebug || cfg.ShowDebug
	defer g.Close()
	return ebiten.RunGame(g)
}
