package cursor

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// CaptureMode selects what a screenshot contains.
type CaptureMode uint8

const (
	CaptureFrame  CaptureMode = iota // page and cursor as presented
	CaptureCursor                    // cursor overlay alone, on transparent
)

func (m CaptureMode) String() string {
	if m == CaptureCursor {
		return "cursor"
	}
	return "frame"
}

type capture struct {
	label string
	mode  CaptureMode
}

// Screenshot queues a capture of the full frame, cursor included, taken at
// the end of the current Draw.
func (g *Game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, capture{label: label, mode: CaptureFrame})
}

// ScreenshotCursor queues a capture of the overlay canvases alone, so a
// script can inspect cursor pixels without the page behind them.
func (g *Game) ScreenshotCursor(label string) {
	g.screenshotQueue = append(g.screenshotQueue, capture{label: label, mode: CaptureCursor})
}

// flushScreenshots writes every queued capture as a PNG in ScreenshotDir.
// Called at the end of Game.Draw, after the overlay has been composited.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}
	defer func() { g.screenshotQueue = g.screenshotQueue[:0] }()

	if err := os.MkdirAll(g.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[cursor] screenshot: mkdir %s: %v\n", g.ScreenshotDir, err)
		return
	}

	stamp := time.Now().Format("20060102_150405")
	var frame, overlay *image.RGBA
	for _, c := range g.screenshotQueue {
		var img *image.RGBA
		switch c.mode {
		case CaptureCursor:
			if overlay == nil {
				overlay = g.captureOverlay(screen.Bounds())
			}
			img = overlay
		default:
			if frame == nil {
				frame = readImage(screen)
			}
			img = frame
		}
		name := screenshotName(stamp, c, g.Controller.Engine(), g.mountErr)
		if err := writePNG(filepath.Join(g.ScreenshotDir, name), img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[cursor] screenshot: %v\n", err)
		}
	}
}

// captureOverlay composites the overlay canvases onto a transparent image
// the size of the screen.
func (g *Game) captureOverlay(bounds image.Rectangle) *image.RGBA {
	dst := ebiten.NewImage(bounds.Dx(), bounds.Dy())
	defer dst.Deallocate()
	g.Overlay.drawCanvases(dst)
	return readImage(dst)
}

// readImage copies img into memory. Ebitengine pixels are premultiplied,
// which is also image.RGBA's layout; png.Encode un-premultiplies.
func readImage(img *ebiten.Image) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	img.ReadPixels(out.Pix)
	return out
}

// screenshotName builds "<stamp>_<label>_<mode>_<state>_<theme>.png" so a
// directory of captures sorts by time and reads as a cursor trace. The state
// is "unmounted" when no engine is live.
func screenshotName(stamp string, c capture, e *Engine, mountErr error) string {
	state, theme := "unmounted", "light"
	if e != nil {
		state = e.State().String()
		if e.DarkMode() {
			theme = "dark"
		}
	} else if mountErr != nil {
		switch {
		case errors.Is(mountErr, ErrReducedMotion):
			state = "reduced-motion"
		case errors.Is(mountErr, ErrNarrowViewport):
			state = "narrow"
		}
	}
	parts := []string{stamp, sanitizeLabel(c.label), c.mode.String(), state, theme}
	return strings.Join(parts, "_") + ".png"
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', maps everything else
// to '_', and names empty labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
