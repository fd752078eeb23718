package cursor

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudRefresh is how many draws pass between HUD text refreshes (~0.5s).
const hudRefresh = 30

// debugHUD draws FPS/TPS and the cursor's state in the top-left corner.
// The text is re-rendered into its own image every hudRefresh draws.
type debugHUD struct {
	image  *ebiten.Image
	frames int
}

func newDebugHUD() *debugHUD {
	return &debugHUD{}
}

func (h *debugHUD) draw(screen *ebiten.Image, e *Engine, mountErr error) {
	if h.image == nil {
		// 240x64 fits four lines of debug text.
		h.image = ebiten.NewImage(240, 64)
		h.frames = hudRefresh
	}
	h.frames++
	if h.frames >= hudRefresh {
		h.frames = 0
		h.image.Clear()
		// Semi-transparent background for readability
		h.image.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(h.image, hudText(e, mountErr))
	}
	screen.DrawImage(h.image, nil)
}

func hudText(e *Engine, mountErr error) string {
	s := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	if e == nil {
		if mountErr != nil {
			return s + "cursor: " + mountErr.Error()
		}
		return s + "cursor: not mounted"
	}
	pos := e.Position()
	return s + fmt.Sprintf("state: %s dark: %t\npos: %.0f,%.0f size: %.1f/%.1f",
		e.State(), e.DarkMode(), pos.X, pos.Y, e.Size(), e.TargetSize())
}
