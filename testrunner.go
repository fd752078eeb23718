package cursor

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Dark   bool    `json:"dark,omitempty"`
	Cursor bool    `json:"cursor,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"screenshot": true,
	"move":       true,
	"path":       true,
	"press":      true,
	"release":    true,
	"click":      true,
	"resize":     true,
	"theme":      true,
	"wait":       true,
}

// TestRunner sequences injected pointer input, resizes, theme changes, and
// screenshots across frames for automated visual checks of the cursor.
// Attach to a Game via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Game via SetTestRunner.
//
//	{"steps": [
//	  {"action": "move", "x": 120, "y": 80},
//	  {"action": "wait", "frames": 30},
//	  {"action": "screenshot", "label": "hover"},
//	  {"action": "screenshot", "label": "hover", "cursor": true}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the game. The runner's step method
// is called from Game.Update before input is processed each frame.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Game.Update.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if g.Input.Pending() > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		if st.Cursor {
			g.ScreenshotCursor(st.Label)
		} else {
			g.Screenshot(st.Label)
		}
	case "move":
		g.Input.InjectMove(st.X, st.Y)
	case "path":
		frames := st.Frames
		if frames < 1 {
			frames = 1
		}
		g.Input.InjectPath(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "press":
		g.Input.InjectPress(st.X, st.Y)
	case "release":
		g.Input.InjectRelease(st.X, st.Y)
	case "click":
		g.Input.InjectClick(st.X, st.Y)
	case "resize":
		g.Input.InjectResize(st.Width, st.Height)
	case "theme":
		g.SetDarkMode(st.Dark)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && g.Input.Pending() == 0 {
		r.done = true
	}
}
