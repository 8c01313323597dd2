package hud

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"` // "press", "move", "hover", "release", "click", "wait"
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"` // "wait" only
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected pointer events across frames for automated
// demo and interaction testing. Attach to an engine via SetScriptRunner; the
// runner feeds one step per frame through the injection queue.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "move", "hover", "release", "click", "wait":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a runner to the engine. The runner is stepped at
// the start of every Update and detached once it finishes.
func (e *Engine) SetScriptRunner(r *ScriptRunner) {
	e.script = r
}

// Done reports whether every step has been consumed.
func (r *ScriptRunner) Done() bool {
	return r.cursor >= len(r.steps)
}

// step advances the script by one frame, translating the current step into
// injected pointer events.
func (r *ScriptRunner) step(e *Engine) {
	if r.Done() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	st := r.steps[r.cursor]
	r.cursor++
	switch st.Action {
	case "press":
		e.InjectPress(st.X, st.Y)
	case "move":
		e.InjectMove(st.X, st.Y)
	case "hover":
		e.InjectHover(st.X, st.Y)
	case "release":
		e.InjectRelease(st.X, st.Y)
	case "click":
		e.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 1 {
			r.waitCount = st.Frames - 1
		}
	}
}
