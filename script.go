package tether

import (
	"encoding/json"
	"fmt"
	"os"
)

// scriptStep is a single action in a pointer script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// pointerScript is the top-level JSON structure for a pointer script.
type pointerScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner plays a JSON pointer script against an overlay for automated
// visual checks: clicks and drags go through the injection queue, screenshots
// capture the finished frame, and waits count down frames. Attach one with
// SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON pointer script. Script coordinates are page CSS
// pixels, the same space real pointer events arrive in.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var script pointerScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("tether: parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("tether: parse script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a script runner to the overlay. The runner
// advances one step per Update call, waiting for the injection queue to drain
// between steps.
func (o *Overlay) SetScriptRunner(r *ScriptRunner) {
	o.script = r
}

// Done reports whether every step in the script has executed.
func (r *ScriptRunner) Done() bool { return r.done }

// step advances the runner by one frame. Called from Overlay.Update.
func (r *ScriptRunner) step(o *Overlay) {
	if r.done {
		return
	}
	// Pending injections finish before the next step starts.
	if len(o.injectQueue) > 0 {
		return
	}
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
		o.Screenshot(st.Label)
	case "click":
		o.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		o.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // the executing frame counts
		}
	default:
		_, _ = fmt.Fprintf(os.Stderr, "[tether] script: unknown action %q\n", st.Action)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(o.injectQueue) == 0 {
		r.done = true
	}
}
