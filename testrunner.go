package cursor

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Button string  `json:"button,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner replays a scripted sequence of pointer actions through an
// InjectedSource, one step per tick. Attach it with Router.SetTestRunner.
//
// Supported actions: move, press, release, click, drag, wait, freeze and
// unfreeze. The button field defaults to "left".
type TestRunner struct {
	steps     []testStep
	buttons   []MouseButton
	cursor    int
	waitCount int
	done      bool
	src       *InjectedSource
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Router.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	r := &TestRunner{steps: script.Steps, buttons: make([]MouseButton, len(script.Steps))}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "press", "release", "click", "drag", "wait", "freeze", "unfreeze":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		b := MouseButtonLeft
		if st.Button != "" {
			var err error
			if b, err = ParseMouseButton(st.Button); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
		}
		r.buttons[i] = b
	}
	return r, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick. Called from Router.Update before
// the source is sampled.
func (r *TestRunner) step(rt *Router) {
	if r.done || r.src == nil {
		return
	}
	// Wait for pending injections to drain before advancing.
	if r.src.Pending() > 0 {
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
	b := r.buttons[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		r.src.InjectMove(st.X, st.Y)
	case "press":
		r.src.InjectPress(st.X, st.Y, b)
	case "release":
		r.src.InjectRelease(st.X, st.Y, b)
	case "click":
		r.src.InjectClick(st.X, st.Y, b)
	case "drag":
		r.src.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames, b)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "freeze":
		rt.SetPositionFrozen(true)
	case "unfreeze":
		rt.SetPositionFrozen(false)
	}

	// Injected samples are consumed by the Update that called step, so one
	// queued sample leaves nothing pending.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.src.Pending() <= 1 {
		r.done = true
	}
}
