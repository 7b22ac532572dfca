package folio

import (
	"encoding/json"
	"errors"
	"fmt"
)

// testStep represents a single action in a scenario script.
type testStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	DeltaY  float64 `json:"deltaY,omitempty"`
	Count   int     `json:"count,omitempty"`
	Index   int     `json:"index,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Section *int    `json:"section,omitempty"`
}

// testScript is the top-level JSON structure for a scenario script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"screenshot": true,
	"wheel":      true,
	"click":      true,
	"move":       true,
	"tab":        true,
	"wait":       true,
	"expect":     true,
}

// TestRunner sequences injected input events, waits, checks and
// screenshots across frames for automated scenario runs. Attach to a Scene
// via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadTestScript parses a JSON scenario script and returns a TestRunner
// ready to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "expect" && st.Section == nil {
			return nil, fmt.Errorf("parse test script: step %d: expect needs a section", i)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before input is processed each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the messages of every failed expect step.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
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
		s.Screenshot(st.Label)
	case "wheel":
		s.InjectScroll(st.DeltaY, max(st.Count, 1))
	case "click":
		s.InjectClick(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "tab":
		s.InjectTab(st.Index)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expect":
		if got := s.state.Nav.Current(); got != *st.Section {
			msg := fmt.Sprintf("step %d (%s): section = %d, want %d", r.cursor-1, st.Label, got, *st.Section)
			r.failures = append(r.failures, msg)
			logger().Warn("scenario expectation failed", "detail", msg)
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
