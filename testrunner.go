package starburst

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
	Style  string  `json:"style,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences clicks, spawns, visibility changes and screenshots
// across ticks for automated visual testing. Attach to a Sky via
// SetTestRunner.
//
// Supported actions: "click" (x, y), "wait" (frames), "screenshot" (label),
// "firework" (x, y, style), "hide" and "show".
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Sky via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("starburst: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("starburst: parse test script: no steps: %w", ErrInvalidArgument)
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "wait", "screenshot", "hide", "show":
		case "firework":
			if _, ok := parseStyle(st.Style); !ok {
				return nil, fmt.Errorf("starburst: parse test script: step %d: unknown style %q: %w", i, st.Style, ErrInvalidArgument)
			}
		default:
			return nil, fmt.Errorf("starburst: parse test script: step %d: unknown action %q: %w", i, st.Action, ErrInvalidArgument)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// parseStyle accepts an empty style as FireworkClassic.
func parseStyle(name string) (FireworkStyle, bool) {
	if name == "" {
		return FireworkClassic, true
	}
	return ParseFireworkStyle(name)
}

// SetTestRunner attaches a TestRunner to the sky. The runner's step method
// is called at the start of every Update.
func (s *Sky) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one tick. Called from Sky.Update.
func (r *TestRunner) step(s *Sky) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
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
		s.Screenshot(st.Label)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "firework":
		style, _ := parseStyle(st.Style)
		s.SpawnFirework(style, NewPoint(st.X, st.Y))
	case "hide":
		s.SetVisible(false)
	case "show":
		s.SetVisible(true)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
