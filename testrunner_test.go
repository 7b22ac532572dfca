package folio

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "wheel", "deltaY": 100, "count": 3},
			{"action": "wait", "frames": 10},
			{"action": "expect", "section": 1, "label": "after-wheel"},
			{"action": "click", "x": 700, "y": 300},
			{"action": "tab", "index": 2}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 6 {
		t.Fatalf("expected 6 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].DeltaY != 100 || runner.steps[1].Count != 3 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[3].Section == nil || *runner.steps[3].Section != 1 {
		t.Error("step 3 mismatch")
	}
	if runner.steps[5].Index != 2 {
		t.Error("step 5 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "dance"}]}`},
		{"expect without section", `{"steps": [{"action": "expect"}]}`},
	}
	for _, tt := range tests {
		if _, err := LoadTestScript([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestRunnerScenario(t *testing.T) {
	s, clock := newTestScene(t, SceneOptions{})
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wheel", "deltaY": 100, "count": 3},
		{"action": "wait", "frames": 6},
		{"action": "expect", "section": 1, "label": "one notch burst"},
		{"action": "tab", "index": 3},
		{"action": "wait", "frames": 1},
		{"action": "expect", "section": 3, "label": "tab"},
		{"action": "wheel", "deltaY": -1},
		{"action": "wait", "frames": 6},
		{"action": "expect", "section": 2, "label": "wheel up"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	for i := 0; i < 200 && !runner.Done(); i++ {
		runFrames(s, clock, 1)
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if f := runner.Failures(); len(f) != 0 {
		t.Errorf("failures: %v", f)
	}
}

func TestRunnerRecordsFailure(t *testing.T) {
	s, clock := newTestScene(t, SceneOptions{})
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "expect", "section": 2, "label": "wrong"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	runFrames(s, clock, 2)
	if !runner.Done() {
		t.Fatal("runner not done")
	}
	if len(runner.Failures()) != 1 {
		t.Errorf("failures = %v, want one", runner.Failures())
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	s, _ := newTestScene(t, SceneOptions{})
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(s) // wait, counts as frame 1
	runner.step(s) // frame 2
	runner.step(s) // frame 3
	if len(s.screenshotQueue) != 0 {
		t.Fatal("screenshot taken during wait")
	}
	runner.step(s)
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0].label != "after" {
		t.Errorf("screenshotQueue = %v", s.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerWaitsForInjectQueue(t *testing.T) {
	s, _ := newTestScene(t, SceneOptions{})
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wheel", "deltaY": 1, "count": 2},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(s)
	if len(s.injectQueue) != 2 {
		t.Fatalf("expected 2 events, got %d", len(s.injectQueue))
	}
	runner.step(s)
	if runner.cursor != 1 {
		t.Errorf("cursor should still be 1, got %d", runner.cursor)
	}

	s.injectQueue = s.injectQueue[:0]
	runner.step(s)
	if len(s.screenshotQueue) != 1 {
		t.Errorf("expected screenshot, got %v", s.screenshotQueue)
	}
}
