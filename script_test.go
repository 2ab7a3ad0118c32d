package tether

import (
	"strings"
	"testing"
)

func TestLoadScript(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps":[{"action":"wait","frames":3}]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if r.Done() {
		t.Error("a fresh runner should not be done")
	}
}

func TestLoadScript_InvalidJSON(t *testing.T) {
	_, err := LoadScript([]byte(`{`))
	if err == nil || !strings.Contains(err.Error(), "parse script") {
		t.Errorf("err = %v, want a parse error", err)
	}
}

func TestLoadScript_NoSteps(t *testing.T) {
	_, err := LoadScript([]byte(`{"steps":[]}`))
	if err == nil || !strings.Contains(err.Error(), "no steps") {
		t.Errorf("err = %v, want a no-steps error", err)
	}
}

func TestScriptRunner_Sequence(t *testing.T) {
	doc := newFakeDocument()
	doc.addElement("hero", Rect{X: 100, Y: 100, Width: 200, Height: 200})
	o, _ := newTestOverlay(t, doc)
	addStub(t, o, Rect{Width: 100, Height: 100},
		AnchorOptions{Anchor: "hero", Draggable: true})
	o.Draw()

	runner, err := LoadScript([]byte(`{
		"steps": [
			{"action": "wait", "frames": 2},
			{"action": "click", "x": 10, "y": 10},
			{"action": "screenshot", "label": "snap"}
		]
	}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	o.SetScriptRunner(runner)

	// Frame 1 executes the wait, frame 2 counts it down.
	o.Update(1.0 / 60)
	o.Update(1.0 / 60)
	if len(o.injectQueue) != 0 {
		t.Fatal("nothing should be injected while waiting")
	}

	// Frame 3 issues the click (press+release) and drains the press.
	o.Update(1.0 / 60)
	if len(o.injectQueue) != 1 {
		t.Fatalf("queued = %d after the click step, want the release", len(o.injectQueue))
	}

	// Frame 4 only drains; the runner holds until the queue is empty.
	o.Update(1.0 / 60)
	if runner.Done() {
		t.Fatal("runner finished before the screenshot step")
	}

	// Frame 5 takes the screenshot and completes the script.
	o.Update(1.0 / 60)
	if !runner.Done() {
		t.Error("runner should be done")
	}
	if len(o.screenshotQueue) != 1 || o.screenshotQueue[0] != "snap" {
		t.Errorf("screenshot queue = %v, want [snap]", o.screenshotQueue)
	}
}

func TestScriptRunner_WaitCountsExecutingFrame(t *testing.T) {
	o, _ := newTestOverlay(t, newFakeDocument())
	runner, err := LoadScript([]byte(`{"steps":[{"action":"wait","frames":3}]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	o.SetScriptRunner(runner)

	// Three waited frames, then one more to observe completion.
	for i := 0; i < 3; i++ {
		o.Update(1.0 / 60)
		if runner.Done() {
			t.Fatalf("runner done after %d frames, want 4", i+1)
		}
	}
	o.Update(1.0 / 60)
	if !runner.Done() {
		t.Error("runner should be done after the wait elapses")
	}
}

func TestScriptRunner_DragQueuesFullSequence(t *testing.T) {
	o, _ := newTestOverlay(t, newFakeDocument())
	runner, err := LoadScript([]byte(`{
		"steps": [{"action": "drag", "fromX": 0, "fromY": 0, "toX": 60, "toY": 0, "frames": 6}]
	}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	o.SetScriptRunner(runner)

	o.Update(1.0 / 60)
	// Six events queued, one already drained this frame.
	if len(o.injectQueue) != 5 {
		t.Errorf("queued = %d, want 5", len(o.injectQueue))
	}
	if runner.Done() {
		t.Error("runner must wait for the injection queue to drain")
	}
}

func TestScriptRunner_UnknownActionSkipped(t *testing.T) {
	o, _ := newTestOverlay(t, newFakeDocument())
	runner, err := LoadScript([]byte(`{"steps":[{"action":"teleport"}]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	o.SetScriptRunner(runner)

	o.Update(1.0 / 60)
	if !runner.Done() {
		t.Error("an unknown action should be skipped, not stall the script")
	}
}
