package tether

import "testing"

func TestInjectClick_QueuesPressAndRelease(t *testing.T) {
	o, _ := newTestOverlay(t, newFakeDocument())
	o.InjectClick(40, 50)

	if len(o.injectQueue) != 2 {
		t.Fatalf("queued = %d, want 2", len(o.injectQueue))
	}
	if o.injectQueue[0].kind != PointerDown || o.injectQueue[1].kind != PointerUp {
		t.Error("click should queue press then release")
	}
	if o.injectQueue[0].x != 40 || o.injectQueue[1].x != 40 {
		t.Error("both events share the click coordinates")
	}
}

func TestInjectDrag_Interpolates(t *testing.T) {
	o, _ := newTestOverlay(t, newFakeDocument())
	o.InjectDrag(0, 0, 30, 0, 5)

	q := o.injectQueue
	if len(q) != 5 {
		t.Fatalf("queued = %d, want press + 3 moves + release", len(q))
	}
	if q[0].kind != PointerDown || q[4].kind != PointerUp {
		t.Fatal("drag should start with press and end with release")
	}
	wantX := []float64{0, 7.5, 15, 22.5, 30}
	for i, want := range wantX {
		if !approxEqual(q[i].x, want, epsilon) {
			t.Errorf("event %d x = %f, want %f", i, q[i].x, want)
		}
	}
	for i := 1; i < 4; i++ {
		if q[i].kind != PointerMove {
			t.Errorf("event %d kind = %d, want a move", i, q[i].kind)
		}
	}
}

func TestInjectDrag_ClampsFrames(t *testing.T) {
	o, _ := newTestOverlay(t, newFakeDocument())
	o.InjectDrag(0, 0, 10, 10, 0)
	if len(o.injectQueue) != 2 {
		t.Errorf("queued = %d, want the press+release minimum", len(o.injectQueue))
	}
}

func TestInjectQueue_DrainsInOrder(t *testing.T) {
	o, _ := newTestOverlay(t, newFakeDocument())
	o.InjectPress(1, 0)
	o.InjectMove(2, 0)
	o.InjectRelease(3, 0)

	o.Update(1.0 / 60)
	if len(o.injectQueue) != 2 || o.injectQueue[0].x != 2 {
		t.Errorf("queue head x = %f after one drain, want the move", o.injectQueue[0].x)
	}
	o.Update(1.0 / 60)
	if len(o.injectQueue) != 1 || o.injectQueue[0].x != 3 {
		t.Error("second drain should leave the release")
	}
}

func TestInjectedDrag_MovesBinding(t *testing.T) {
	doc := newFakeDocument()
	doc.addElement("hero", Rect{X: 100, Y: 100, Width: 200, Height: 200})
	o, _ := newTestOverlay(t, doc)
	h, _, _ := addStub(t, o, Rect{Width: 100, Height: 100},
		AnchorOptions{Anchor: "hero", Draggable: true})
	o.Draw() // resolve so the press can hit

	// Press at the placed center, one interpolated move, release.
	o.InjectDrag(200, 200, 230, 240, 3)
	for i := 0; i < 3; i++ {
		o.Update(1.0 / 60)
	}

	b := o.Binding(h, 0)
	if b.Dragging() {
		t.Error("session should have ended with the release")
	}
	// The single move lands halfway: +15 in x, +20 in y.
	if !approxEqual(b.DragX, 15, epsilon) || !approxEqual(b.DragY, 20, epsilon) {
		t.Errorf("drag = (%f,%f), want (15,20)", b.DragX, b.DragY)
	}
}

func TestInjectedAndLiveEventsShareTheMachine(t *testing.T) {
	doc := newFakeDocument()
	doc.addElement("hero", Rect{X: 100, Y: 100, Width: 200, Height: 200})
	o, _ := newTestOverlay(t, doc)
	h, _, _ := addStub(t, o, Rect{Width: 100, Height: 100},
		AnchorOptions{Anchor: "hero", Draggable: true})
	o.Draw()

	// Injected press opens the session; a live document move continues it.
	o.InjectPress(200, 200)
	o.Update(1.0 / 60)
	doc.firePointer(PointerMove, 210, 200)

	if b := o.Binding(h, 0); !approxEqual(b.DragX, 10, epsilon) {
		t.Errorf("drag x = %f, want 10", b.DragX)
	}
}
