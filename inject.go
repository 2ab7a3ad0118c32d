package tether

// syntheticPointerEvent is a single queued synthetic pointer event, in page
// coordinates like real document events.
type syntheticPointerEvent struct {
	kind PointerKind
	x, y float64
}

// InjectPress queues a synthetic pointer press at the given page coordinates.
// Injected events run through the same drag state machine as document pointer
// events; one queued event is consumed per Update call.
func (o *Overlay) InjectPress(x, y float64) {
	o.injectQueue = append(o.injectQueue, syntheticPointerEvent{kind: PointerDown, x: x, y: y})
}

// InjectMove queues a synthetic pointer move at the given page coordinates.
// Use between InjectPress and InjectRelease to simulate a drag.
func (o *Overlay) InjectMove(x, y float64) {
	o.injectQueue = append(o.injectQueue, syntheticPointerEvent{kind: PointerMove, x: x, y: y})
}

// InjectRelease queues a synthetic pointer release.
func (o *Overlay) InjectRelease(x, y float64) {
	o.injectQueue = append(o.injectQueue, syntheticPointerEvent{kind: PointerUp, x: x, y: y})
}

// InjectClick queues a press followed by a release at the same page
// coordinates. Consumes two Update calls.
func (o *Overlay) InjectClick(x, y float64) {
	o.InjectPress(x, y)
	o.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The whole sequence consumes `frames` Update calls. Minimum
// frames is 2 (press + release).
func (o *Overlay) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	o.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		o.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	o.InjectRelease(toX, toY)
}

// drainInjected pops one event from the inject queue and feeds it through
// handlePointer, letting the drag state machine settle one step per frame.
func (o *Overlay) drainInjected() {
	if len(o.injectQueue) == 0 {
		return
	}
	evt := o.injectQueue[0]
	copy(o.injectQueue, o.injectQueue[1:])
	o.injectQueue = o.injectQueue[:len(o.injectQueue)-1]

	ev := PointerEvent{Kind: evt.kind, X: evt.x, Y: evt.y}
	o.handlePointer(&ev)
}
