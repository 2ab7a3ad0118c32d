package tether

// dragState tracks the pointer session shared by every dragging binding.
type dragState struct {
	active         bool
	lastWX, lastWY float64 // world position of the previous pointer sample
}

// handlePointer runs the drag state machine for one pointer event. Document
// events and injected events both arrive here.
//
// Down hit-tests every draggable binding's currently-placed rectangle and
// starts a drag on ALL overlapping bindings, consuming the event only when at
// least one hit. Move accumulates the world-space delta since the previous
// sample into each dragging binding and forwards it to the owning skeleton's
// physics. Up ends the session for every binding unconditionally.
func (o *Overlay) handlePointer(ev *PointerEvent) {
	if o.disposed {
		return
	}
	f := captureFrame(o.doc, o.geom)
	cam := o.renderer.Camera()
	wx, wy := f.pageToWorld(cam, ev.X, ev.Y)

	switch ev.Kind {
	case PointerDown:
		hit := false
		o.reg.each(func(e *entry) {
			for _, b := range e.bindings {
				if !b.Draggable {
					continue
				}
				if e.placedRect(b).Contains(wx, wy) {
					b.dragging = true
					hit = true
				}
			}
		})
		if hit {
			o.drag.active = true
			o.drag.lastWX, o.drag.lastWY = wx, wy
			ev.Consume()
		}

	case PointerMove:
		if !o.drag.active {
			return
		}
		dx := wx - o.drag.lastWX
		dy := wy - o.drag.lastWY
		o.drag.lastWX, o.drag.lastWY = wx, wy
		o.reg.each(func(e *entry) {
			for _, b := range e.bindings {
				if !b.dragging {
					continue
				}
				e.sk.PhysicsTranslate(dx, dy)
				b.DragX += dx
				b.DragY += dy
			}
		})
		ev.Consume()

	case PointerUp:
		o.reg.each(func(e *entry) {
			for _, b := range e.bindings {
				b.dragging = false
			}
		})
		o.drag.active = false
	}
}
