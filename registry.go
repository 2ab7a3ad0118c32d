package tether

// Handle identifies a registered entity. Handles are never reused within an
// Overlay's lifetime; operations on a removed or unknown handle are no-ops
// that return zero values.
type Handle uint32

// AnchorOptions configures one anchor binding at registration time. The zero
// value means: PlaceInside with FitScaleDown, no offsets, anchor point at the
// top-left, not draggable, no debug draw.
type AnchorOptions struct {
	// Anchor is the identifier resolved through Document.ElementByAnchor.
	Anchor string
	Mode   PlacementMode
	// Fit selects the PlaceInside scaling policy. Ignored by PlaceOrigin.
	Fit FitMode
	// OffsetX and OffsetY are static placement corrections in world units.
	OffsetX, OffsetY float64
	// XAxis and YAxis select the normalized PlaceOrigin anchor point
	// (0,0 = top-left, 1,1 = bottom-right of the anchor rectangle).
	XAxis, YAxis float64
	Draggable    bool
	Debug        bool
}

// Binding is the live association between one entity and one anchor element.
// The placement resolver rewrites WorldX/WorldY and the resolved scale every
// frame; the drag controller mutates the drag accumulators and the dragging
// flag between frames.
type Binding struct {
	Anchor  string
	Element Element
	Mode    PlacementMode
	Fit     FitMode
	// OffsetX and OffsetY are static placement corrections, authored at the
	// device pixel ratio current at registration. Placement rescales them
	// when the ratio changes so corrections keep their on-screen size.
	OffsetX, OffsetY float64
	XAxis, YAxis     float64
	Draggable        bool
	Debug            bool

	// DragX and DragY accumulate drag corrections. They persist across
	// drag sessions.
	DragX, DragY float64
	// WorldX and WorldY are the last-resolved world offset for this
	// binding.
	WorldX, WorldY float64

	baseDPR        float64
	scaleX, scaleY float64 // skeleton scale applied at last resolve
	dragging       bool
	shift          VertexTransform // bound once to shiftVertex at creation
}

// Dragging reports whether the binding is currently in a drag session.
func (b *Binding) Dragging() bool { return b.dragging }

// shiftVertex offsets one generated vertex by the binding's resolved world
// offset. Bound once per binding and handed to DrawSkeleton, so the render
// loop allocates no per-frame closures.
func (b *Binding) shiftVertex(x, y float64) (float64, float64) {
	return x + b.WorldX, y + b.WorldY
}

// entry is one registered entity: it exclusively owns the skeleton and its
// animation state for its lifetime.
type entry struct {
	handle   Handle
	sk       Skeleton
	state    AnimationState
	bounds   Rect // unscaled local space
	bindings []*Binding
	updater  Updater
	removed  bool
}

// placedRect returns the binding's currently-placed world rectangle: the
// entry's local bounds under the binding's last-resolved scale and offset.
func (e *entry) placedRect(b *Binding) Rect {
	return Rect{
		X:      e.bounds.X*b.scaleX + b.WorldX,
		Y:      e.bounds.Y*b.scaleY + b.WorldY,
		Width:  e.bounds.Width * b.scaleX,
		Height: e.bounds.Height * b.scaleY,
	}
}

// registry is the arena of registered entities. Removed entries stay as
// tombstones so handles are detectably stale instead of silently aliased.
type registry struct {
	entries    []*entry
	byHandle   map[Handle]*entry
	nextHandle Handle
}

func newRegistry() registry {
	return registry{byHandle: make(map[Handle]*entry)}
}

func (r *registry) add(e *entry) Handle {
	r.nextHandle++
	e.handle = r.nextHandle
	r.entries = append(r.entries, e)
	r.byHandle[e.handle] = e
	return e.handle
}

// get returns the live entry for h, or nil for unknown or removed handles.
func (r *registry) get(h Handle) *entry {
	e := r.byHandle[h]
	if e == nil || e.removed {
		return nil
	}
	return e
}

func (r *registry) remove(h Handle) {
	e := r.byHandle[h]
	if e == nil || e.removed {
		return
	}
	e.removed = true
	e.bindings = nil
	delete(r.byHandle, h)
}

// each visits live entries in registration order. Entities with no bindings
// are skipped entirely.
func (r *registry) each(fn func(*entry)) {
	for _, e := range r.entries {
		if e.removed || len(e.bindings) == 0 {
			continue
		}
		fn(e)
	}
}
