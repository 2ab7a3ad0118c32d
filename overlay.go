package tether

import (
	"context"
	"fmt"
)

// Config configures NewOverlay. Document and Renderer are required; Assets is
// only needed when skeleton sources load by path. A zero Overflow selects
// DefaultOverflow.
type Config struct {
	Document Document
	Renderer Renderer
	Assets   AssetManager
	Overflow Overflow
	// Debug enables debug draw for every binding and periodic frame stats
	// on stderr.
	Debug bool
}

// Overlay is the engine core: it owns the anchor registry and canvas
// geometry, subscribes to document events, and drives per-frame update and
// render. One Overlay per document; every method must run on the goroutine
// that drives the host's frame loop.
type Overlay struct {
	// CullEnabled skips the draw call for bindings placed entirely outside
	// the canvas. On by default.
	CullEnabled bool
	// Debug force-enables debug draw for every binding and logs frame
	// stats. Per-binding debug flags work with Debug off.
	Debug bool
	// ScreenshotDir is where Screenshot writes its PNG captures.
	ScreenshotDir string

	doc      Document
	renderer Renderer
	assets   AssetManager
	geom     *CanvasGeometry
	reg      registry
	drag     dragState
	frame    frameState

	injectQueue     []syntheticPointerEvent
	screenshotQueue []string
	script          *ScriptRunner

	removeResize  func()
	removeScroll  func()
	removePointer func()
	disposed      bool

	stats frameStats
}

// NewOverlay wires an overlay against its document and renderer, performs the
// initial canvas sizing pass, and attaches the resize, scroll, and pointer
// subscriptions.
func NewOverlay(cfg Config) (*Overlay, error) {
	if cfg.Document == nil {
		return nil, fmt.Errorf("tether: Config.Document is required")
	}
	if cfg.Renderer == nil {
		return nil, fmt.Errorf("tether: Config.Renderer is required")
	}
	o := &Overlay{
		CullEnabled:   true,
		Debug:         cfg.Debug,
		ScreenshotDir: "screenshots",
		doc:           cfg.Document,
		renderer:      cfg.Renderer,
		assets:        cfg.Assets,
		reg:           newRegistry(),
	}
	o.geom = newCanvasGeometry(cfg.Document, cfg.Renderer, cfg.Overflow)
	o.removeResize = cfg.Document.OnResize(o.geom.SyncResize)
	o.removeScroll = cfg.Document.OnScroll(o.geom.SyncScroll)
	o.removePointer = cfg.Document.OnPointer(o.handlePointer)
	return o, nil
}

// Geometry returns the overlay's canvas geometry state.
func (o *Overlay) Geometry() *CanvasGeometry { return o.geom }

// AddSkeleton registers a skeleton against one or more anchors and returns
// its handle.
//
// Every anchor identifier must resolve to an attached element before any
// loading happens; an unknown anchor or a parentless element fails the whole
// registration. The source then loads (unless it carries pre-built Data), the
// skeleton is instantiated and scaled, the initial clip starts looping on
// track 0, and the clip-aware bounds estimate is stored in unscaled local
// space.
//
// An empty anchors list is allowed: the entity stays registered but is
// skipped by update and render until it is removed.
func (o *Overlay) AddSkeleton(ctx context.Context, src SkeletonSource, anchors []AnchorOptions) (Handle, error) {
	if o.disposed {
		return 0, fmt.Errorf("tether: overlay is disposed")
	}

	baseDPR := o.doc.DevicePixelRatio()
	if baseDPR <= 0 {
		baseDPR = 1
	}
	bindings := make([]*Binding, 0, len(anchors))
	for _, a := range anchors {
		el := o.doc.ElementByAnchor(a.Anchor)
		if el == nil {
			return 0, fmt.Errorf("tether: anchor %q not found", a.Anchor)
		}
		if !el.HasParent() {
			return 0, fmt.Errorf("tether: anchor %q has no parent element", a.Anchor)
		}
		b := &Binding{
			Anchor:    a.Anchor,
			Element:   el,
			Mode:      a.Mode,
			Fit:       a.Fit,
			OffsetX:   a.OffsetX,
			OffsetY:   a.OffsetY,
			XAxis:     a.XAxis,
			YAxis:     a.YAxis,
			Draggable: a.Draggable,
			Debug:     a.Debug,
			baseDPR:   baseDPR,
			scaleX:    1,
			scaleY:    1,
		}
		b.shift = b.shiftVertex
		bindings = append(bindings, b)
	}

	data, err := loadSource(ctx, o.assets, src)
	if err != nil {
		return 0, err
	}
	sk, state := data.NewSkeleton()
	scale := src.Scale
	if scale <= 0 {
		scale = 1
	}
	sk.SetScale(scale, scale)

	var clip Clip
	if src.Clip != "" {
		if err := state.SetClip(0, src.Clip, true); err != nil {
			return 0, fmt.Errorf("tether: failed to start clip %q: %w", src.Clip, err)
		}
		clip = state.Clip(0)
	}

	bounds := unscaledBounds(EstimateBounds(sk, clip), sk.ScaleX(), sk.ScaleY())

	return o.reg.add(&entry{
		sk:       sk,
		state:    state,
		bounds:   bounds,
		bindings: bindings,
		updater:  src.Updater,
	}), nil
}

// Remove deregisters an entity. Stale handles are a no-op.
func (o *Overlay) Remove(h Handle) { o.reg.remove(h) }

// RecomputeBounds re-estimates an entity's bounds against the clip currently
// playing on track 0 and stores the result in unscaled local space.
func (o *Overlay) RecomputeBounds(h Handle) error {
	e := o.reg.get(h)
	if e == nil {
		return fmt.Errorf("tether: no entity for handle %d", h)
	}
	e.bounds = unscaledBounds(EstimateBounds(e.sk, e.state.Clip(0)), e.sk.ScaleX(), e.sk.ScaleY())
	return nil
}

// SetBounds overrides an entity's stored bounds. r must be in unscaled local
// space. Stale handles are a no-op.
func (o *Overlay) SetBounds(h Handle, r Rect) {
	if e := o.reg.get(h); e != nil {
		e.bounds = r
	}
}

// Bounds returns an entity's stored unscaled local bounds, or a zero Rect for
// stale handles.
func (o *Overlay) Bounds(h Handle) Rect {
	if e := o.reg.get(h); e != nil {
		return e.bounds
	}
	return Rect{}
}

// NumBindings returns how many anchor bindings an entity has.
func (o *Overlay) NumBindings(h Handle) int {
	if e := o.reg.get(h); e != nil {
		return len(e.bindings)
	}
	return 0
}

// Binding returns an entity's i'th anchor binding, or nil when out of range
// or stale.
func (o *Overlay) Binding(h Handle, i int) *Binding {
	e := o.reg.get(h)
	if e == nil || i < 0 || i >= len(e.bindings) {
		return nil
	}
	return e.bindings[i]
}

// Update advances every entity with at least one binding by dt seconds. An
// entity's Updater, when set, replaces the default pipeline completely. One
// injected pointer event is drained per call.
func (o *Overlay) Update(dt float64) {
	if o.disposed {
		return
	}
	o.frame = captureFrame(o.doc, o.geom)
	if o.script != nil {
		o.script.step(o)
	}
	o.drainInjected()

	o.reg.each(func(e *entry) {
		if e.updater != nil {
			e.updater.Update(dt, e.sk, e.state)
			return
		}
		e.state.Update(dt)
		e.state.Apply(e.sk)
		e.sk.Update(dt)
		e.sk.UpdateWorldTransform(PhysicsUpdate)
	})
}

// Draw resolves placement for every binding and issues one draw call each,
// with the binding's resolved world offset applied to every generated vertex.
// Placement for a binding always completes before its draw call.
func (o *Overlay) Draw() {
	if o.disposed {
		return
	}
	o.frame = captureFrame(o.doc, o.geom)
	f := o.frame
	canvas := o.renderer.Camera().VisibleBounds()

	o.stats.reset()
	o.renderer.Begin()
	o.reg.each(func(e *entry) {
		o.stats.entities++
		for _, b := range e.bindings {
			o.stats.bindings++
			placed := o.resolveBinding(e, b, f)
			if o.CullEnabled && !placed.Intersects(canvas) {
				o.stats.culled++
				continue
			}
			o.renderer.DrawSkeleton(e.sk, b.shift)
			o.stats.drawCalls++
			if b.Debug || o.Debug {
				o.drawBindingDebug(e, b, placed)
			}
		}
	})
	o.renderer.End()
	o.flushScreenshots()
	o.logStats()
}

// Dispose releases the resize, scroll, and pointer subscriptions and detaches
// the canvas host from the document. Idempotent; the overlay is inert
// afterward.
func (o *Overlay) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true
	if o.removeResize != nil {
		o.removeResize()
		o.removeResize = nil
	}
	if o.removeScroll != nil {
		o.removeScroll()
		o.removeScroll = nil
	}
	if o.removePointer != nil {
		o.removePointer()
		o.removePointer = nil
	}
	o.doc.DetachContainer()
}
