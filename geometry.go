package tether

import "math"

// Overflow holds the canvas overflow fractions per edge, as fractions of the
// viewport size on the matching axis. The canvas extends this far beyond the
// viewport so content never visibly clips at an edge mid-scroll.
type Overflow struct {
	Top, Bottom, Left, Right float64
}

// DefaultOverflow is the overflow used when Config.Overflow is the zero
// value: 10% on top, left, and right, 20% on the bottom (downward scrolling
// exposes the bottom edge first).
var DefaultOverflow = Overflow{Top: 0.1, Bottom: 0.2, Left: 0.1, Right: 0.1}

// CanvasGeometry keeps the overlay canvas sized and translated against the
// document. The canvas CSS size is the viewport expanded by the overflow
// fractions; its translation cancels the scroll position adjusted by the
// near-edge margins, so canvas content stays registered with the document.
type CanvasGeometry struct {
	doc      Document
	renderer Renderer
	overflow Overflow

	canvasW, canvasH       float64 // CSS px
	translateX, translateY float64 // CSS px
	containerW, containerH float64 // CSS px
}

// newCanvasGeometry creates the geometry manager and performs the initial
// sizing pass.
func newCanvasGeometry(doc Document, renderer Renderer, overflow Overflow) *CanvasGeometry {
	if overflow == (Overflow{}) {
		overflow = DefaultOverflow
	}
	g := &CanvasGeometry{doc: doc, renderer: renderer, overflow: overflow}
	g.SyncResize()
	return g
}

// Overflow returns the configured overflow fractions.
func (g *CanvasGeometry) Overflow() Overflow { return g.overflow }

// CanvasSize returns the current canvas CSS size.
func (g *CanvasGeometry) CanvasSize() (w, h float64) { return g.canvasW, g.canvasH }

// Translation returns the current canvas translation in CSS px.
func (g *CanvasGeometry) Translation() (x, y float64) { return g.translateX, g.translateY }

// ContainerSize returns the current container size in CSS px.
func (g *CanvasGeometry) ContainerSize() (w, h float64) { return g.containerW, g.containerH }

// NearMargins returns the left and top overflow margins in CSS px.
func (g *CanvasGeometry) NearMargins() (left, top float64) {
	w, h := g.doc.ViewportSize()
	return w * g.overflow.Left, h * g.overflow.Top
}

// SyncResize recomputes everything that depends on the viewport size: the
// canvas CSS size, the renderer's raster buffer, the container size, and the
// translation. Runs once at construction and again on every resize event.
func (g *CanvasGeometry) SyncResize() {
	vw, vh := g.doc.ViewportSize()
	g.canvasW = vw * (1 + g.overflow.Left + g.overflow.Right)
	g.canvasH = vh * (1 + g.overflow.Top + g.overflow.Bottom)
	g.doc.SetCanvasSize(g.canvasW, g.canvasH)

	dpr := g.doc.DevicePixelRatio()
	if dpr <= 0 {
		dpr = 1
	}
	g.renderer.Resize(ResizeExpand, math.Round(g.canvasW*dpr), math.Round(g.canvasH*dpr))

	g.syncContainer()
	g.SyncScroll()
}

// SyncScroll repositions the canvas against the current scroll offset.
// Cheap; runs on every scroll event.
func (g *CanvasGeometry) SyncScroll() {
	sx, sy := g.doc.ScrollPosition()
	left, top := g.NearMargins()
	g.translateX = -(sx - left)
	g.translateY = -(sy - top)
	g.doc.SetCanvasTranslation(g.translateX, g.translateY)
}

// syncContainer sizes the layout container to the full scrollable document.
// The container is detached while measuring: its own size counts toward the
// document's scrollable size, and measuring with it attached would feed that
// size back into itself.
func (g *CanvasGeometry) syncContainer() {
	g.doc.DetachContainer()
	w, h := g.doc.DocumentSize()
	g.containerW, g.containerH = w, h
	g.doc.SetContainerSize(w, h)
	g.doc.AttachContainer()
}
