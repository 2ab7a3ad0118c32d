package tether

import "math"

// frameState is the per-frame snapshot of document metrics. It is captured
// once at the top of Update and Draw and threaded through placement,
// coordinate mapping, and drag handling, so a mid-frame change to the device
// pixel ratio or scroll position cannot split one frame across two geometries.
type frameState struct {
	dpr                  float64
	scrollX, scrollY     float64 // CSS px
	viewportW, viewportH float64 // CSS px
	// Near-edge overflow margins in CSS px (left and top). The canvas
	// extends this far beyond the viewport on each near edge.
	overflowLeft, overflowTop float64
}

// captureFrame reads the document metrics that the rest of the frame works
// from.
func captureFrame(doc Document, geom *CanvasGeometry) frameState {
	var f frameState
	f.dpr = doc.DevicePixelRatio()
	if f.dpr <= 0 {
		f.dpr = 1
	}
	f.scrollX, f.scrollY = doc.ScrollPosition()
	f.viewportW, f.viewportH = doc.ViewportSize()
	f.overflowLeft, f.overflowTop = geom.NearMargins()
	return f
}

// pageToWorld converts a page-space point (CSS px, document-relative) to
// world space: subtract scroll, shift by the near overflow margins into
// canvas-local coordinates, fold the device pixel ratio, then go through the
// camera.
func (f frameState) pageToWorld(cam *Camera, px, py float64) (wx, wy float64) {
	cx := (px - f.scrollX + f.overflowLeft) * f.dpr
	cy := (py - f.scrollY + f.overflowTop) * f.dpr
	return cam.ScreenToWorld(cx, cy)
}

// viewportToWorld converts a viewport-space point (CSS px, scroll excluded,
// as element rectangles are reported) to world space.
func (f frameState) viewportToWorld(cam *Camera, vx, vy float64) (wx, wy float64) {
	cx := (vx + f.overflowLeft) * f.dpr
	cy := (vy + f.overflowTop) * f.dpr
	return cam.ScreenToWorld(cx, cy)
}

// anchorRectToWorld converts an element's viewport-space rectangle to a
// world-space rectangle.
func (f frameState) anchorRectToWorld(cam *Camera, r Rect) Rect {
	x0, y0 := f.viewportToWorld(cam, r.X, r.Y)
	x1, y1 := f.viewportToWorld(cam, r.X+r.Width, r.Y+r.Height)
	return Rect{
		X:      math.Min(x0, x1),
		Y:      math.Min(y0, y1),
		Width:  math.Abs(x1 - x0),
		Height: math.Abs(y1 - y0),
	}
}
