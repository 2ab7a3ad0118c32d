package tether

import "math"

// resolveBinding recomputes the binding's world offset (and, for PlaceInside,
// the skeleton scale) against the anchor element's current rectangle. Returns
// the placed world rectangle. Runs once per binding per rendered frame, before
// that binding's draw call.
func (o *Overlay) resolveBinding(e *entry, b *Binding, f frameState) Rect {
	cam := o.renderer.Camera()
	anchor := f.anchorRectToWorld(cam, b.Element.BoundingRect())

	var baseX, baseY float64
	switch b.Mode {
	case PlaceInside:
		sx, sy := fitScale(b.Fit, e.bounds.Width, e.bounds.Height, anchor.Width, anchor.Height)
		e.sk.SetScale(sx, sy)
		b.scaleX, b.scaleY = sx, sy
		// Offset lands the scaled bounds center on the anchor center.
		ax, ay := anchor.Center()
		bx, by := e.bounds.Center()
		baseX = ax - bx*sx
		baseY = ay - by*sy
	case PlaceOrigin:
		// No automatic scaling; the skeleton keeps whatever scale it has.
		b.scaleX, b.scaleY = e.sk.ScaleX(), e.sk.ScaleY()
		baseX = anchor.X + anchor.Width*b.XAxis
		baseY = anchor.Y + anchor.Height*b.YAxis
	}

	// Static offsets were authored at the binding's registration-time device
	// pixel ratio; rescale so they keep their on-screen size under zoom.
	dprScale := 1.0
	if b.baseDPR > 0 {
		dprScale = f.dpr / b.baseDPR
	}
	b.WorldX = baseX + b.OffsetX*dprScale + b.DragX
	b.WorldY = baseY + b.OffsetY*dprScale + b.DragY
	return e.placedRect(b)
}

// fitScale computes the (sx, sy) scale that fits a box of size (bw, bh) into
// an area of size (aw, ah) under the given policy. Degenerate boxes scale 1.
func fitScale(fit FitMode, bw, bh, aw, ah float64) (sx, sy float64) {
	if bw <= 0 || bh <= 0 {
		return 1, 1
	}
	switch fit {
	case FitScaleDown:
		if bw <= aw && bh <= ah {
			return 1, 1
		}
		// Scale by whichever axis ratio keeps the other axis inside.
		rw := aw / bw
		if bh*rw <= ah {
			return rw, rw
		}
		rh := ah / bh
		return rh, rh
	case FitContain:
		r := math.Min(aw/bw, ah/bh)
		return r, r
	case FitCover:
		r := math.Max(aw/bw, ah/bh)
		return r, r
	case FitFill:
		return aw / bw, ah / bh
	case FitWidth:
		r := aw / bw
		return r, r
	case FitHeight:
		r := ah / bh
		return r, r
	default: // FitNone
		return 1, 1
	}
}
