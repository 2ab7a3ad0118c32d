package tether

import "testing"

// resolveFixture builds a detached entry and binding for direct placement
// calls. The overlay's camera is the identity, so with a zero-overflow frame
// the anchor's world rectangle equals its viewport rectangle.
func resolveFixture(t *testing.T, local Rect, elRect Rect, mode PlacementMode) (*Overlay, *entry, *Binding) {
	t.Helper()
	o, _ := newTestOverlay(t, newFakeDocument())
	sk := newStubSkeleton(local)
	e := &entry{sk: sk, bounds: local}
	b := &Binding{
		Element: &fakeElement{rect: elRect},
		Mode:    mode,
		baseDPR: 1,
		scaleX:  1,
		scaleY:  1,
	}
	return o, e, b
}

func TestResolveBinding_InsideCentered(t *testing.T) {
	o, e, b := resolveFixture(t,
		Rect{Width: 100, Height: 100},
		Rect{X: 50, Y: 50, Width: 200, Height: 200},
		PlaceInside)

	placed := o.resolveBinding(e, b, frameState{dpr: 1})

	// Bounds fit: scale 1, box centered in the anchor.
	if !approxEqual(b.WorldX, 100, epsilon) || !approxEqual(b.WorldY, 100, epsilon) {
		t.Errorf("world = (%f,%f), want (100,100)", b.WorldX, b.WorldY)
	}
	if !approxEqual(b.scaleX, 1, epsilon) || !approxEqual(b.scaleY, 1, epsilon) {
		t.Errorf("scale = (%f,%f), want (1,1)", b.scaleX, b.scaleY)
	}
	want := Rect{X: 100, Y: 100, Width: 100, Height: 100}
	if placed != want {
		t.Errorf("placed = %+v, want %+v", placed, want)
	}
}

func TestResolveBinding_InsideScalesDown(t *testing.T) {
	o, e, b := resolveFixture(t,
		Rect{Width: 100, Height: 100},
		Rect{X: 0, Y: 0, Width: 50, Height: 50},
		PlaceInside)

	placed := o.resolveBinding(e, b, frameState{dpr: 1})

	if !approxEqual(b.scaleX, 0.5, epsilon) {
		t.Errorf("scale = %f, want 0.5", b.scaleX)
	}
	sk := e.sk.(*stubSkeleton)
	if sk.sx != 0.5 || sk.setScaleCalls == 0 {
		t.Error("PlaceInside must push the fitted scale onto the skeleton")
	}
	if placed != (Rect{Width: 50, Height: 50}) {
		t.Errorf("placed = %+v, want {0 0 50 50}", placed)
	}
}

func TestResolveBinding_Origin(t *testing.T) {
	o, e, b := resolveFixture(t,
		Rect{Width: 100, Height: 100},
		Rect{X: 20, Y: 20, Width: 80, Height: 80},
		PlaceOrigin)
	b.OffsetX = 10

	o.resolveBinding(e, b, frameState{dpr: 1})

	// Anchor top-left plus the static offset; no scaling.
	if !approxEqual(b.WorldX, 30, epsilon) || !approxEqual(b.WorldY, 20, epsilon) {
		t.Errorf("world = (%f,%f), want (30,20)", b.WorldX, b.WorldY)
	}
	if e.sk.(*stubSkeleton).setScaleCalls != 0 {
		t.Error("PlaceOrigin must not touch the skeleton scale")
	}
}

func TestResolveBinding_OriginAxes(t *testing.T) {
	o, e, b := resolveFixture(t,
		Rect{Width: 100, Height: 100},
		Rect{X: 100, Y: 100, Width: 200, Height: 100},
		PlaceOrigin)
	b.XAxis = 0.5
	b.YAxis = 1

	o.resolveBinding(e, b, frameState{dpr: 1})
	if !approxEqual(b.WorldX, 200, epsilon) || !approxEqual(b.WorldY, 200, epsilon) {
		t.Errorf("world = (%f,%f), want bottom-center (200,200)", b.WorldX, b.WorldY)
	}
}

func TestResolveBinding_OriginKeepsSkeletonScale(t *testing.T) {
	o, e, b := resolveFixture(t,
		Rect{Width: 100, Height: 100},
		Rect{X: 0, Y: 0, Width: 50, Height: 50},
		PlaceOrigin)
	e.sk.SetScale(2, 2)
	e.sk.(*stubSkeleton).setScaleCalls = 0

	placed := o.resolveBinding(e, b, frameState{dpr: 1})
	if b.scaleX != 2 || b.scaleY != 2 {
		t.Errorf("binding scale = (%f,%f), want the skeleton's (2,2)", b.scaleX, b.scaleY)
	}
	if placed.Width != 200 {
		t.Errorf("placed width = %f, want 200", placed.Width)
	}
}

func TestResolveBinding_OffsetRescalesWithDPR(t *testing.T) {
	o, e, b := resolveFixture(t,
		Rect{Width: 100, Height: 100},
		Rect{X: 0, Y: 0, Width: 100, Height: 100},
		PlaceOrigin)
	b.OffsetX = 10
	b.OffsetY = -5

	// Offsets were authored at dpr 1; at dpr 2 they double in world units so
	// their on-screen size holds.
	o.resolveBinding(e, b, frameState{dpr: 2})
	if !approxEqual(b.WorldX, 20, epsilon) || !approxEqual(b.WorldY, -10, epsilon) {
		t.Errorf("world = (%f,%f), want (20,-10)", b.WorldX, b.WorldY)
	}
}

func TestResolveBinding_ZeroBaseDPR(t *testing.T) {
	o, e, b := resolveFixture(t,
		Rect{Width: 100, Height: 100},
		Rect{X: 0, Y: 0, Width: 100, Height: 100},
		PlaceOrigin)
	b.OffsetX = 10
	b.baseDPR = 0

	o.resolveBinding(e, b, frameState{dpr: 2})
	if !approxEqual(b.WorldX, 10, epsilon) {
		t.Errorf("world x = %f, want unscaled offset 10", b.WorldX)
	}
}

func TestResolveBinding_DragOffsetApplies(t *testing.T) {
	o, e, b := resolveFixture(t,
		Rect{Width: 100, Height: 100},
		Rect{X: 20, Y: 20, Width: 80, Height: 80},
		PlaceOrigin)
	b.DragX, b.DragY = 7, -3

	o.resolveBinding(e, b, frameState{dpr: 1})
	if !approxEqual(b.WorldX, 27, epsilon) || !approxEqual(b.WorldY, 17, epsilon) {
		t.Errorf("world = (%f,%f), want (27,17)", b.WorldX, b.WorldY)
	}
}

func TestFitScale(t *testing.T) {
	// A wide box into a wider but much shorter area.
	const bw, bh, aw, ah = 100, 50, 200, 25

	cases := []struct {
		name   string
		fit    FitMode
		sx, sy float64
	}{
		{"scaleDown", FitScaleDown, 0.5, 0.5},
		{"contain", FitContain, 0.5, 0.5},
		{"cover", FitCover, 2, 2},
		{"fill", FitFill, 2, 0.5},
		{"width", FitWidth, 2, 2},
		{"height", FitHeight, 0.5, 0.5},
		{"none", FitNone, 1, 1},
	}
	for _, tc := range cases {
		sx, sy := fitScale(tc.fit, bw, bh, aw, ah)
		if !approxEqual(sx, tc.sx, epsilon) || !approxEqual(sy, tc.sy, epsilon) {
			t.Errorf("%s: scale = (%f,%f), want (%f,%f)", tc.name, sx, sy, tc.sx, tc.sy)
		}
	}
}

func TestFitScale_ScaleDownNeverEnlarges(t *testing.T) {
	if sx, sy := fitScale(FitScaleDown, 100, 50, 300, 200); sx != 1 || sy != 1 {
		t.Errorf("scale = (%f,%f), want (1,1) for a box already inside", sx, sy)
	}
	// Width fits, height does not: shrink by the height ratio.
	if sx, _ := fitScale(FitScaleDown, 100, 50, 150, 40); !approxEqual(sx, 0.8, epsilon) {
		t.Errorf("scale = %f, want 0.8", sx)
	}
}

func TestFitScale_DegenerateBox(t *testing.T) {
	if sx, sy := fitScale(FitContain, 0, 100, 200, 200); sx != 1 || sy != 1 {
		t.Errorf("scale = (%f,%f), want (1,1) for a zero-width box", sx, sy)
	}
	if sx, sy := fitScale(FitCover, 100, -1, 200, 200); sx != 1 || sy != 1 {
		t.Errorf("scale = (%f,%f), want (1,1) for a negative-height box", sx, sy)
	}
}

func TestPlacedRect(t *testing.T) {
	e := &entry{bounds: Rect{X: -10, Y: -20, Width: 40, Height: 60}}
	b := &Binding{scaleX: 2, scaleY: 2, WorldX: 100, WorldY: 50}

	placed := e.placedRect(b)
	if placed != (Rect{X: 80, Y: 10, Width: 80, Height: 120}) {
		t.Errorf("placed = %+v, want {80 10 80 120}", placed)
	}
}

func TestResolveBinding_AnchorTracksElement(t *testing.T) {
	o, e, b := resolveFixture(t,
		Rect{Width: 100, Height: 100},
		Rect{X: 0, Y: 0, Width: 100, Height: 100},
		PlaceOrigin)
	el := b.Element.(*fakeElement)

	o.resolveBinding(e, b, frameState{dpr: 1})
	first := b.WorldX

	// The element moved (layout shift, scroll-linked animation): the next
	// resolve follows it with no caller involvement.
	el.rect.X += 55
	o.resolveBinding(e, b, frameState{dpr: 1})
	if !approxEqual(b.WorldX, first+55, epsilon) {
		t.Errorf("world x = %f, want %f", b.WorldX, first+55)
	}
}
