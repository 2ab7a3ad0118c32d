package tether

import (
	"reflect"
	"testing"
)

func TestCanvasGeometry_InitialSizing(t *testing.T) {
	doc := newFakeDocument()
	r := newRecordRenderer()
	g := newCanvasGeometry(doc, r, Overflow{})

	// 800x600 viewport with the default overflow: 10% left+right, 10% top,
	// 20% bottom.
	w, h := g.CanvasSize()
	if !approxEqual(w, 960, epsilon) || !approxEqual(h, 780, epsilon) {
		t.Errorf("CanvasSize = (%f,%f), want (960,780)", w, h)
	}
	if doc.canvasW != w || doc.canvasH != h {
		t.Errorf("document canvas = (%f,%f), want (%f,%f)", doc.canvasW, doc.canvasH, w, h)
	}

	if len(r.resizes) != 1 {
		t.Fatalf("renderer resizes = %d, want 1", len(r.resizes))
	}
	rs := r.resizes[0]
	if rs.mode != ResizeExpand || rs.w != 960 || rs.h != 780 {
		t.Errorf("renderer resize = %+v, want expand 960x780", rs)
	}
}

func TestCanvasGeometry_RasterRounding(t *testing.T) {
	doc := newFakeDocument()
	doc.dpr = 1.5
	r := newRecordRenderer()
	newCanvasGeometry(doc, r, Overflow{})

	// CSS 960x780 at dpr 1.5 rounds to whole device pixels.
	rs := r.resizes[0]
	if rs.w != 1440 || rs.h != 1170 {
		t.Errorf("raster = (%f,%f), want (1440,1170)", rs.w, rs.h)
	}
}

func TestCanvasGeometry_ContainerOrdering(t *testing.T) {
	doc := newFakeDocument()
	g := newCanvasGeometry(doc, newRecordRenderer(), Overflow{})

	// The container must be out of the document flow while the document is
	// measured, or its own height would feed back into the measurement.
	want := []string{"setCanvasSize", "detach", "setContainerSize", "attach", "setTranslation"}
	if !reflect.DeepEqual(doc.log, want) {
		t.Errorf("event order = %v, want %v", doc.log, want)
	}
	if !doc.attached {
		t.Error("container should be re-attached after measuring")
	}
	w, h := g.ContainerSize()
	if w != 800 || h != 2000 {
		t.Errorf("ContainerSize = (%f,%f), want (800,2000)", w, h)
	}
}

func TestCanvasGeometry_Translation(t *testing.T) {
	doc := newFakeDocument()
	g := newCanvasGeometry(doc, newRecordRenderer(), Overflow{})

	// At scroll zero the canvas shifts up-left by the near margins.
	tx, ty := g.Translation()
	if !approxEqual(tx, 80, epsilon) || !approxEqual(ty, 60, epsilon) {
		t.Errorf("Translation = (%f,%f), want (80,60)", tx, ty)
	}

	doc.scrollX, doc.scrollY = 150, 700
	g.SyncScroll()
	tx, ty = g.Translation()
	if !approxEqual(tx, -70, epsilon) || !approxEqual(ty, -640, epsilon) {
		t.Errorf("Translation = (%f,%f) after scroll, want (-70,-640)", tx, ty)
	}
	if doc.translateX != tx || doc.translateY != ty {
		t.Errorf("document translation = (%f,%f), want (%f,%f)", doc.translateX, doc.translateY, tx, ty)
	}
}

func TestCanvasGeometry_SyncScrollIsTranslationOnly(t *testing.T) {
	doc := newFakeDocument()
	r := newRecordRenderer()
	g := newCanvasGeometry(doc, r, Overflow{})
	logLen := len(doc.log)
	resizes := len(r.resizes)

	doc.scrollY = 300
	g.SyncScroll()

	if len(r.resizes) != resizes {
		t.Error("SyncScroll must not resize the renderer")
	}
	if got := doc.log[logLen:]; len(got) != 1 || got[0] != "setTranslation" {
		t.Errorf("SyncScroll events = %v, want [setTranslation]", got)
	}
}

func TestCanvasGeometry_ZeroOverflowSelectsDefault(t *testing.T) {
	g := newCanvasGeometry(newFakeDocument(), newRecordRenderer(), Overflow{})
	if g.Overflow() != DefaultOverflow {
		t.Errorf("Overflow = %+v, want DefaultOverflow", g.Overflow())
	}
}

func TestCanvasGeometry_CustomOverflow(t *testing.T) {
	doc := newFakeDocument()
	g := newCanvasGeometry(doc, newRecordRenderer(),
		Overflow{Top: 0.5, Bottom: 0.5, Left: 0.25, Right: 0.25})

	w, h := g.CanvasSize()
	if !approxEqual(w, 1200, epsilon) || !approxEqual(h, 1200, epsilon) {
		t.Errorf("CanvasSize = (%f,%f), want (1200,1200)", w, h)
	}
	left, top := g.NearMargins()
	if !approxEqual(left, 200, epsilon) || !approxEqual(top, 300, epsilon) {
		t.Errorf("NearMargins = (%f,%f), want (200,300)", left, top)
	}
}

func TestCanvasGeometry_Resize(t *testing.T) {
	doc := newFakeDocument()
	r := newRecordRenderer()
	g := newCanvasGeometry(doc, r, Overflow{})

	doc.viewportW, doc.viewportH = 1000, 500
	doc.docH = 4000
	g.SyncResize()

	w, h := g.CanvasSize()
	if !approxEqual(w, 1200, epsilon) || !approxEqual(h, 650, epsilon) {
		t.Errorf("CanvasSize = (%f,%f) after resize, want (1200,650)", w, h)
	}
	if _, ch := g.ContainerSize(); ch != 4000 {
		t.Errorf("container height = %f, want remeasured 4000", ch)
	}
	if len(r.resizes) != 2 {
		t.Errorf("renderer resizes = %d, want 2", len(r.resizes))
	}
}
