package tether

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors (TweenOffset, TweenDrag, TweenAxis) and call
// Update(dt) each frame; the group writes values directly to the bound
// fields, so the next placement resolution picks them up.
//
// There is no global animation manager; callers pump Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the bound
// fields. Done is set once every tween has finished.
func (g *TweenGroup) Update(dt float64) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt))
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// add binds one tween to a field.
func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenOffset animates a binding's static offsets to the given values over
// duration seconds, nudging the placed skeleton relative to its anchor.
func TweenOffset(b *Binding, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&b.OffsetX, toX, duration, fn)
	g.add(&b.OffsetY, toY, duration, fn)
	return g
}

// TweenDrag animates a binding's drag accumulators, e.g. to glide a dragged
// skeleton back to its resting place after release.
func TweenDrag(b *Binding, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&b.DragX, toX, duration, fn)
	g.add(&b.DragY, toY, duration, fn)
	return g
}

// TweenAxis animates a PlaceOrigin binding's normalized anchor point, sliding
// the skeleton along the anchor rectangle.
func TweenAxis(b *Binding, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&b.XAxis, toX, duration, fn)
	g.add(&b.YAxis, toY, duration, fn)
	return g
}
