package tether

import (
	"fmt"
	"os"
)

// frameStats holds per-frame placement and draw-call metrics.
// Only reported when Overlay.Debug is true.
type frameStats struct {
	entities  int
	bindings  int
	drawCalls int
	culled    int
	frames    int // frames since the last stderr report
}

// reset zeroes the per-frame counts. The frame counter survives so the log
// interval keeps its cadence.
func (s *frameStats) reset() {
	s.entities, s.bindings, s.drawCalls, s.culled = 0, 0, 0, 0
}

// statsLogInterval is how many frames pass between stderr stat lines.
const statsLogInterval = 60

// logStats prints placement and draw-call stats to stderr once per interval.
func (o *Overlay) logStats() {
	if !o.Debug {
		return
	}
	o.stats.frames++
	if o.stats.frames < statsLogInterval {
		return
	}
	o.stats.frames = 0
	_, _ = fmt.Fprintf(os.Stderr,
		"[tether] entities: %d | bindings: %d | draw calls: %d | culled: %d\n",
		o.stats.entities, o.stats.bindings, o.stats.drawCalls, o.stats.culled)
}

// Debug draw palette.
var (
	debugRectColor   = Color{R: 0.2, G: 0.9, B: 0.3, A: 1}
	debugRootColor   = Color{R: 0.95, G: 0.25, B: 0.2, A: 1}
	debugOriginColor = Color{R: 0.25, G: 0.55, B: 0.95, A: 1}
	debugLineColor   = Color{R: 1, G: 1, B: 1, A: 0.6}
)

const debugMarkerRadius = 5

// drawBindingDebug renders the diagnostic overlay for one resolved binding:
// the placed bounds outline, its center, the skeleton root, the resolved
// origin, and a line from origin to bounds center. Purely diagnostic, no
// effect on placement.
func (o *Overlay) drawBindingDebug(e *entry, b *Binding, placed Rect) {
	r := o.renderer
	cx, cy := placed.Center()
	rootX, rootY := e.sk.RootPosition()

	r.DrawRect(placed, debugRectColor)
	r.DrawCircle(cx, cy, debugMarkerRadius, debugRectColor)
	r.DrawCircle(rootX+b.WorldX, rootY+b.WorldY, debugMarkerRadius, debugRootColor)
	r.DrawCircle(b.WorldX, b.WorldY, debugMarkerRadius, debugOriginColor)
	r.DrawLine(b.WorldX, b.WorldY, cx, cy, debugLineColor)
}
