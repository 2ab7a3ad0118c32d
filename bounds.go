package tether

import (
	"fmt"
	"math"
	"os"
)

// boundsSamples is the number of fixed time steps a clip is sampled at when
// estimating motion bounds.
const boundsSamples = 100

// EstimateBounds computes a bounding rectangle for the skeleton in skeleton
// space, at the skeleton's current scale.
//
// With a nil clip the rest pose is measured directly. Otherwise the skeleton
// is reset to the rest pose and the clip is sampled at boundsSamples fixed
// steps across its duration (a zero-duration clip samples entirely at t=0),
// accumulating the min/max box over every sample. Samples producing
// non-finite coordinates are skipped with a diagnostic; if every sample is
// skipped the rest-pose bounds are returned.
//
// The skeleton is left in the last sampled pose. Callers persisting the
// result must divide by the current skeleton scale first, since rendering
// re-applies scale.
func EstimateBounds(sk Skeleton, clip Clip) Rect {
	sk.SetToRestPose()
	sk.UpdateWorldTransform(PhysicsUpdate)
	if clip == nil {
		return sk.Bounds()
	}
	rest := sk.Bounds()

	step := clip.Duration() / boundsSamples
	var box Rect
	found := false
	warned := false
	time := 0.0
	for i := 0; i < boundsSamples; i++ {
		clip.Apply(sk, time, BlendSetup, MixIn)
		sk.UpdateWorldTransform(PhysicsUpdate)
		b := sk.Bounds()
		time += step

		if !finiteRect(b) {
			if !warned {
				fmt.Fprintf(os.Stderr, "[tether] clip %q produced non-finite bounds at sample %d, skipping\n",
					clip.Name(), i)
				warned = true
			}
			continue
		}
		if !found {
			box = b
			found = true
			continue
		}
		box = unionRect(box, b)
	}
	if !found {
		return rest
	}
	return box
}

// finiteRect reports whether every component of r is a finite number.
func finiteRect(r Rect) bool {
	return finite(r.X) && finite(r.Y) && finite(r.Width) && finite(r.Height)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// unionRect returns the smallest rectangle containing both a and b.
func unionRect(a, b Rect) Rect {
	minX := math.Min(a.X, b.X)
	minY := math.Min(a.Y, b.Y)
	maxX := math.Max(a.X+a.Width, b.X+b.Width)
	maxY := math.Max(a.Y+a.Height, b.Y+b.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// unscaledBounds divides a measured bounds box by the skeleton scale it was
// measured at, yielding the unscaled local-space box the registry stores.
// Degenerate scales leave the box unchanged.
func unscaledBounds(b Rect, sx, sy float64) Rect {
	if sx != 0 {
		b.X /= sx
		b.Width /= sx
	}
	if sy != 0 {
		b.Y /= sy
		b.Height /= sy
	}
	return b
}
