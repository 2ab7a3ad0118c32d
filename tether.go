package tether

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Center returns the rectangle's center point.
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// PlacementMode selects how an anchor binding positions its skeleton relative
// to the anchor element's on-screen rectangle.
type PlacementMode uint8

const (
	// PlaceInside scales the skeleton's bounding box to fit the anchor
	// rectangle under the binding's FitMode and centers it there.
	PlaceInside PlacementMode = iota
	// PlaceOrigin pins the skeleton origin to a normalized (XAxis, YAxis)
	// point within the anchor rectangle. No scaling is applied.
	PlaceOrigin
)

// FitMode selects the scaling policy used by PlaceInside bindings.
type FitMode uint8

const (
	FitScaleDown FitMode = iota // uniform; shrink to fit, never enlarge (default)
	FitContain                  // uniform; largest scale keeping both axes inside
	FitCover                    // uniform; smallest scale covering both axes
	FitFill                     // non-uniform; stretch each axis to the rectangle
	FitWidth                    // uniform; match the rectangle width
	FitHeight                   // uniform; match the rectangle height
	FitNone                     // no scaling
)
