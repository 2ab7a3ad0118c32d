package tether

import "github.com/hajimehoshi/ebiten/v2"

// Physics selects how a world-transform update treats the skeleton's physics
// constraints.
type Physics uint8

const (
	PhysicsNone   Physics = iota // skip physics constraints entirely
	PhysicsReset                 // reset physics state, then skip
	PhysicsUpdate                // advance physics as part of the update
	PhysicsPose                  // apply the current physics pose without advancing
)

// Blend controls how a clip's values combine with the current pose when it is
// applied directly.
type Blend uint8

const (
	BlendSetup    Blend = iota // keyed values replace; unkeyed properties revert to the rest pose
	BlendFirst                 // like BlendSetup, for the first clip applied to a pose
	BlendReplace               // keyed values replace; unkeyed properties are left alone
	BlendAdditive              // keyed values add on top of the current pose
)

// MixDirection tells a clip whether it is blending in or out during apply.
type MixDirection uint8

const (
	MixIn MixDirection = iota
	MixOut
)

// Mesh is one textured triangle batch produced by a posed skeleton. Vertex
// destination coordinates are in skeleton space with the skeleton's scale
// already applied.
type Mesh struct {
	Image    *ebiten.Image
	Vertices []ebiten.Vertex
	Indices  []uint16
}

// Skeleton is a posable entity. Implementations wrap a skeletal-animation
// runtime; tether never poses bones itself.
type Skeleton interface {
	ScaleX() float64
	ScaleY() float64
	SetScale(sx, sy float64)

	// RootPosition returns the posed root transform position in skeleton
	// space.
	RootPosition() (x, y float64)
	// Bounds returns the axis-aligned bounding box of the current pose in
	// skeleton space. The box scales with the skeleton's scale.
	Bounds() Rect
	// SetToRestPose resets every transform to the rest pose.
	SetToRestPose()
	// PhysicsTranslate shifts the physics simulation by (dx, dy) world
	// units so constraints can react to external movement.
	PhysicsTranslate(dx, dy float64)
	// UpdateWorldTransform recomputes world transforms from the current
	// local pose.
	UpdateWorldTransform(physics Physics)
	// Update advances skeleton-internal clocks (physics time) by dt seconds.
	Update(dt float64)
	// Meshes returns the renderable geometry of the current pose. The
	// returned slices are valid until the next pose change.
	Meshes() []Mesh
}

// AnimationState sequences clips on numbered tracks and applies the blended
// result to a skeleton.
type AnimationState interface {
	// SetClip starts the named clip on the given track. Unknown clip names
	// are an error.
	SetClip(track int, name string, loop bool) error
	// Update advances every track by dt seconds.
	Update(dt float64)
	// Apply writes the current blended pose onto sk.
	Apply(sk Skeleton)
	// Clip returns the clip currently playing on the track, or nil.
	Clip(track int) Clip
}

// Clip is one motion clip of a skeleton's animation set.
type Clip interface {
	Name() string
	// Duration returns the clip length in seconds.
	Duration() float64
	// Apply poses sk at the given clip time.
	Apply(sk Skeleton, time float64, blend Blend, dir MixDirection)
}

// SkeletonData is loaded, shareable pose data. One SkeletonData can
// instantiate any number of independent skeletons.
type SkeletonData interface {
	NewSkeleton() (Skeleton, AnimationState)
}

// Updater replaces the default per-frame pipeline for one entity. When set,
// the overlay calls Update once per frame and skips its own advance/apply
// sequence entirely.
type Updater interface {
	Update(dt float64, sk Skeleton, state AnimationState)
}

// UpdaterFunc adapts a plain function to the Updater interface.
type UpdaterFunc func(dt float64, sk Skeleton, state AnimationState)

func (f UpdaterFunc) Update(dt float64, sk Skeleton, state AnimationState) { f(dt, sk, state) }
