package tether

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ResizeMode selects how a renderer adapts its camera when the canvas raster
// size changes.
type ResizeMode uint8

const (
	// ResizeStretch keeps the camera unchanged; the raster stretches world
	// content to the new size.
	ResizeStretch ResizeMode = iota
	// ResizeExpand grows the camera viewport to the new size, keeping one
	// world unit equal to one device pixel. The overlay resizes with this
	// mode so world space stays pixel-registered.
	ResizeExpand
	// ResizeFit zooms so the previous world window fits the new size,
	// preserving aspect.
	ResizeFit
)

// VertexTransform post-processes generated vertex positions during a skeleton
// draw. Placement uses it to shift one posed skeleton to several independent
// anchors without re-posing.
type VertexTransform func(x, y float64) (float64, float64)

// Renderer is an overlay's drawing backend. The overlay calls Begin, a
// DrawSkeleton per anchor binding plus any debug primitives, then End, once
// per frame. Debug primitives take world coordinates.
type Renderer interface {
	Begin()
	End()
	// DrawSkeleton draws the skeleton's current meshes, passing every
	// vertex position through shift before the camera transform.
	DrawSkeleton(sk Skeleton, shift VertexTransform)

	DrawRect(r Rect, c Color)
	DrawCircle(cx, cy, radius float64, c Color)
	DrawLine(x0, y0, x1, y1 float64, c Color)

	// Camera returns the camera used for screen-world conversion.
	Camera() *Camera
	// Resize adapts the raster buffer and camera to a new size in device
	// pixels.
	Resize(mode ResizeMode, w, h float64)
}

// EbitenRenderer renders an overlay into an Ebitengine image. The host points
// it at the frame's target image with SetTarget before Overlay.Draw; a nil
// target drops draws instead of panicking, so headless updates stay safe.
type EbitenRenderer struct {
	target  *ebiten.Image
	cam     *Camera
	scratch []ebiten.Vertex
}

// NewEbitenRenderer creates a renderer with a zero-sized camera. The first
// Resize (issued by overlay construction) gives it real dimensions.
func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{cam: NewCamera(Rect{})}
}

// SetTarget points the renderer at the image the next frame draws into.
func (r *EbitenRenderer) SetTarget(img *ebiten.Image) { r.target = img }

// Camera returns the renderer's camera.
func (r *EbitenRenderer) Camera() *Camera { return r.cam }

// Begin clears the target to transparent. The overlay canvas composites over
// the document, so stale pixels must never survive a frame.
func (r *EbitenRenderer) Begin() {
	if r.target != nil {
		r.target.Clear()
	}
}

// End closes the frame batch.
func (r *EbitenRenderer) End() {}

// Resize adapts the camera to a new raster size in device pixels.
func (r *EbitenRenderer) Resize(mode ResizeMode, w, h float64) {
	switch mode {
	case ResizeExpand:
		r.cam.SetViewport(w, h)
	case ResizeFit:
		if vw, vh := r.cam.Viewport.Width, r.cam.Viewport.Height; vw > 0 && vh > 0 {
			r.cam.Zoom *= math.Min(w/vw, h/vh)
		}
		r.cam.Viewport = Rect{Width: w, Height: h}
		r.cam.MarkDirty()
	case ResizeStretch:
		// Camera untouched; the raster stretches the old world window.
	}
}

// DrawSkeleton submits one DrawTriangles call per skeleton mesh, with the
// placement shift and the camera view applied to every vertex.
func (r *EbitenRenderer) DrawSkeleton(sk Skeleton, shift VertexTransform) {
	if r.target == nil {
		return
	}
	view := r.cam.computeViewMatrix()
	var op ebiten.DrawTrianglesOptions
	for _, m := range sk.Meshes() {
		if len(m.Vertices) == 0 || len(m.Indices) == 0 || m.Image == nil {
			continue
		}
		dst := r.ensureScratch(len(m.Vertices))
		shiftVertices(m.Vertices, dst, shift, view)
		r.target.DrawTriangles(dst, m.Indices, m.Image, &op)
	}
}

// ensureScratch grows the vertex transform buffer to fit n vertices, using a
// high-water-mark strategy (never shrinks). Returns the resliced buffer.
func (r *EbitenRenderer) ensureScratch(n int) []ebiten.Vertex {
	if cap(r.scratch) < n {
		r.scratch = make([]ebiten.Vertex, n)
	}
	r.scratch = r.scratch[:n]
	return r.scratch
}

// capturePixels reads the current target back as premultiplied RGBA bytes.
// Implements the screenshot hook.
func (r *EbitenRenderer) capturePixels() (pix []byte, w, h int, ok bool) {
	if r.target == nil {
		return nil, 0, 0, false
	}
	bounds := r.target.Bounds()
	w, h = bounds.Dx(), bounds.Dy()
	pix = make([]byte, 4*w*h)
	r.target.ReadPixels(pix)
	return pix, w, h, true
}

// shiftVertices applies the placement shift and then the camera view
// transform to src vertices, writing the result into dst. dst must be at
// least len(src) in length.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
func shiftVertices(src, dst []ebiten.Vertex, shift VertexTransform, view [6]float64) {
	a, b, c, d, tx, ty := view[0], view[1], view[2], view[3], view[4], view[5]
	for i := range src {
		s := &src[i]
		x := float64(s.DstX)
		y := float64(s.DstY)
		if shift != nil {
			x, y = shift(x, y)
		}
		dst[i] = ebiten.Vertex{
			DstX:   float32(a*x + c*y + tx),
			DstY:   float32(b*x + d*y + ty),
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: s.ColorR,
			ColorG: s.ColorG,
			ColorB: s.ColorB,
			ColorA: s.ColorA,
		}
	}
}

// --- Debug primitives ---

const debugStrokeWidth = 2

// DrawRect strokes a world-space rectangle outline.
func (r *EbitenRenderer) DrawRect(rect Rect, c Color) {
	if r.target == nil {
		return
	}
	x0, y0 := r.cam.WorldToScreen(rect.X, rect.Y)
	x1, y1 := r.cam.WorldToScreen(rect.X+rect.Width, rect.Y+rect.Height)
	vector.StrokeRect(r.target, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0),
		debugStrokeWidth, c.toRGBA(), true)
}

// DrawCircle fills a world-space circle.
func (r *EbitenRenderer) DrawCircle(cx, cy, radius float64, c Color) {
	if r.target == nil {
		return
	}
	sx, sy := r.cam.WorldToScreen(cx, cy)
	vector.DrawFilledCircle(r.target, float32(sx), float32(sy), float32(radius*r.cam.Zoom),
		c.toRGBA(), true)
}

// DrawLine strokes a world-space line segment.
func (r *EbitenRenderer) DrawLine(x0, y0, x1, y1 float64, c Color) {
	if r.target == nil {
		return
	}
	sx0, sy0 := r.cam.WorldToScreen(x0, y0)
	sx1, sy1 := r.cam.WorldToScreen(x1, y1)
	vector.StrokeLine(r.target, float32(sx0), float32(sy0), float32(sx1), float32(sy1),
		debugStrokeWidth, c.toRGBA(), true)
}

// toRGBA converts a Color to a color.RGBA (premultiplied).
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
