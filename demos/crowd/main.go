// crowd spawns several hundred anchored skeletons down a long page and
// auto-scrolls through them. A stress run for placement, culling, and the
// draw loop: most anchors are off-canvas at any moment, and the stderr stats
// line shows how many draw calls survive the cull. A pointer script drags one
// skeleton and captures a thumbnail before the scroll starts.
package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/tether"
)

const (
	screenW  = 1280
	screenH  = 720
	gridCols = 10
	gridRows = 40
	cellSize = 90
	cellStep = 130
	gridLeft = 40
	gridTop  = 140
	docH     = gridTop + gridRows*cellStep + 200

	scrollSpeed = 12
	totalFrames = 240
)

const crowdScript = `{
	"steps": [
		{"action": "wait", "frames": 30},
		{"action": "drag", "fromX": 325, "fromY": 320, "toX": 430, "toY": 370, "frames": 20},
		{"action": "wait", "frames": 20},
		{"action": "screenshot", "label": "thumbnail"},
		{"action": "wait", "frames": 2}
	]
}`

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() { whiteImage.Fill(color.White) }

// gridDoc is a tether.Document over a grid of anchor cells down a tall page.
type gridDoc struct {
	scrollY   float64
	scrollFns []func()
	ptrFns    []func(*tether.PointerEvent)

	canvasW, canvasH       float64
	translateX, translateY float64
}

// cellRect returns the page rectangle of one grid cell.
func cellRect(row, col int) tether.Rect {
	return tether.Rect{
		X:      gridLeft + float64(col)*((screenW-2*gridLeft)/gridCols),
		Y:      gridTop + float64(row)*cellStep,
		Width:  cellSize,
		Height: cellSize,
	}
}

type cellElement struct {
	doc  *gridDoc
	rect tether.Rect
}

func (e cellElement) BoundingRect() tether.Rect {
	r := e.rect
	r.Y -= e.doc.scrollY
	return r
}

func (e cellElement) HasParent() bool { return true }

func (d *gridDoc) ElementByAnchor(id string) tether.Element {
	var row, col int
	if _, err := fmt.Sscanf(id, "cell-%d-%d", &row, &col); err != nil {
		return nil
	}
	return cellElement{doc: d, rect: cellRect(row, col)}
}

func (d *gridDoc) ViewportSize() (float64, float64)   { return screenW, screenH }
func (d *gridDoc) DocumentSize() (float64, float64)   { return screenW, docH }
func (d *gridDoc) ScrollPosition() (float64, float64) { return 0, d.scrollY }
func (d *gridDoc) DevicePixelRatio() float64          { return 1 }

func (d *gridDoc) OnResize(func()) func() { return func() {} }

func (d *gridDoc) OnScroll(fn func()) func() {
	d.scrollFns = append(d.scrollFns, fn)
	return func() {}
}

func (d *gridDoc) OnPointer(fn func(*tether.PointerEvent)) func() {
	d.ptrFns = append(d.ptrFns, fn)
	return func() {}
}

func (d *gridDoc) SetCanvasSize(w, h float64)        { d.canvasW, d.canvasH = w, h }
func (d *gridDoc) SetCanvasTranslation(x, y float64) { d.translateX, d.translateY = x, y }
func (d *gridDoc) SetContainerSize(float64, float64) {}
func (d *gridDoc) DetachContainer()                  {}
func (d *gridDoc) AttachContainer()                  {}

func (d *gridDoc) scrollBy(dy float64) {
	y := math.Max(0, math.Min(d.scrollY+dy, docH-screenH))
	if y == d.scrollY {
		return
	}
	d.scrollY = y
	for _, fn := range d.scrollFns {
		fn()
	}
}

// puck is a one-quad skeleton with a bob pose and a drag spring.
type puck struct {
	sx, sy       float64
	bob          float64
	physX, physY float64
	velX, velY   float64
	tint         [3]float32

	verts   []ebiten.Vertex
	indices []uint16
}

func (p *puck) ScaleX() float64 { return p.sx }
func (p *puck) ScaleY() float64 { return p.sy }

func (p *puck) SetScale(sx, sy float64) { p.sx, p.sy = sx, sy }

func (p *puck) RootPosition() (float64, float64) { return p.physX * p.sx, p.physY * p.sy }

func (p *puck) SetToRestPose() { p.bob = 0 }

func (p *puck) PhysicsTranslate(dx, dy float64) { p.velX += dx * 6; p.velY += dy * 6 }

func (p *puck) Bounds() tether.Rect {
	return tether.Rect{
		X:      (-40 + p.physX) * p.sx,
		Y:      (-40 + p.bob + p.physY) * p.sy,
		Width:  80 * p.sx,
		Height: 80 * p.sy,
	}
}

func (p *puck) UpdateWorldTransform(physics tether.Physics) {
	if physics == tether.PhysicsReset {
		p.physX, p.physY, p.velX, p.velY = 0, 0, 0, 0
	}
}

func (p *puck) Update(dt float64) {
	p.velX += -p.physX * 40 * dt
	p.velY += -p.physY * 40 * dt
	p.velX *= 1 - math.Min(8*dt, 0.9)
	p.velY *= 1 - math.Min(8*dt, 0.9)
	p.physX += p.velX * dt
	p.physY += p.velY * dt
}

func (p *puck) Meshes() []tether.Mesh {
	p.verts = p.verts[:0]
	p.indices = p.indices[:0]
	x0, y0 := (-40+p.physX)*p.sx, (-40+p.bob+p.physY)*p.sy
	x1, y1 := (40+p.physX)*p.sx, (40+p.bob+p.physY)*p.sy
	for _, pt := range [4][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}} {
		p.verts = append(p.verts, ebiten.Vertex{
			DstX: float32(pt[0]), DstY: float32(pt[1]),
			SrcX: 1, SrcY: 1,
			ColorR: p.tint[0], ColorG: p.tint[1], ColorB: p.tint[2], ColorA: 1,
		})
	}
	p.indices = append(p.indices, 0, 1, 2, 0, 2, 3)
	return []tether.Mesh{{Image: whiteSub, Vertices: p.verts, Indices: p.indices}}
}

type bobClip struct{ duration float64 }

func (c bobClip) Name() string      { return "bob" }
func (c bobClip) Duration() float64 { return c.duration }

func (c bobClip) Apply(sk tether.Skeleton, t float64, _ tether.Blend, _ tether.MixDirection) {
	sk.(*puck).bob = 10 * math.Sin(t/c.duration*2*math.Pi)
}

type puckState struct {
	playing tether.Clip
	time    float64
}

func (s *puckState) SetClip(int, string, bool) error {
	s.playing = bobClip{duration: 0.8 + rand.Float64()*0.8}
	return nil
}

func (s *puckState) Update(dt float64) { s.time += dt }

func (s *puckState) Apply(sk tether.Skeleton) {
	if s.playing != nil {
		s.playing.Apply(sk, math.Mod(s.time, s.playing.Duration()), tether.BlendSetup, tether.MixIn)
	}
}

func (s *puckState) Clip(int) tether.Clip { return s.playing }

type puckData struct{}

func (puckData) NewSkeleton() (tether.Skeleton, tether.AnimationState) {
	return &puck{
		sx: 1, sy: 1,
		tint: [3]float32{
			0.5 + rand.Float32()*0.5,
			0.5 + rand.Float32()*0.5,
			0.5 + rand.Float32()*0.5,
		},
	}, &puckState{}
}

type Game struct {
	doc      *gridDoc
	overlay  *tether.Overlay
	renderer *tether.EbitenRenderer
	runner   *tether.ScriptRunner
	canvas   *ebiten.Image
	frame    int
}

func (g *Game) Update() error {
	g.frame++
	if g.frame >= totalFrames {
		return ebiten.Termination
	}
	// Once the scripted drag and thumbnail are done, turn on the stats line
	// and scroll through the rest of the grid.
	if g.runner.Done() {
		g.overlay.Debug = true
		g.doc.scrollBy(scrollSpeed)
	}
	g.overlay.Update(1.0 / 60.0)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 15, G: 15, B: 23, A: 255})
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			r := cellRect(row, col)
			y := r.Y - g.doc.scrollY
			if y+r.Height < 0 || y > screenH {
				continue
			}
			vector.DrawFilledRect(screen, float32(r.X), float32(y),
				float32(r.Width), float32(r.Height), color.RGBA{R: 30, G: 30, B: 44, A: 255}, false)
		}
	}

	if g.canvas == nil {
		g.canvas = ebiten.NewImage(
			int(math.Round(g.doc.canvasW)), int(math.Round(g.doc.canvasH)))
	}
	g.renderer.SetTarget(g.canvas)
	g.overlay.Draw()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-g.doc.translateX, -g.doc.translateY-g.doc.scrollY)
	screen.DrawImage(g.canvas, &op)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f  TPS: %.0f  entities: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), gridCols*gridRows), 4, 4)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

func main() {
	doc := &gridDoc{}
	renderer := tether.NewEbitenRenderer()
	overlay, err := tether.NewOverlay(tether.Config{Document: doc, Renderer: renderer})
	if err != nil {
		log.Fatal(err)
	}
	overlay.ScreenshotDir = "docs/demos/crowd"

	ctx := context.Background()
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			_, err := overlay.AddSkeleton(ctx,
				tether.SkeletonSource{Data: puckData{}, Clip: "bob"},
				[]tether.AnchorOptions{{
					Anchor:    fmt.Sprintf("cell-%d-%d", row, col),
					Mode:      tether.PlaceInside,
					Draggable: true,
				}})
			if err != nil {
				log.Fatal(err)
			}
		}
	}

	runner, err := tether.LoadScript([]byte(crowdScript))
	if err != nil {
		log.Fatal(err)
	}
	overlay.SetScriptRunner(runner)

	ebiten.SetWindowTitle("Tether \u2014 Crowd")
	ebiten.SetWindowSize(screenW, screenH)
	if err := ebiten.RunGame(&Game{
		doc:      doc,
		overlay:  overlay,
		renderer: renderer,
		runner:   runner,
	}); err != nil {
		log.Fatal(err)
	}
}
