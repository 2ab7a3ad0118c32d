// Package tether keeps 2D skeletal-animation content visually registered with
// elements of a scrollable document.
//
// Tether owns a transparent canvas that covers the viewport plus an overflow
// margin on each edge, keeps that canvas sized and translated as the document
// scrolls and resizes, and places each registered skeleton against the current
// on-screen rectangle of its anchor elements every frame. Pointer input is
// resolved into per-anchor hit-testing and dragging.
//
// # Quick start
//
// Construct an [Overlay] against a [Document] implementation and a renderer,
// then register skeletons against anchor identifiers:
//
//	overlay, err := tether.NewOverlay(tether.Config{
//		Document: doc,
//		Renderer: renderer,
//		Assets:   assets,
//	})
//	if err != nil {
//		return err
//	}
//	handle, err := overlay.AddSkeleton(ctx, tether.SkeletonSource{
//		AtlasPath:    "hero.atlas",
//		SkeletonPath: "hero.skel",
//		Clip:         "walk",
//	}, []tether.AnchorOptions{
//		{Anchor: "hero-banner", Mode: tether.PlaceInside, Draggable: true},
//	})
//
// Drive the overlay from the host's frame loop:
//
//	func (g *Game) Update() error {
//		g.overlay.Update(1.0 / float64(ebiten.TPS()))
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.renderer.SetTarget(screen)
//		g.overlay.Draw()
//	}
//
// The skeletal-animation runtime itself stays behind the [Skeleton],
// [AnimationState], and [Clip] interfaces; tether poses, places, and draws but
// never parses an asset format. [EbitenRenderer] is a ready [Renderer] for
// [Ebitengine] hosts.
//
// [Ebitengine]: https://ebitengine.org
package tether
