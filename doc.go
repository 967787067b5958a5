// Package isometric renders tile-based isometric worlds on [Ebitengine].
//
// The package maps a sparse grid of layered tiles onto a scrolling camera
// viewport, resolves mouse-to-tile hit-testing for selection, and composites
// game objects on top. It also ships a glyph atlas builder that packs
// rasterized glyphs into renderable bitmap font textures.
//
// # Quick start
//
// Build a [TileMap], give it a [Camera], and wrap both in a [World]:
//
//	m := isometric.NewTileMap(64, 64, 32, 16)
//	m.AddLayer("ground")
//	cam := isometric.NewCamera(isometric.Rect{Width: 640, Height: 480})
//	world := isometric.NewWorld(m, cam)
//
// Then drive the world from your [ebiten.Game]:
//
//	func (g *Game) Update() error {
//		g.world.Update(1.0 / float64(ebiten.TPS()))
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.world.Render(isometric.NewEbitenRenderer(screen), g.dt)
//	}
//
// Update must be called before Render each frame; rendering with a stale
// transform logs a warning to stderr and proceeds.
//
// # Rendering backend
//
// All drawing goes through the [Renderer] interface: clip rectangle
// set/clear, textured rect copies, and per-texture alpha/color modulation.
// [NewEbitenRenderer] is the production implementation. Tests supply their
// own recording renderer.
//
// # Bitmap fonts
//
// [NewBitmapFont] and [NewBitmapFontRange] pack glyph surfaces from a
// [GlyphRasterizer] into one or more atlas textures using a row packer.
// [NewOpenTypeRasterizer] provides a CPU rasterizer for TTF/OTF data.
//
// [Ebitengine]: https://ebitengine.org
package isometric
