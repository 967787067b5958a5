package isometric

import (
	"image"
	"image/draw"
	"sort"
)

// Maximum dimensions of one font atlas texture. A glyph that would meet or
// exceed an edge starts a new row or atlas; the boundary check is
// deliberately >= rather than > to keep a pixel of slack at the edges.
const (
	maxAtlasWidth  = 2048
	maxAtlasHeight = 2048
)

// GlyphRasterizer turns a single character into a pixel surface. It is the
// external text-rendering backend; the font builder only consumes its
// output. Returning nil means the glyph cannot be rendered and is skipped.
type GlyphRasterizer interface {
	RasterizeGlyph(r rune) *image.RGBA
}

// fontGlyph is one packed glyph: its temporary rasterized surface, its
// placement rectangle inside an atlas, and which atlas it landed in.
type fontGlyph struct {
	surface      *image.RGBA // nil once blitted, unless surfaces are retained
	x, y         int         // placement within the atlas
	width        int
	height       int
	textureIndex int
}

// fontAtlas is one packed atlas: its shrink-wrapped dimensions and the
// uploaded texture.
type fontAtlas struct {
	texture Texture
	width   int
	height  int
}

// BitmapFontConfig controls atlas building.
type BitmapFontConfig struct {
	// RetainSurfaces keeps each glyph's rasterized surface in memory after
	// it is blitted into its atlas. The default frees surfaces immediately
	// to bound peak memory.
	RetainSurfaces bool
}

// BitmapFont packs rasterized glyphs into one or more atlas textures using
// a greedy row packer, and can draw and measure text from them.
type BitmapFont struct {
	glyphs     map[rune]*fontGlyph
	atlases    []fontAtlas
	color      Color
	lineHeight int
}

// NewBitmapFontRange builds a font covering the inclusive rune range
// [first, last].
func NewBitmapFontRange(renderer Renderer, ras GlyphRasterizer, first, last rune) *BitmapFont {
	var glyphs []rune
	for r := first; r <= last; r++ {
		glyphs = append(glyphs, r)
	}
	return NewBitmapFont(renderer, ras, glyphs)
}

// NewBitmapFont builds a font from an explicit glyph list. Glyph surfaces
// are freed once blitted; see NewBitmapFontWithConfig to retain them.
// A nil rasterizer or empty glyph list produces a font with zero atlases.
func NewBitmapFont(renderer Renderer, ras GlyphRasterizer, glyphs []rune) *BitmapFont {
	return NewBitmapFontWithConfig(renderer, ras, glyphs, BitmapFontConfig{})
}

// NewBitmapFontWithConfig builds a font from an explicit glyph list with
// explicit configuration.
func NewBitmapFontWithConfig(renderer Renderer, ras GlyphRasterizer, glyphs []rune, cfg BitmapFontConfig) *BitmapFont {
	f := &BitmapFont{
		glyphs: make(map[rune]*fontGlyph),
		color:  ColorWhite,
	}
	f.generateGlyphSurfaces(ras, glyphs)
	f.generateGlyphRects()
	f.generateGlyphTextures(renderer, !cfg.RetainSurfaces)
	return f
}

// generateGlyphSurfaces rasterizes every requested glyph. Glyphs the
// rasterizer cannot render are skipped.
func (f *BitmapFont) generateGlyphSurfaces(ras GlyphRasterizer, glyphs []rune) {
	if ras == nil || len(glyphs) == 0 {
		return
	}

	for _, r := range glyphs {
		surface := ras.RasterizeGlyph(r)
		if surface == nil {
			continue
		}
		b := surface.Bounds()
		f.glyphs[r] = &fontGlyph{
			surface: surface,
			width:   b.Dx(),
			height:  b.Dy(),
		}
		if b.Dy() > f.lineHeight {
			f.lineHeight = b.Dy()
		}
	}
}

// generateGlyphRects assigns every glyph a placement rectangle and an atlas
// index using a row packer: glyphs fill a row left to right, a full row
// advances the cursor down by the row's tallest glyph, and a full atlas is
// finalized (dimensions shrink-wrapped) before the triggering glyph starts
// the next one at its origin.
//
// Glyphs are packed in ascending rune order so the layout is deterministic.
func (f *BitmapFont) generateGlyphRects() {
	if len(f.atlases) != 0 || len(f.glyphs) == 0 {
		return
	}

	runes := f.sortedRunes()

	var textureWidth, textureHeight int
	var textureIndex int
	var x, y, rowHeight int

	for _, r := range runes {
		g := f.glyphs[r]

		// The current row is as tall as its tallest glyph.
		if g.height > rowHeight {
			rowHeight = g.height
		}

		// Farthest x-extent reached: start a new row.
		if x+g.width >= maxAtlasWidth {
			x = 0
			y += rowHeight
			rowHeight = g.height
		}

		// Farthest y-extent reached: finalize this atlas and move on. The
		// triggering glyph is placed at the fresh atlas's origin.
		if y+g.height >= maxAtlasHeight {
			f.atlases = append(f.atlases, fontAtlas{
				width:  textureWidth,
				height: textureHeight,
			})
			textureIndex++
			textureWidth, textureHeight = 0, 0
			x, y = 0, 0
			rowHeight = g.height
		}

		g.x, g.y = x, y
		g.textureIndex = textureIndex

		x += g.width

		// Grow the atlas's running bounds to cover the new rectangle.
		if x > textureWidth {
			textureWidth = x
		}
		if y+rowHeight > textureHeight {
			textureHeight = y + rowHeight
		}
	}

	// The last atlas's dimensions are only known after the loop.
	if textureWidth > 0 && textureHeight > 0 {
		f.atlases = append(f.atlases, fontAtlas{
			width:  textureWidth,
			height: textureHeight,
		})
	}
}

// generateGlyphTextures blits every glyph surface into its assigned atlas
// surface and uploads each atlas as a texture through the renderer.
func (f *BitmapFont) generateGlyphTextures(renderer Renderer, freeSurfaces bool) {
	if len(f.atlases) == 0 {
		return
	}

	surfaces := make([]*image.RGBA, len(f.atlases))
	for i, a := range f.atlases {
		if a.width > 0 && a.height > 0 {
			surfaces[i] = image.NewRGBA(image.Rect(0, 0, a.width, a.height))
		}
	}

	for _, g := range f.glyphs {
		if g.textureIndex >= len(surfaces) {
			continue
		}
		dst := surfaces[g.textureIndex]
		if dst == nil || g.surface == nil {
			continue // skip this glyph/atlas pairing
		}
		dstRect := image.Rect(g.x, g.y, g.x+g.width, g.y+g.height)
		draw.Draw(dst, dstRect, g.surface, g.surface.Bounds().Min, draw.Src)
		if freeSurfaces {
			g.surface = nil
		}
	}

	if renderer == nil {
		return
	}
	for i, surface := range surfaces {
		if surface != nil {
			f.atlases[i].texture = renderer.CreateTexture(surface)
		}
	}
}

// sortedRunes returns the font's runes in ascending order.
func (f *BitmapFont) sortedRunes() []rune {
	runes := make([]rune, 0, len(f.glyphs))
	for r := range f.glyphs {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

// --- Accessors ---

// SetColor sets the modulation color used by Draw and returns the previous
// color.
func (f *BitmapFont) SetColor(c Color) Color {
	old := f.color
	f.color = c
	return old
}

// Color returns the current draw color.
func (f *BitmapFont) Color() Color { return f.color }

// LineHeight returns the height of the tallest packed glyph in pixels.
func (f *BitmapFont) LineHeight() int { return f.lineHeight }

// AtlasCount returns the number of packed atlas textures.
func (f *BitmapFont) AtlasCount() int { return len(f.atlases) }

// AtlasTexture returns the i-th atlas texture, or nil.
func (f *BitmapFont) AtlasTexture(i int) Texture {
	if i < 0 || i >= len(f.atlases) {
		return nil
	}
	return f.atlases[i].texture
}

// AtlasSize returns the shrink-wrapped dimensions of the i-th atlas.
func (f *BitmapFont) AtlasSize(i int) (width, height int) {
	if i < 0 || i >= len(f.atlases) {
		return 0, 0
	}
	return f.atlases[i].width, f.atlases[i].height
}

// Glyph returns the atlas index and source rectangle of a packed glyph.
// Higher-level text components use this to draw from the atlases directly.
func (f *BitmapFont) Glyph(r rune) (textureIndex int, src Rect, ok bool) {
	g, found := f.glyphs[r]
	if !found {
		return 0, Rect{}, false
	}
	return g.textureIndex, Rect{
		X:      float64(g.x),
		Y:      float64(g.y),
		Width:  float64(g.width),
		Height: float64(g.height),
	}, true
}

// --- Text drawing ---

// Draw renders text with the top-left of the first line at p, advancing
// left to right by glyph width with no kerning. Glyphs the font doesn't
// carry are skipped. The atlas textures' modulation state is restored
// before returning.
func (f *BitmapFont) Draw(r Renderer, p FPoint, text string) {
	if r == nil || len(f.atlases) == 0 {
		return
	}

	for _, a := range f.atlases {
		if a.texture != nil {
			a.texture.SetColorMod(f.color)
			a.texture.SetAlphaMod(f.color.A)
		}
	}

	x, y := p.X, p.Y
	for _, ch := range text {
		if ch == '\n' {
			x = p.X
			y += float64(f.lineHeight)
			continue
		}
		g, found := f.glyphs[ch]
		if !found {
			continue
		}
		tex := f.AtlasTexture(g.textureIndex)
		if tex == nil {
			continue
		}
		src := Rect{
			X:      float64(g.x),
			Y:      float64(g.y),
			Width:  float64(g.width),
			Height: float64(g.height),
		}
		dst := Rect{X: x, Y: y, Width: src.Width, Height: src.Height}
		r.Copy(tex, src, dst)
		x += src.Width
	}

	for _, a := range f.atlases {
		if a.texture != nil {
			a.texture.SetColorMod(ColorWhite)
			a.texture.SetAlphaMod(255)
		}
	}
}

// Measure returns the pixel dimensions text would occupy when drawn.
func (f *BitmapFont) Measure(text string) (width, height int) {
	var maxW, lineW int
	lines := 1
	for _, ch := range text {
		if ch == '\n' {
			if lineW > maxW {
				maxW = lineW
			}
			lineW = 0
			lines++
			continue
		}
		if g, found := f.glyphs[ch]; found {
			lineW += g.width
		}
	}
	if lineW > maxW {
		maxW = lineW
	}
	if len(f.glyphs) == 0 {
		return 0, 0
	}
	return maxW, lines * f.lineHeight
}

// Destroy releases the font's atlas textures and glyph table. The font
// must not be used afterwards.
func (f *BitmapFont) Destroy() {
	for i := range f.atlases {
		if f.atlases[i].texture != nil {
			f.atlases[i].texture.Dispose()
			f.atlases[i].texture = nil
		}
	}
	f.atlases = nil
	f.glyphs = map[rune]*fontGlyph{}
}
