package isometric

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

// WriteAtlasPNG reconstructs the i-th atlas from the font's glyph surfaces
// and writes it to path as a PNG. Intended for inspecting glyph packing; the
// font must have been built with RetainSurfaces, since the default build
// frees glyph surfaces after upload.
func (f *BitmapFont) WriteAtlasPNG(path string, i int) error {
	if i < 0 || i >= len(f.atlases) {
		return fmt.Errorf("isometric: atlas index %d out of range [0,%d)", i, len(f.atlases))
	}
	a := f.atlases[i]
	img := image.NewRGBA(image.Rect(0, 0, a.width, a.height))

	for r, g := range f.glyphs {
		if g.textureIndex != i {
			continue
		}
		if g.surface == nil {
			return fmt.Errorf("isometric: glyph %q surface was freed, build the font with RetainSurfaces", r)
		}
		dstRect := image.Rect(g.x, g.y, g.x+g.width, g.y+g.height)
		draw.Draw(img, dstRect, g.surface, g.surface.Bounds().Min, draw.Src)
	}

	return writePNG(path, img)
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}
