package isometric

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// OpenTypeRasterizer rasterizes glyphs from TTF/OTF data on the CPU. Every
// glyph surface is a white-on-transparent RGBA image one line tall, so the
// font's draw color modulation applies cleanly.
type OpenTypeRasterizer struct {
	face    font.Face
	ascent  fixed.Int26_6
	descent fixed.Int26_6
}

// NewOpenTypeRasterizer parses raw TTF/OTF data and prepares a face at the
// given pixel size.
func NewOpenTypeRasterizer(fontData []byte, size float64) (*OpenTypeRasterizer, error) {
	ft, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("isometric: failed to parse font data: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("isometric: failed to create font face: %w", err)
	}

	m := face.Metrics()
	return &OpenTypeRasterizer{
		face:    face,
		ascent:  m.Ascent,
		descent: m.Descent,
	}, nil
}

// RasterizeGlyph renders one glyph to a surface sized advance x line
// height, or nil if the face has no such glyph.
func (o *OpenTypeRasterizer) RasterizeGlyph(r rune) *image.RGBA {
	advance, ok := o.face.GlyphAdvance(r)
	if !ok {
		return nil
	}

	w := advance.Ceil()
	h := (o.ascent + o.descent).Ceil()
	if w <= 0 || h <= 0 {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: o.face,
		Dot:  fixed.Point26_6{X: 0, Y: o.ascent},
	}
	d.DrawString(string(r))
	return img
}

// Close releases the underlying face.
func (o *OpenTypeRasterizer) Close() error {
	return o.face.Close()
}
