package isometric

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a renderable pixel resource. Alpha and color modulation are
// texture state: they persist across Copy calls and across frames until
// changed, so callers that modulate a shared texture must restore it.
type Texture interface {
	// Size returns the texture dimensions in pixels.
	Size() (width, height int)

	// SetAlphaMod sets the alpha modulation applied on every Copy of this
	// texture. 255 means fully opaque (no modulation).
	SetAlphaMod(alpha uint8)

	// AlphaMod returns the current alpha modulation.
	AlphaMod() uint8

	// SetColorMod sets the RGB modulation applied on every Copy of this
	// texture. The color's alpha component is ignored.
	SetColorMod(c Color)

	// ColorMod returns the current RGB modulation.
	ColorMod() Color

	// Dispose releases the texture's backing resources. The texture must
	// not be used afterwards.
	Dispose()
}

// Renderer is the 2D drawing backend the world and fonts render through.
// Implementations are not safe for concurrent use.
type Renderer interface {
	// SetClip restricts subsequent Copy calls to the given device-pixel
	// rectangle.
	SetClip(r Rect)

	// ClearClip removes the clip rectangle so future drawing is unaffected.
	ClearClip()

	// Copy draws the src sub-rectangle of tex into the dst rectangle,
	// scaling if their sizes differ and applying the texture's current
	// alpha and color modulation.
	Copy(tex Texture, src, dst Rect)

	// CreateTexture uploads an image as a new texture.
	CreateTexture(img image.Image) Texture
}

// --- Ebitengine implementation ---

// EbitenRenderer renders onto an ebiten.Image target. Create one per frame
// (or reuse one and call SetTarget) from your Draw callback.
type EbitenRenderer struct {
	screen *ebiten.Image
	target *ebiten.Image // screen, or a clip sub-image of it
}

// NewEbitenRenderer creates a renderer that draws onto the given image.
func NewEbitenRenderer(screen *ebiten.Image) *EbitenRenderer {
	return &EbitenRenderer{screen: screen, target: screen}
}

// SetTarget rebinds the renderer to a new target image and clears any clip.
func (r *EbitenRenderer) SetTarget(screen *ebiten.Image) {
	r.screen = screen
	r.target = screen
}

// SetClip restricts drawing to the given rectangle via a sub-image target.
func (r *EbitenRenderer) SetClip(rect Rect) {
	clip := image.Rect(
		int(rect.X), int(rect.Y),
		int(rect.X+rect.Width), int(rect.Y+rect.Height),
	)
	r.target = r.screen.SubImage(clip).(*ebiten.Image)
}

// ClearClip removes the clip rectangle.
func (r *EbitenRenderer) ClearClip() {
	r.target = r.screen
}

// Copy draws src from tex into dst with the texture's current modulation.
func (r *EbitenRenderer) Copy(tex Texture, src, dst Rect) {
	et, ok := tex.(*ebitenTexture)
	if !ok || et.img == nil || src.Empty() || dst.Empty() {
		return
	}

	srcBounds := image.Rect(
		int(src.X), int(src.Y),
		int(src.X+src.Width), int(src.Y+src.Height),
	)
	sub := et.img.SubImage(srcBounds).(*ebiten.Image)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(dst.Width/src.Width, dst.Height/src.Height)
	opts.GeoM.Translate(dst.X, dst.Y)

	// Premultiplied modulation: RGB scaled by both color and alpha mod.
	a := float32(et.alphaMod) / 255
	opts.ColorScale.Scale(
		float32(et.colorMod.R)/255*a,
		float32(et.colorMod.G)/255*a,
		float32(et.colorMod.B)/255*a,
		a,
	)

	r.target.DrawImage(sub, opts)
}

// CreateTexture uploads an image as an ebiten-backed texture.
func (r *EbitenRenderer) CreateTexture(img image.Image) Texture {
	return &ebitenTexture{
		img:      ebiten.NewImageFromImage(img),
		alphaMod: 255,
		colorMod: ColorWhite,
	}
}

// NewEbitenTexture wraps an existing ebiten.Image as a Texture, e.g. a
// tileset image loaded elsewhere. The image is shared, not copied.
func NewEbitenTexture(img *ebiten.Image) Texture {
	return &ebitenTexture{img: img, alphaMod: 255, colorMod: ColorWhite}
}

type ebitenTexture struct {
	img      *ebiten.Image
	alphaMod uint8
	colorMod Color
}

func (t *ebitenTexture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *ebitenTexture) SetAlphaMod(alpha uint8) { t.alphaMod = alpha }
func (t *ebitenTexture) AlphaMod() uint8         { return t.alphaMod }
func (t *ebitenTexture) SetColorMod(c Color)     { t.colorMod = c }
func (t *ebitenTexture) ColorMod() Color         { return t.colorMod }

func (t *ebitenTexture) Dispose() {
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}
