package isometric

// ImageID identifies a tile image in a TileMap's registry.
// The zero value means "no image".
type ImageID uint32

// NoImage is the absent-image sentinel for a tile layer slot.
const NoImage ImageID = 0

// Tile is one mutable cell of the map grid. It stores, per layer, an
// optional image id. Tiles never own image pixels; ids index the map's
// central image registry so many tiles can share one image.
type Tile struct {
	images []ImageID // indexed by layer; NoImage = unset
}

// HasImage reports whether the tile has an image assigned on the layer.
func (t *Tile) HasImage(layer int) bool {
	return t != nil && layer >= 0 && layer < len(t.images) && t.images[layer] != NoImage
}

// ImageID returns the image assigned on the layer, or NoImage.
func (t *Tile) ImageID(layer int) ImageID {
	if t == nil || layer < 0 || layer >= len(t.images) {
		return NoImage
	}
	return t.images[layer]
}

// SetImageID assigns an image on the layer, growing the layer slots as
// needed. Setting NoImage clears the slot.
func (t *Tile) SetImageID(layer int, id ImageID) {
	if t == nil || layer < 0 {
		return
	}
	for len(t.images) <= layer {
		t.images = append(t.images, NoImage)
	}
	t.images[layer] = id
}

// EnsureImageID returns the image assigned on the layer, assigning the
// result of pick first if the slot is empty. The assignment is cached on
// the tile, so repeated calls return the same id: this is the explicit
// get-or-assign used for lazy default imagery during rendering.
func (t *Tile) EnsureImageID(layer int, pick func() ImageID) ImageID {
	if t == nil || layer < 0 {
		return NoImage
	}
	if id := t.ImageID(layer); id != NoImage {
		return id
	}
	id := pick()
	if id != NoImage {
		t.SetImageID(layer, id)
	}
	return id
}

// TileImage is a rectangular sub-region of a shared texture. It is
// read-only and shared across every tile referencing its id; the TileMap's
// registry owns it.
type TileImage struct {
	id      ImageID
	texture Texture
	source  Rect
}

// ID returns the registry id of this image.
func (img *TileImage) ID() ImageID { return img.id }

// Texture returns the shared texture this image is cut from.
func (img *TileImage) Texture() Texture { return img.texture }

// SourceRect returns the image's sub-rectangle within its texture.
func (img *TileImage) SourceRect() Rect { return img.source }

// DestRect returns the screen-space destination rectangle for drawing this
// image at a tile anchor. The image's bottom edge is aligned to the
// anchor's bottom using anchorHeight (the map's tile height), independent
// of the image's own height, so tall sprites rise above their footprint
// cell.
func (img *TileImage) DestRect(x, y, anchorHeight float64) Rect {
	return Rect{
		X:      x,
		Y:      y - (img.source.Height - anchorHeight),
		Width:  img.source.Width,
		Height: img.source.Height,
	}
}
