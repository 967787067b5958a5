package isometric

import (
	"math/rand"
	"time"
)

// Layer describes one z-ordered image slot of every tile. Layer index 0 is
// the bottom of the stack.
type Layer struct {
	name          string
	defaultImages []ImageID
}

// Name returns the layer's display name.
func (l *Layer) Name() string { return l.name }

// HasDefaultImages reports whether empty tiles on this layer receive a
// pseudorandom default image.
func (l *Layer) HasDefaultImages() bool { return len(l.defaultImages) > 0 }

// TileMap owns the tile grid, the ordered layer list, the image registry,
// and the optional selection overlay image. All image references are ids
// into the registry; tiles and callers share the registered TileImage
// values rather than copying them.
type TileMap struct {
	width      int // map width in tiles
	height     int // map height in tiles
	tileWidth  int // tile width in pixels
	tileHeight int // tile height in pixels

	tiles  []Tile // row-major, width * height
	layers []*Layer

	images map[ImageID]*TileImage
	nextID ImageID

	selectionImage ImageID

	rng *rand.Rand
}

// NewTileMap creates a map of width x height tiles, each tileWidth x
// tileHeight pixels. Default-image picks are seeded from the clock; call
// SetRandomSeed for reproducible maps.
func NewTileMap(width, height, tileWidth, tileHeight int) *TileMap {
	return &TileMap{
		width:      width,
		height:     height,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		tiles:      make([]Tile, width*height),
		images:     make(map[ImageID]*TileImage),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRandomSeed reseeds the generator used for default-image picks.
func (m *TileMap) SetRandomSeed(seed int64) {
	m.rng = rand.New(rand.NewSource(seed))
}

// Width returns the map width in tiles.
func (m *TileMap) Width() int { return m.width }

// Height returns the map height in tiles.
func (m *TileMap) Height() int { return m.height }

// TileWidth returns the tile width in pixels.
func (m *TileMap) TileWidth() int { return m.tileWidth }

// TileHeight returns the tile height in pixels.
func (m *TileMap) TileHeight() int { return m.tileHeight }

// Tile returns the tile at (x, y), or nil if the coordinate is outside the
// map.
func (m *TileMap) Tile(x, y int) *Tile {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return nil
	}
	return &m.tiles[y*m.width+x]
}

// --- Layers ---

// AddLayer appends a layer to the top of the stack and returns its index.
func (m *TileMap) AddLayer(name string) int {
	m.layers = append(m.layers, &Layer{name: name})
	return len(m.layers) - 1
}

// Layers returns the ordered layer list, bottom first.
func (m *TileMap) Layers() []*Layer { return m.layers }

// LayerHasDefaultImages reports whether the layer declares default imagery
// for empty tiles.
func (m *TileMap) LayerHasDefaultImages(layer int) bool {
	if layer < 0 || layer >= len(m.layers) {
		return false
	}
	return m.layers[layer].HasDefaultImages()
}

// SetLayerDefaultImages sets the pool of default images empty tiles on the
// layer draw from.
func (m *TileMap) SetLayerDefaultImages(layer int, ids ...ImageID) {
	if layer < 0 || layer >= len(m.layers) {
		return
	}
	m.layers[layer].defaultImages = ids
}

// RandomLayerDefaultImage picks a pseudorandom image from the layer's
// default pool, or NoImage if the layer has none.
func (m *TileMap) RandomLayerDefaultImage(layer int) ImageID {
	if !m.LayerHasDefaultImages(layer) {
		return NoImage
	}
	pool := m.layers[layer].defaultImages
	return pool[m.rng.Intn(len(pool))]
}

// --- Image registry ---

// AddImage registers a sub-region of a texture and returns its id. The
// texture is shared, not copied.
func (m *TileMap) AddImage(tex Texture, source Rect) ImageID {
	m.nextID++
	id := m.nextID
	m.images[id] = &TileImage{id: id, texture: tex, source: source}
	return id
}

// Image returns the registered image for id, or nil.
func (m *TileMap) Image(id ImageID) *TileImage {
	return m.images[id]
}

// --- Selection overlay ---

// SetSelectionImage sets the image drawn semi-transparently over the
// selected tile. Pass NoImage to disable the overlay.
func (m *TileMap) SetSelectionImage(id ImageID) {
	m.selectionImage = id
}

// HasSelectionImage reports whether a selection overlay is configured and
// registered.
func (m *TileMap) HasSelectionImage() bool {
	return m.selectionImage != NoImage && m.images[m.selectionImage] != nil
}

// SelectionImage returns the selection overlay image, or nil.
func (m *TileMap) SelectionImage() *TileImage {
	return m.images[m.selectionImage]
}
