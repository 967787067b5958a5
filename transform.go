package isometric

import "math"

// Transform converts between tile-grid coordinates and viewport pixels for
// one camera/map pairing. It is a pure projection: the only state is the
// bound camera and map, which must be re-bound every frame (World.Update
// does this) or projections go stale.
type Transform struct {
	camera *Camera
	m      *TileMap
}

// NewTransform creates a transform bound to the given camera and map.
// Either may be nil until SetCamera/SetMap are called.
func NewTransform(camera *Camera, m *TileMap) *Transform {
	return &Transform{camera: camera, m: m}
}

// SetCamera rebinds the camera used for projection.
func (t *Transform) SetCamera(camera *Camera) { t.camera = camera }

// SetMap rebinds the map whose tile dimensions drive the projection.
func (t *Transform) SetMap(m *TileMap) { t.m = m }

// Camera returns the currently bound camera, which may be nil.
func (t *Transform) Camera() *Camera { return t.camera }

// Map returns the currently bound map, which may be nil.
func (t *Transform) Map() *TileMap { return t.m }

// TileToViewport projects a tile coordinate to the screen-space pixel
// position of the tile's visual anchor (the top-left of its bounding box).
// The isometric projection staggers each column half a tile width right and
// half a tile height down, and each row the mirror of that, relative to the
// camera's current scroll position.
func (t *Transform) TileToViewport(p Point) FPoint {
	if t.camera == nil || t.m == nil {
		return FPoint{}
	}

	tw := float64(t.m.TileWidth())
	th := float64(t.m.TileHeight())
	dx := float64(p.X) - t.camera.CurrentX
	dy := float64(p.Y) - t.camera.CurrentY

	return FPoint{
		X: t.camera.Viewport.X + (dx-dy)*tw/2,
		Y: t.camera.Viewport.Y + (dx+dy)*th/2,
	}
}

// HitTest reports whether the pointer position falls inside the diamond
// footprint of a tile whose anchor projects to screenPos. The clickable
// region is the rhombus inscribed in the tile's bounding box, not the box
// itself.
func (t *Transform) HitTest(screenPos FPoint, pointer FPoint) bool {
	if t.m == nil {
		return false
	}

	halfW := float64(t.m.TileWidth()) / 2
	halfH := float64(t.m.TileHeight()) / 2
	if halfW <= 0 || halfH <= 0 {
		return false
	}

	// Diamond center is the middle of the tile's bounding box.
	cx := screenPos.X + halfW
	cy := screenPos.Y + halfH

	return math.Abs(pointer.X-cx)/halfW+math.Abs(pointer.Y-cy)/halfH <= 1
}
