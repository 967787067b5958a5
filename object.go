package isometric

// GameObject is anything the world composites on top of the tile grid.
// Objects are drawn in registration order after every tile, once per frame.
type GameObject interface {
	// SetupTransform is called when the object joins a world, with the
	// world's current main camera (possibly nil) and map, so the object
	// can project its own coordinates.
	SetupTransform(camera *Camera, m *TileMap)

	// OnRender draws the object. The viewport clip is still active.
	OnRender(r Renderer, dt float64)
}
