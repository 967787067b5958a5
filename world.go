package isometric

import "math"

// selectionAlpha is the alpha modulation applied to the selection overlay
// draw. The overlay texture is shared, so the modulation is restored to
// full opacity immediately after the copy.
const selectionAlpha = 90

// World orchestrates per-frame update and render of a tile map: it selects
// the active camera, walks the visible tile window back to front, resolves
// per-tile per-layer imagery, hit-tests the pointer for selection, and
// composites game objects on top.
//
// Update must be called before Render each frame so the projection
// transform is bound to the current camera and map. Rendering with a stale
// transform logs a warning and proceeds.
type World struct {
	m         *TileMap
	transform *Transform
	cameras   []*Camera
	objects   []GameObject
	pointer   PointerSource

	selection    Point
	hasSelection bool

	updated bool
}

// NewWorld creates a world for the given map. mainCamera, if non-nil,
// becomes the first registered camera. The pointer source defaults to the
// Ebitengine cursor.
func NewWorld(m *TileMap, mainCamera *Camera) *World {
	w := &World{
		m:         m,
		transform: NewTransform(mainCamera, m),
		pointer:   CursorSource{},
	}
	if mainCamera != nil {
		w.cameras = append(w.cameras, mainCamera)
	}
	return w
}

// Map returns the world's tile map.
func (w *World) Map() *TileMap { return w.m }

// Transform returns the world's projection transform. It is re-bound on
// every Update.
func (w *World) Transform() *Transform { return w.transform }

// SetPointerSource replaces the pointer source used for hit-testing.
// A nil source is ignored.
func (w *World) SetPointerSource(ps PointerSource) {
	if ps != nil {
		w.pointer = ps
	}
}

// --- Cameras ---

// AddCamera registers a camera. Registration order decides main-camera
// priority. A nil camera is ignored.
func (w *World) AddCamera(cam *Camera) {
	if cam != nil {
		w.cameras = append(w.cameras, cam)
	}
}

// MainCamera returns the first enabled camera in registration order, or
// nil when no camera is enabled. The result is recomputed on every call,
// never cached.
func (w *World) MainCamera() *Camera {
	for _, cam := range w.cameras {
		if cam.Enabled {
			return cam
		}
	}
	return nil
}

// MaxHorizontalTiles returns how many whole tile columns fit in the main
// camera's viewport, or 0 without a camera.
func (w *World) MaxHorizontalTiles() int {
	cam := w.MainCamera()
	if cam == nil || w.m.TileWidth() == 0 {
		return 0
	}
	return int(cam.Viewport.Width) / w.m.TileWidth()
}

// MaxVerticalTiles returns how many half-tile rows fit in the main
// camera's viewport, or 0 without a camera.
func (w *World) MaxVerticalTiles() int {
	cam := w.MainCamera()
	if cam == nil || w.m.TileHeight() == 0 {
		return 0
	}
	return int(math.Round(cam.Viewport.Height / (float64(w.m.TileHeight()) / 2)))
}

// --- Selection ---

// SetSelection unconditionally overwrites the current tile selection.
// The coordinate is not validated against map bounds.
func (w *World) SetSelection(p Point) {
	w.selection = p
	w.hasSelection = true
}

// Selection returns the currently selected tile coordinate, if any.
func (w *World) Selection() (Point, bool) {
	return w.selection, w.hasSelection
}

// HasSelection reports whether a tile is selected.
func (w *World) HasSelection() bool { return w.hasSelection }

// ResetSelection clears the current selection.
func (w *World) ResetSelection() {
	w.selection = Point{}
	w.hasSelection = false
}

// --- Objects ---

// AddObject binds the object's transform to the current main camera and
// map, then appends it to the draw list. A nil object is ignored. Adding
// the same object twice draws it twice.
func (w *World) AddObject(obj GameObject) {
	if obj == nil {
		return
	}
	obj.SetupTransform(w.MainCamera(), w.m)
	w.objects = append(w.objects, obj)
}

// RemoveObject removes the first draw-list entry identical to obj. A nil
// or never-added object leaves the list unchanged.
func (w *World) RemoveObject(obj GameObject) {
	if obj == nil {
		return
	}
	for i, o := range w.objects {
		if o == obj {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			return
		}
	}
}

// Objects returns the draw list in draw order.
func (w *World) Objects() []GameObject { return w.objects }

// --- Frame lifecycle ---

// Update advances camera scroll animations and rebinds the projection
// transform to the current main camera and map. Call once per frame,
// before Render.
func (w *World) Update(dt float64) {
	for _, cam := range w.cameras {
		cam.update(dt)
	}

	w.transform.SetCamera(w.MainCamera())
	w.transform.SetMap(w.m)

	w.updated = true
}

// Render draws the visible tile window, the selection overlay, and every
// registered game object through r. Without an enabled camera it is a
// no-op. After Render returns, Update must be called again before the next
// Render.
func (w *World) Render(r Renderer, dt float64) {
	if !w.updated {
		warnf("Update wasn't called before the world was rendered; the transform may be stale")
	}

	cam := w.MainCamera()
	if cam == nil || r == nil {
		return
	}

	// Clip to the viewport so the diamond edges of the tile map become
	// straight lines at the screen border.
	r.SetClip(cam.Viewport)

	tw := float64(w.m.TileWidth())
	th := float64(w.m.TileHeight())

	// The visible window over-fetches one tile per axis so tiles whose
	// origin is off screen but whose bottom-aligned image overlaps the
	// viewport still draw.
	maxTilesHoriz := int(cam.CurrentX + (cam.Viewport.Width+tw)/(tw/2))
	maxTilesVert := int(cam.CurrentY + (cam.Viewport.Height+th)/(th/2))
	maxTilesHoriz = min(maxTilesHoriz, w.m.Width())
	maxTilesVert = min(maxTilesVert, w.m.Height())

	startX := max(int(cam.CurrentX), 0)
	startY := max(int(cam.CurrentY), 0)

	pointer := w.pointer.PointerPosition()
	layerCount := len(w.m.Layers())

	// Rows ascending, columns inner: painter's-algorithm order, so tiles
	// farther back draw first.
	for tileY := startY; tileY < maxTilesVert; tileY++ {
		for tileX := startX; tileX < maxTilesHoriz; tileX++ {
			tilePoint := Point{X: tileX, Y: tileY}
			tile := w.m.Tile(tileX, tileY)
			selected := false

			for layer := 0; layer < layerCount; layer++ {
				var img *TileImage
				switch {
				case tile.HasImage(layer):
					img = w.m.Image(tile.ImageID(layer))
				case w.m.LayerHasDefaultImages(layer):
					// Cache the pick on the tile so the same empty tile
					// shows the same default image on every frame.
					id := tile.EnsureImageID(layer, func() ImageID {
						return w.m.RandomLayerDefaultImage(layer)
					})
					img = w.m.Image(id)
				default:
					continue // layer definitely empty, no draw call
				}

				screenPos := w.transform.TileToViewport(tilePoint)

				if img != nil {
					r.Copy(
						img.Texture(),
						img.SourceRect(),
						img.DestRect(screenPos.X, screenPos.Y, th),
					)
				}

				// Every drawn layer shares the tile's anchor, so repeated
				// hits on one tile are idempotent.
				if w.transform.HitTest(screenPos, pointer) {
					w.SetSelection(tilePoint)
					selected = true
				}

				if layer == 0 && selected && w.m.HasSelectionImage() {
					overlay := w.m.SelectionImage()
					tex := overlay.Texture()

					tex.SetAlphaMod(selectionAlpha)
					r.Copy(
						tex,
						overlay.SourceRect(),
						overlay.DestRect(screenPos.X, screenPos.Y, th),
					)
					// The overlay texture is shared process-wide; restore
					// full opacity for other consumers.
					tex.SetAlphaMod(255)
				}
			}
		}
	}

	for _, obj := range w.objects {
		if obj != nil {
			obj.OnRender(r, dt)
		}
	}

	r.ClearClip()

	// Force an Update before the next Render.
	w.updated = false
}
