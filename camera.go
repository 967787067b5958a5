package isometric

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera describes a view into a tile map: a screen-space viewport rectangle
// and a scroll position measured in fractional tile coordinates. A World
// renders through its first enabled camera.
type Camera struct {
	// Enabled controls whether this camera is eligible as the main camera.
	Enabled bool

	// Viewport is the device-pixel rectangle this camera renders into.
	Viewport Rect

	// CurrentX and CurrentY are the scroll position in fractional tile
	// coordinates. The tile at (CurrentX, CurrentY) anchors the top-left
	// of the visible window.
	CurrentX float64
	CurrentY float64

	scrollTween *scrollAnim
}

// NewCamera creates an enabled camera with the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{Enabled: true, Viewport: viewport}
}

// ScrollTo animates the camera's scroll position to the given fractional
// tile coordinates over duration seconds.
func (c *Camera) ScrollTo(tileX, tileY float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.CurrentX), float32(tileX), duration, easeFn),
		tweenY: gween.New(float32(c.CurrentY), float32(tileY), duration, easeFn),
	}
}

// ScrollToTile animates the camera so the given tile anchors the top-left
// of the visible window.
func (c *Camera) ScrollToTile(p Point, duration float32, easeFn ease.TweenFunc) {
	c.ScrollTo(float64(p.X), float64(p.Y), duration, easeFn)
}

// Scrolling reports whether a scroll animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// update advances any active scroll tween. Called from World.Update.
func (c *Camera) update(dt float64) {
	if c.scrollTween == nil {
		return
	}
	t := c.scrollTween
	if !t.doneX {
		val, done := t.tweenX.Update(float32(dt))
		c.CurrentX = float64(val)
		t.doneX = done
	}
	if !t.doneY {
		val, done := t.tweenY.Update(float32(dt))
		c.CurrentY = float64(val)
		t.doneY = done
	}
	if t.doneX && t.doneY {
		c.scrollTween = nil
	}
}
