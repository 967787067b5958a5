package isometric

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestNewCameraDefaults(t *testing.T) {
	vp := Rect{X: 10, Y: 20, Width: 640, Height: 360}
	c := NewCamera(vp)

	if !c.Enabled {
		t.Error("new camera should be enabled")
	}
	if c.Viewport != vp {
		t.Errorf("viewport = %v, want %v", c.Viewport, vp)
	}
	if c.CurrentX != 0 || c.CurrentY != 0 {
		t.Errorf("scroll = (%v,%v), want (0,0)", c.CurrentX, c.CurrentY)
	}
	if c.Scrolling() {
		t.Error("new camera should not be scrolling")
	}
}

func TestCameraScrollToLinear(t *testing.T) {
	c := NewCamera(Rect{Width: 640, Height: 360})
	c.ScrollTo(4, 2, 1, ease.Linear)

	if !c.Scrolling() {
		t.Fatal("camera should be scrolling after ScrollTo")
	}

	c.update(0.5)
	if !approxEqual(c.CurrentX, 2, epsilon) || !approxEqual(c.CurrentY, 1, epsilon) {
		t.Errorf("halfway scroll = (%v,%v), want (2,1)", c.CurrentX, c.CurrentY)
	}
	if !c.Scrolling() {
		t.Error("camera should still be scrolling at the halfway mark")
	}

	c.update(0.5)
	if c.CurrentX != 4 || c.CurrentY != 2 {
		t.Errorf("final scroll = (%v,%v), want (4,2)", c.CurrentX, c.CurrentY)
	}
	if c.Scrolling() {
		t.Error("camera should stop scrolling once both axes finish")
	}
}

func TestCameraScrollClampsAtTarget(t *testing.T) {
	c := NewCamera(Rect{Width: 640, Height: 360})
	c.ScrollTo(3, 7, 0.25, ease.Linear)

	c.update(10) // far past the duration
	if c.CurrentX != 3 || c.CurrentY != 7 {
		t.Errorf("scroll = (%v,%v), want clamped target (3,7)", c.CurrentX, c.CurrentY)
	}
	if c.Scrolling() {
		t.Error("camera should not be scrolling after overshooting the duration")
	}
}

func TestCameraScrollToTile(t *testing.T) {
	c := NewCamera(Rect{Width: 640, Height: 360})
	c.CurrentX, c.CurrentY = 1, 1
	c.ScrollToTile(Point{X: 5, Y: 9}, 1, ease.Linear)

	c.update(1)
	if c.CurrentX != 5 || c.CurrentY != 9 {
		t.Errorf("scroll = (%v,%v), want tile (5,9)", c.CurrentX, c.CurrentY)
	}
}

func TestCameraRetargetMidScroll(t *testing.T) {
	c := NewCamera(Rect{Width: 640, Height: 360})
	c.ScrollTo(10, 0, 1, ease.Linear)
	c.update(0.5)

	// A new ScrollTo replaces the running animation, starting from the
	// current position.
	c.ScrollTo(0, 0, 1, ease.Linear)
	c.update(0.5)
	if !approxEqual(c.CurrentX, 2.5, 1e-6) {
		t.Errorf("retargeted halfway scroll X = %v, want 2.5", c.CurrentX)
	}

	c.update(0.5)
	if c.CurrentX != 0 || c.Scrolling() {
		t.Errorf("retargeted scroll did not settle at origin: X=%v scrolling=%v",
			c.CurrentX, c.Scrolling())
	}
}

func TestCameraUpdateWithoutTween(t *testing.T) {
	c := NewCamera(Rect{Width: 640, Height: 360})
	c.CurrentX, c.CurrentY = 2, 3

	c.update(1)
	if c.CurrentX != 2 || c.CurrentY != 3 {
		t.Errorf("idle update moved the camera to (%v,%v)", c.CurrentX, c.CurrentY)
	}
}

func TestWorldUpdateAdvancesCameraScroll(t *testing.T) {
	w, _, _ := newTestWorld()
	cam := w.MainCamera()
	cam.ScrollTo(2, 2, 1, ease.Linear)

	w.Update(0.5)
	if !approxEqual(cam.CurrentX, 1, epsilon) || !approxEqual(cam.CurrentY, 1, epsilon) {
		t.Errorf("scroll after half the duration = (%v,%v), want (1,1)",
			cam.CurrentX, cam.CurrentY)
	}

	w.Update(0.5)
	if cam.Scrolling() {
		t.Error("scroll animation should finish after the full duration")
	}
}
