package isometric

import "github.com/hajimehoshi/ebiten/v2"

// PointerSource supplies the single current pointer position the world
// hit-tests against. It is polled once per drawn tile layer, not
// event-driven.
type PointerSource interface {
	PointerPosition() FPoint
}

// CursorSource reads the mouse cursor via Ebitengine. It is the default
// pointer source of a World.
type CursorSource struct{}

// PointerPosition returns the current cursor position in device pixels.
func (CursorSource) PointerPosition() FPoint {
	x, y := ebiten.CursorPosition()
	return FPoint{X: float64(x), Y: float64(y)}
}
