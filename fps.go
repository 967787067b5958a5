package isometric

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// FPSFont abstracts the text drawing the FPS display needs, so tests can
// substitute a recorder for a real BitmapFont.
type FPSFont interface {
	Draw(r Renderer, p FPoint, text string)
}

// FPSDisplay is a GameObject that draws the current FPS with a BitmapFont.
// The readout refreshes about twice a second.
type FPSDisplay struct {
	// Position is the top-left corner of the readout in device pixels.
	Position FPoint

	font    FPSFont
	elapsed float64
	text    string
}

// NewFPSDisplay creates an FPS display drawing with the given font.
func NewFPSDisplay(font FPSFont) *FPSDisplay {
	return &FPSDisplay{font: font, text: "FPS: --"}
}

// SetupTransform implements GameObject. The display draws in screen space
// and needs neither camera nor map.
func (d *FPSDisplay) SetupTransform(*Camera, *TileMap) {}

// OnRender implements GameObject.
func (d *FPSDisplay) OnRender(r Renderer, dt float64) {
	d.elapsed += dt
	if d.elapsed >= 0.5 {
		d.elapsed = 0
		d.text = fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS())
	}
	if d.font != nil {
		d.font.Draw(r, d.Position, d.text)
	}
}
