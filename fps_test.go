package isometric

import (
	"strings"
	"testing"
)

// recordingFont captures FPSFont draw calls.
type recordingFont struct {
	texts     []string
	positions []FPoint
}

func (f *recordingFont) Draw(_ Renderer, p FPoint, text string) {
	f.texts = append(f.texts, text)
	f.positions = append(f.positions, p)
}

func TestFPSDisplayDrawsPlaceholderFirst(t *testing.T) {
	font := &recordingFont{}
	d := NewFPSDisplay(font)
	d.Position = FPoint{X: 8, Y: 8}

	d.OnRender(&fakeRenderer{}, 0)

	if len(font.texts) != 1 || font.texts[0] != "FPS: --" {
		t.Errorf("first draw = %q, want the placeholder readout", font.texts)
	}
	if font.positions[0] != (FPoint{X: 8, Y: 8}) {
		t.Errorf("draw position = %v, want (8,8)", font.positions[0])
	}
}

func TestFPSDisplayRefreshInterval(t *testing.T) {
	font := &recordingFont{}
	d := NewFPSDisplay(font)

	r := &fakeRenderer{}
	d.OnRender(r, 0.3) // below the refresh threshold
	d.OnRender(r, 0.3) // crosses it, text refreshes

	if len(font.texts) != 2 {
		t.Fatalf("draw calls = %d, want 2", len(font.texts))
	}
	if font.texts[0] != "FPS: --" {
		t.Errorf("pre-refresh draw = %q, want the placeholder", font.texts[0])
	}
	if !strings.HasPrefix(font.texts[1], "FPS: ") || font.texts[1] == "FPS: --" {
		t.Errorf("post-refresh draw = %q, want a numeric readout", font.texts[1])
	}
}

func TestFPSDisplayNilFont(t *testing.T) {
	d := NewFPSDisplay(nil)
	d.OnRender(&fakeRenderer{}, 1) // must not panic
}
