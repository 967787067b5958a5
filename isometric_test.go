package isometric

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 25, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 40, 60, true},
		{"on left edge", 10, 30, true},
		{"left of rect", 9.9, 30, false},
		{"above rect", 25, 19.9, false},
		{"right of rect", 40.1, 40, false},
		{"below rect", 25, 60.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 4, Height: 4}, true},
		{"touching right edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, true},
		{"touching bottom edge", Rect{X: 0, Y: 10, Width: 5, Height: 5}, true},
		{"disjoint right", Rect{X: 10.1, Y: 0, Width: 5, Height: 5}, false},
		{"disjoint below", Rect{X: 0, Y: 10.1, Width: 5, Height: 5}, false},
		{"disjoint diagonal", Rect{X: 20, Y: 20, Width: 5, Height: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(r); got != tt.want {
				t.Errorf("Intersects is not symmetric for %v", tt.other)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"positive area", Rect{Width: 1, Height: 1}, false},
		{"zero width", Rect{Width: 0, Height: 5}, true},
		{"zero height", Rect{Width: 5, Height: 0}, true},
		{"negative width", Rect{Width: -1, Height: 5}, true},
		{"zero value", Rect{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Empty(); got != tt.want {
				t.Errorf("%v.Empty() = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}
