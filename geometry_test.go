package tui

import "testing"

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		want     Rect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"disjoint", NewRect(0, 0, 5, 5), NewRect(10, 10, 5, 5), Rect{}},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 2, 3, 3), NewRect(2, 2, 3, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got != tt.want {
				t.Errorf("Intersect(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 0, 0) // empty
	b := NewRect(2, 2, 4, 4)
	if got := a.Union(b); got != b {
		t.Errorf("Union with empty = %v, want %v", got, b)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(1, 1, 5, 5)
	if !r.Contains(Point{X: 1, Y: 1}) {
		t.Error("expected top-left corner to be contained")
	}
	if r.Contains(Point{X: 6, Y: 1}) {
		t.Error("expected right edge to be exclusive")
	}
	if r.Contains(Point{X: 0, Y: 0}) {
		t.Error("expected point outside rect to not be contained")
	}
}

func TestNewRectClampsNegativeDims(t *testing.T) {
	r := NewRect(0, 0, -5, -3)
	if r.Width != 0 || r.Height != 0 {
		t.Errorf("expected negative dims clamped to 0, got %+v", r)
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	got := r.Inset(1, 2, 1, 2)
	want := NewRect(2, 1, 6, 8)
	if got != want {
		t.Errorf("Inset = %v, want %v", got, want)
	}
}
