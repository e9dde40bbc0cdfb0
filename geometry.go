package tui

// Point is a single (x, y) coordinate.
type Point struct {
	X, Y int
}

// Size is a width/height pair.
type Size struct {
	Width, Height int
}

// Rect is an axis-aligned rectangle. The right and bottom edges are
// exclusive: Right() == X+Width, Bottom() == Y+Height.
type Rect struct {
	X, Y, Width, Height int
}

// NewRect builds a rect, clamping negative dimensions to zero.
func NewRect(x, y, width, height int) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rect has zero area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the point lies within the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersect returns the overlapping region of two rects. Non-overlapping
// rects yield the zero-area Rect{}.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Union returns the smallest rect enclosing both inputs. A zero-area
// input is ignored in favor of the non-empty one; if both are empty the
// result is the zero Rect{}.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() && other.Empty() {
		return Rect{}
	}
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := max(r.Right(), other.Right())
	y1 := max(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Inset shrinks the rect by the given amount on each side. Negative
// results clamp to zero width/height.
func (r Rect) Inset(top, right, bottom, left int) Rect {
	return NewRect(r.X+left, r.Y+top, r.Width-left-right, r.Height-top-bottom)
}
