package vg

// Rect is an axis-aligned rectangle described by its top-left position and
// its size. Frames use it for viewports; Path.Bounds returns one.
type Rect struct {
	Position Point
	Size     Point
}

// NewRect creates a rectangle from a position and a size.
func NewRect(position, size Point) Rect {
	return Rect{Position: position, Size: size}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Position.X && p.X <= r.Position.X+r.Size.X &&
		p.Y >= r.Position.Y && p.Y <= r.Position.Y+r.Size.Y
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}
