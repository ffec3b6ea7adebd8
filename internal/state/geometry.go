package state

// Rect is an axis-aligned box in surface coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether the point lies in [X, X+Width] x [Y, Y+Height].
// Edges are inclusive. A box with a negative size contains nothing.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}
