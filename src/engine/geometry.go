package engine

// Rect is an axis-aligned rectangle. X, Y is the top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Expand grows the rectangle symmetrically by margin on all sides.
func Expand(r Rect, margin float64) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + margin*2,
		Height: r.Height + margin*2,
	}
}

// Intersects reports whether two rectangles overlap. Touching edges count
// as an overlap; the rectangles are disjoint only when separated on at
// least one axis.
func Intersects(a, b Rect) bool {
	return !(b.X > a.X+a.Width ||
		b.X+b.Width < a.X ||
		b.Y > a.Y+a.Height ||
		b.Y+b.Height < a.Y)
}

// ValidateMove reports whether candidate, expanded by margin, clears the
// margin-expanded rectangle of every other table.
func ValidateMove(candidate Rect, others []Rect, margin float64) bool {
	expanded := Expand(candidate, margin)
	for _, other := range others {
		if Intersects(expanded, Expand(other, margin)) {
			return false
		}
	}
	return true
}
