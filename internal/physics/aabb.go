package physics

// Box is an axis-aligned bounding box.
type Box struct {
	X1, Y1 float64 // Top-left
	X2, Y2 float64 // Bottom-right
}

// BoxAround builds the box of a w×h rectangle centered on c.
func BoxAround(c Vector2d, w, h float64) Box {
	return Box{
		X1: c.X - w/2,
		Y1: c.Y - h/2,
		X2: c.X + w/2,
		Y2: c.Y + h/2,
	}
}

// Overlaps reports whether b and o intersect. Boxes that only touch at an
// edge count as overlapping.
func (b Box) Overlaps(o Box) bool {
	return !(b.X1 > o.X2 ||
		o.X1 > b.X2 ||
		b.Y1 > o.Y2 ||
		o.Y1 > b.Y2)
}
