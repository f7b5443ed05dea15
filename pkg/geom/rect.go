package geom

// Rect is an axis-aligned bounding rectangle identified by its center and
// full extents. Widgets use it both for shape geometry and for the union
// bounds of composite objects.
type Rect struct {
	Center Vec
	W, H   float64
}

// RectFrom returns the rectangle spanning the two corner points.
func RectFrom(min, max Vec) Rect {
	return Rect{
		Center: Vec{(min.X + max.X) / 2, (min.Y + max.Y) / 2},
		W:      max.X - min.X,
		H:      max.Y - min.Y,
	}
}

// Min returns the bottom-left corner.
func (r Rect) Min() Vec { return Vec{r.Center.X - r.W/2, r.Center.Y - r.H/2} }

// Max returns the top-right corner.
func (r Rect) Max() Vec { return Vec{r.Center.X + r.W/2, r.Center.Y + r.H/2} }

// Union returns the smallest rectangle covering both r and s.
// A rectangle with zero extents and zero center is treated as empty.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	rmin, rmax := r.Min(), r.Max()
	smin, smax := s.Min(), s.Max()
	return RectFrom(
		Vec{min(rmin.X, smin.X), min(rmin.Y, smin.Y)},
		Vec{max(rmax.X, smax.X), max(rmax.Y, smax.Y)},
	)
}

// Empty reports whether r is the zero rectangle.
func (r Rect) Empty() bool {
	return r.W == 0 && r.H == 0 && r.Center == Zero
}

// Edge returns the point on r's boundary in direction dir from the center.
// Only the component of dir along each axis matters; diagonal directions
// land on the corner.
func (r Rect) Edge(dir Vec) Vec {
	d := dir.Unit()
	return Vec{r.Center.X + d.X*r.W/2, r.Center.Y + d.Y*r.H/2}
}

// NextTo returns the center an object of extents (w, h) must take to sit
// adjacent to r in direction dir with gap buff between the boundaries.
// This mirrors how collections lay out consecutive cells.
func (r Rect) NextTo(w, h float64, dir Vec, buff float64) Vec {
	d := dir.Unit()
	return Vec{
		r.Center.X + d.X*(r.W/2+buff+w/2),
		r.Center.Y + d.Y*(r.H/2+buff+h/2),
	}
}
