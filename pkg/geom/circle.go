package geom

import "math"

// CircleBoundary returns the point on the circle (center, radius) in the
// direction of dir from the center.
func CircleBoundary(center Vec, radius float64, dir Vec) Vec {
	return center.Add(dir.Unit().Scale(radius))
}

// LineEndpoints computes where a straight edge between two circles should
// start and end: each endpoint sits on the circle boundary along the line
// connecting the centers. Coincident centers degenerate to a unit
// horizontal segment centered on the first circle, so callers never
// receive a zero-length line.
func LineEndpoints(c1 Vec, r1 float64, c2 Vec, r2 float64) (start, end Vec) {
	dir := c2.Sub(c1).Unit()
	start = c1.Add(dir.Scale(r1))
	end = c2.Sub(dir.Scale(r2))
	if start.Eq(end, 1e-12) {
		return c1.Add(Left.Scale(0.5)), c1.Add(Right.Scale(0.5))
	}
	return start, end
}

// ArcEndpoints computes where a curved edge between two circles should start
// and end. The endpoints are rotated off the center-to-center line by
// nodeAngle on each circle, so two opposite arcs between the same pair of
// nodes bow away from each other.
func ArcEndpoints(c1 Vec, r1 float64, c2 Vec, r2 float64, nodeAngle float64) (start, end Vec) {
	edgeAngle := c2.Sub(c1).Angle()

	dirStart := Vec{math.Cos(edgeAngle - nodeAngle), math.Sin(edgeAngle - nodeAngle)}
	dirEnd := Vec{math.Cos(edgeAngle - (math.Pi - nodeAngle)), math.Sin(edgeAngle - (math.Pi - nodeAngle))}

	start = c1.Add(dirStart.Scale(r1))
	end = c2.Add(dirEnd.Scale(r2))
	return start, end
}

// ArcPeak returns the point of maximum deviation of a circular arc from the
// chord between start and end, where angle is the subtended arc angle.
// It is used to anchor weight labels next to curved edges.
func ArcPeak(start, end Vec, angle float64) Vec {
	if angle == 0 {
		return start.Lerp(end, 0.5)
	}
	chord := end.Sub(start)
	mid := start.Lerp(end, 0.5)
	// Sagitta of a circular segment: h = r(1 - cos(θ/2)), r = c / (2 sin(θ/2)).
	half := angle / 2
	r := chord.Len() / (2 * math.Sin(half))
	sagitta := r * (1 - math.Cos(half))
	return mid.Add(chord.Unit().Orthogonal().Scale(sagitta))
}
