package geometry

import "math"

// NearestVertex returns the index of the point closest to ev and its
// Euclidean distance. Points with non-finite coordinates are excluded from
// the search. Returns ok=false if the sequence is empty or no point yields
// a finite distance.
func NearestVertex(points []Point2D, ev Point2D) (idx int, dist float64, ok bool) {
	best := math.Inf(1)
	idx = -1
	for i, p := range points {
		d2 := ev.DistanceSq(p)
		if math.IsNaN(d2) || d2 >= best {
			continue
		}
		best = d2
		idx = i
	}
	if idx < 0 || math.IsInf(best, 1) {
		return 0, 0, false
	}
	return idx, math.Sqrt(best), true
}

// NearestOnPolyline projects ev onto every segment of the polyline and
// returns the segment index, projected point, parametric position within
// that segment (0 at the segment start, 1 at its end) and the Euclidean
// distance of the overall minimum. Projections are clamped to the segment
// extent, never extrapolated. Zero-length segments and segments with
// non-finite endpoints are skipped. Returns ok=false when fewer than two
// points are given or no segment is usable.
func NearestOnPolyline(points []Point2D, ev Point2D) (seg int, proj Point2D, frac, dist float64, ok bool) {
	best := math.Inf(1)
	seg = -1
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		u := b.Sub(a)
		length := math.Sqrt(u.X*u.X + u.Y*u.Y)
		if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
			// Degenerate segment: the unit vector is undefined.
			continue
		}
		// Clamped dot product of the event offset with the unit vector.
		dot := (ev.X-a.X)*u.X/length + (ev.Y-a.Y)*u.Y/length
		if dot < 0 {
			dot = 0
		} else if dot > length {
			dot = length
		}
		p := Point2D{X: a.X + dot*u.X/length, Y: a.Y + dot*u.Y/length}
		d2 := ev.DistanceSq(p)
		if math.IsNaN(d2) || d2 >= best {
			continue
		}
		best = d2
		seg = i
		proj = p
		frac = dot / length
	}
	if seg < 0 || math.IsInf(best, 1) {
		return 0, Point2D{}, 0, 0, false
	}
	return seg, proj, frac, math.Sqrt(best), true
}
