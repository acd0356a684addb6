package pick

import (
	"fmt"

	"plotpick/internal/shape"
	"plotpick/pkg/geometry"
)

// Index locates a position along a line series as a vertex index plus a
// fractional offset. For step draw styles the (X, Y) pair records how far
// the position sits along the flat and step legs of the visual segment
// bracketed by the data vertices Floor() and Ceil().
type Index struct {
	Seg int     // base data-vertex index
	X   float64 // fractional offset along the x (flat) leg, in [0, 1]
	Y   float64 // fractional offset along the y (step) leg, in [0, 1]
}

// Floor returns the data-vertex index at or below the position.
func (ix Index) Floor() int { return ix.Seg }

// Ceil returns the data-vertex index at or above the position. It equals
// Floor only when the position coincides exactly with the floor vertex.
func (ix Index) Ceil() int {
	if ix.X == 0 && ix.Y == 0 {
		return ix.Seg
	}
	return ix.Seg + 1
}

func (ix Index) String() string {
	return fmt.Sprintf("%d.(x=%g, y=%g)", ix.Seg, ix.X, ix.Y)
}

// encodeIndex maps a raw visual-segment index and the parametric position
// within that segment back to a data-vertex Index, per draw style. nPts is
// the point count of the style-expanded polyline the segment was found on.
func encodeIndex(style shape.DrawStyle, nPts, raw int, frac float64) Index {
	switch style {
	case shape.DrawStepsPre:
		return preStepIndex(nPts, raw, frac)
	case shape.DrawStepsMid:
		return midStepIndex(nPts, raw, frac)
	case shape.DrawStepsPost:
		return postStepIndex(nPts, raw, frac)
	default:
		// Direct style: one visual segment per vertex pair, the offset
		// passes through unchanged.
		return Index{Seg: raw, X: frac}
	}
}

// preStepIndex decodes a steps-pre segment: the vertical leg comes first
// (even raw index), then the horizontal leg at the stepped y (odd).
func preStepIndex(_, raw int, frac float64) Index {
	i, odd := raw/2, raw%2
	if odd == 0 {
		return Index{Seg: i, X: 0, Y: frac}
	}
	return Index{Seg: i, X: frac, Y: 1}
}

// postStepIndex mirrors preStepIndex for steps-post: the horizontal leg
// comes first at the old y (even), then the vertical leg (odd).
func postStepIndex(_, raw int, frac float64) Index {
	i, odd := raw/2, raw%2
	if odd == 0 {
		return Index{Seg: i, X: frac, Y: 0}
	}
	return Index{Seg: i, X: 1, Y: frac}
}

// midStepIndex decodes a steps-mid segment. The first and last horizontal
// segments are half length by construction, so their offset is rescaled to
// the uniform grid before the even/odd split.
func midStepIndex(nPts, raw int, frac float64) Index {
	if raw == 0 {
		frac = .5 + frac/2
	} else if raw == nPts-2 { // one less segment than points
		frac = frac / 2
	}
	quot, odd := raw/2, raw%2
	if odd == 0 {
		if frac < .5 {
			return Index{Seg: quot - 1, X: frac + .5, Y: 1}
		}
		return Index{Seg: quot, X: frac - .5, Y: 0}
	}
	return Index{Seg: quot, X: .5, Y: frac}
}

// ExpandSteps converts data vertices into the visual vertices the given
// draw style renders. Direct style returns the input unchanged.
func ExpandSteps(style shape.DrawStyle, pts []geometry.Point2D) []geometry.Point2D {
	if len(pts) < 2 {
		return pts
	}
	switch style {
	case shape.DrawStepsPre:
		out := make([]geometry.Point2D, 0, 2*len(pts)-1)
		out = append(out, pts[0])
		for k := 1; k < len(pts); k++ {
			out = append(out,
				geometry.Point2D{X: pts[k-1].X, Y: pts[k].Y},
				pts[k])
		}
		return out
	case shape.DrawStepsPost:
		out := make([]geometry.Point2D, 0, 2*len(pts)-1)
		out = append(out, pts[0])
		for k := 1; k < len(pts); k++ {
			out = append(out,
				geometry.Point2D{X: pts[k].X, Y: pts[k-1].Y},
				pts[k])
		}
		return out
	case shape.DrawStepsMid:
		out := make([]geometry.Point2D, 0, 2*len(pts))
		out = append(out, pts[0])
		for k := 1; k < len(pts); k++ {
			mid := (pts[k-1].X + pts[k].X) / 2
			out = append(out,
				geometry.Point2D{X: mid, Y: pts[k-1].Y},
				geometry.Point2D{X: mid, Y: pts[k].Y})
		}
		return append(out, pts[len(pts)-1])
	default:
		return pts
	}
}
