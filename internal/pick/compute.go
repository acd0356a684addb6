// Package pick implements the hit-testing and selection engine: per-kind
// pick dispatch, fractional-index encoding for the four line draw styles,
// and keyboard-driven selection movement.
package pick

import (
	"math"

	"plotpick/internal/diag"
	"plotpick/internal/shape"
	"plotpick/pkg/geometry"
)

// Picker dispatches pick, and move operations over the closed set of shape
// kinds. It holds no state besides the diagnostics sink; every call is a
// pure transformation of its inputs.
type Picker struct {
	sink diag.Sink
}

// New creates a Picker reporting to sink. A nil sink discards diagnostics.
func New(sink diag.Sink) *Picker {
	if sink == nil {
		sink = diag.Discard
	}
	return &Picker{sink: sink}
}

// containsShape is the shared surface of area-filled shapes: containment is
// binary, inside counts as a perfect hit.
type containsShape interface {
	shape.Shape
	Contains(ev shape.PointerEvent) bool
}

// Compute finds whether s has been picked by ev. It returns the best-match
// Selection, or nil for no match. Failures never escape: unsupported or
// malformed shapes produce a diagnostic and nil, because the caller is the
// host's event loop.
func (p *Picker) Compute(s shape.Shape, ev shape.PointerEvent) *Selection {
	switch s.Kind() {
	case shape.KindText:
		// Text bounding boxes are unreliable for precise picking.
		return nil
	case shape.KindLine:
		if ls, ok := s.(shape.LineSeries); ok {
			return p.computeLine(ls, ev)
		}
	case shape.KindScatter:
		if pc, ok := s.(shape.PointCollection); ok {
			return p.computeScatter(pc, ev)
		}
	case shape.KindFilled:
		if fr, ok := s.(shape.FilledRegion); ok {
			return p.computeFilled(fr, ev)
		}
	case shape.KindImage:
		// Images share the filled-region containment path.
		if img, ok := s.(shape.ImageGrid); ok {
			return p.computeFilled(img, ev)
		}
	}
	p.sink("pick: support for %v shape %q is missing", s.Kind(), s.Label())
	return nil
}

func (p *Picker) computeLine(ls shape.LineSeries, ev shape.PointerEvent) *Selection {
	data := ls.XYData()
	tr := ls.Transform()
	var best *Selection

	// If markers are visible, find the closest vertex.
	if ls.MarkerVisible() && len(data) > 0 {
		if i, d, ok := geometry.NearestVertex(applyAll(tr, data), ev.Pos); ok {
			// The raw data coordinates are more precise than inverting
			// the screen projection back.
			t := Target{Point2D: data[i], Index: &Index{Seg: i}}
			best = closer(best, NewSelection(ls, t, d))
		}
	}

	// If the line is visible, find the closest projection onto the
	// style-expanded polyline.
	if ls.LineVisible() && len(data) > 1 {
		expanded := ExpandSteps(ls.DrawStyle(), data)
		screen := applyAll(tr, expanded)
		if seg, proj, frac, d, ok := geometry.NearestOnPolyline(screen, ev.Pos); ok {
			if dataPt, invOK := tr.Invert(proj); invOK {
				t := Target{Point2D: dataPt}
				if tr.IsAffine() {
					ix := encodeIndex(ls.DrawStyle(), len(expanded), seg, frac)
					t.Index = &ix
				} else {
					// Sub-segment indexing is unreliable under a curved
					// projection; keep the candidate, drop the index.
					p.sink("pick: curved transform on %q, omitting fractional index", ls.Label())
				}
				best = closer(best, NewSelection(ls, t, d))
			} else {
				p.sink("pick: transform of %q is not invertible", ls.Label())
			}
		}
	}

	if best == nil || best.Dist >= ls.PickRadius() {
		return nil
	}
	return best
}

func (p *Picker) computeScatter(pc shape.PointCollection, ev shape.PointerEvent) *Selection {
	hit, candidates := pc.Contains(ev)
	if !hit || len(candidates) == 0 {
		return nil
	}
	if n := pc.PathCount(); n != 1 {
		p.sink("pick: only single-path point collections are supported, %q has %d paths", pc.Label(), n)
		return nil
	}

	offsets := pc.Offsets()
	tr := pc.Transform()
	bestIdx := -1
	bestD2 := math.Inf(1)
	for _, idx := range candidates {
		if idx < 0 || idx >= len(offsets) {
			continue
		}
		d2 := ev.Pos.DistanceSq(tr.Apply(offsets[idx]))
		if math.IsNaN(d2) || d2 >= bestD2 {
			continue
		}
		bestD2 = d2
		bestIdx = idx
	}
	if bestIdx < 0 {
		return nil
	}
	t := Target{Point2D: offsets[bestIdx], Index: &Index{Seg: bestIdx}}
	return NewSelection(pc, t, math.Sqrt(bestD2))
}

func (p *Picker) computeFilled(s containsShape, ev shape.PointerEvent) *Selection {
	if !s.Contains(ev) {
		return nil
	}
	return NewSelection(s, Target{Point2D: ev.Data}, 0)
}

func applyAll(tr shape.Transformer, pts []geometry.Point2D) []geometry.Point2D {
	out := make([]geometry.Point2D, len(pts))
	for i, p := range pts {
		out[i] = tr.Apply(p)
	}
	return out
}

// closer keeps the candidate with the smaller distance.
func closer(a, b *Selection) *Selection {
	if a == nil || (b != nil && b.Dist < a.Dist) {
		return b
	}
	return a
}
