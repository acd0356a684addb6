package pick

import (
	"sync/atomic"

	"plotpick/internal/shape"
	"plotpick/pkg/geometry"
)

var lastSelectionID atomic.Uint64

// Target is the snapped point of a pick, in data coordinates. Index is nil
// when the pick carries no fractional index (scatter picks, filled regions,
// or a polyline pick under a curved transform).
type Target struct {
	geometry.Point2D
	Index *Index
}

// Selection describes a successful pick: the shape, the snapped target and
// the screen-space distance from the pointer to it. Selections are frozen
// point-in-time values; every pick and every accepted move mints a new one.
// Equality is identity, never structural: use Same.
type Selection struct {
	id     uint64
	Shape  shape.Shape
	Target Target
	Dist   float64
}

// NewSelection mints a Selection with a fresh identity.
func NewSelection(s shape.Shape, t Target, dist float64) *Selection {
	return &Selection{
		id:     lastSelectionID.Add(1),
		Shape:  s,
		Target: t,
		Dist:   dist,
	}
}

// ID returns the selection's identity, unique within the process.
func (s *Selection) ID() uint64 { return s.id }

// Same reports whether other is the identical selection.
func (s *Selection) Same(other *Selection) bool {
	return s != nil && other != nil && s.id == other.id
}
