// Package shape defines the closed set of pickable shape kinds and the
// capability interfaces the picking engine consumes from the host rendering
// system. Shapes are owned by the host; the engine only reads them for the
// duration of a single dispatch call.
package shape

import (
	"gonum.org/v1/gonum/mat"

	"plotpick/pkg/geometry"
)

// Kind identifies a pickable shape variant. The set is fixed: the pick,
// annotate and move dispatchers each switch over it.
type Kind int

const (
	KindLine    Kind = iota // line/marker series
	KindScatter             // scattered-point collection
	KindFilled              // filled region (polygon, patch)
	KindImage               // sampled image grid
	KindText                // text label, never pickable
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindScatter:
		return "scatter"
	case KindFilled:
		return "filled"
	case KindImage:
		return "image"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// DrawStyle controls how a line series expands its data vertices into
// visual segments.
type DrawStyle int

const (
	DrawDirect    DrawStyle = iota // vertex to vertex
	DrawStepsPre                   // vertical leg before each vertex
	DrawStepsMid                   // step at the midpoint between vertices
	DrawStepsPost                  // vertical leg after each vertex
)

// Shape is the minimal view of a host-owned renderable object.
type Shape interface {
	Kind() Kind
	Label() string
}

// Transformer maps data coordinates to screen pixels and back. IsAffine
// distinguishes linear projections from curved ones; fractional-index
// computation is only reliable under an affine transform.
type Transformer interface {
	IsAffine() bool
	Apply(p geometry.Point2D) geometry.Point2D
	Invert(p geometry.Point2D) (geometry.Point2D, bool)
}

// CoordFormatter renders data coordinates as display text, one formatter
// per axes.
type CoordFormatter interface {
	FormatCoord(x, y float64) string
}

// PointerEvent is a pointer position in both coordinate systems. The host
// fills Data by inverting its axes transform before dispatch.
type PointerEvent struct {
	Pos  geometry.Point2D // screen pixels
	Data geometry.Point2D // data coordinates under the pointer
}

// Key names a directional key press for selection movement.
type Key string

const (
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyUp    Key = "up"
	KeyDown  Key = "down"
)

// LineSeries is a series of vertices rendered with markers, a line, or both.
type LineSeries interface {
	Shape
	XYData() []geometry.Point2D
	MarkerVisible() bool
	LineVisible() bool
	DrawStyle() DrawStyle
	PickRadius() float64 // acceptance tolerance, screen pixels
	Transform() Transformer
}

// PointCollection is a scattered-point collection whose containment test is
// owned by the host. Contains returns the candidate vertex indices within
// the host's own tolerance. PathCount reports how many distinct marker
// paths the collection draws; only single-path collections are pickable.
type PointCollection interface {
	Shape
	Offsets() []geometry.Point2D
	PathCount() int
	Contains(ev PointerEvent) (bool, []int)
	Transform() Transformer
}

// FilledRegion is an area shape whose containment is binary: inside counts
// as a perfect hit.
type FilledRegion interface {
	Shape
	Contains(ev PointerEvent) bool
}

// ImageGrid is a regularly sampled image drawn into a data-space extent.
// Grid holds the backing samples, row 0 at the low-y edge of the extent.
// UniformSampling reports whether cells are evenly spaced; selection
// movement is only defined for uniform grids. CursorData returns the
// host-formatted sample readout under a data coordinate.
type ImageGrid interface {
	Shape
	Contains(ev PointerEvent) bool
	Extent() geometry.Rect
	Grid() *mat.Dense
	UniformSampling() bool
	CursorData(x, y float64) (string, bool)
}
