package pick

import (
	"strconv"

	"gonum.org/v1/gonum/mat"

	"plotpick/internal/shape"
	"plotpick/pkg/geometry"
)

// fakeTransform wraps an affine transform; with curved set it reports a
// non-affine projection while still computing with the same matrix, which
// is enough to exercise the index-dropping path.
type fakeTransform struct {
	tr     geometry.AffineTransform
	curved bool
}

func identityTransform() *fakeTransform {
	return &fakeTransform{tr: geometry.Identity()}
}

func (f *fakeTransform) IsAffine() bool { return !f.curved }

func (f *fakeTransform) Apply(p geometry.Point2D) geometry.Point2D {
	return f.tr.Apply(p)
}

func (f *fakeTransform) Invert(p geometry.Point2D) (geometry.Point2D, bool) {
	inv, ok := f.tr.Inverse()
	if !ok {
		return geometry.Point2D{}, false
	}
	return inv.Apply(p), true
}

type fakeLine struct {
	label  string
	data   []geometry.Point2D
	marker bool
	stroke bool
	style  shape.DrawStyle
	radius float64
	tr     shape.Transformer
}

func newFakeLine(label string, data []geometry.Point2D) *fakeLine {
	return &fakeLine{
		label:  label,
		data:   data,
		marker: true,
		stroke: true,
		radius: 10,
		tr:     identityTransform(),
	}
}

func (l *fakeLine) Kind() shape.Kind { return shape.KindLine }
func (l *fakeLine) Label() string { return l.label }
func (l *fakeLine) XYData() []geometry.Point2D { return l.data }
func (l *fakeLine) MarkerVisible() bool { return l.marker }
func (l *fakeLine) LineVisible() bool { return l.stroke }
func (l *fakeLine) DrawStyle() shape.DrawStyle { return l.style }
func (l *fakeLine) PickRadius() float64 { return l.radius }
func (l *fakeLine) Transform() shape.Transformer { return l.tr }

type fakeScatter struct {
	label   string
	offsets []geometry.Point2D
	paths   int
	tol     float64
	tr      shape.Transformer
}

func newFakeScatter(label string, offsets []geometry.Point2D) *fakeScatter {
	return &fakeScatter{
		label:   label,
		offsets: offsets,
		paths:   1,
		tol:     10,
		tr:      identityTransform(),
	}
}

func (s *fakeScatter) Kind() shape.Kind { return shape.KindScatter }
func (s *fakeScatter) Label() string { return s.label }
func (s *fakeScatter) Offsets() []geometry.Point2D { return s.offsets }
func (s *fakeScatter) PathCount() int { return s.paths }
func (s *fakeScatter) Transform() shape.Transformer { return s.tr }

func (s *fakeScatter) Contains(ev shape.PointerEvent) (bool, []int) {
	var idxs []int
	for i, off := range s.offsets {
		if ev.Pos.DistanceSq(s.tr.Apply(off)) <= s.tol*s.tol {
			idxs = append(idxs, i)
		}
	}
	return len(idxs) > 0, idxs
}

type fakeRegion struct {
	label  string
	bounds geometry.Rect
}

func (r *fakeRegion) Kind() shape.Kind { return shape.KindFilled }
func (r *fakeRegion) Label() string { return r.label }
func (r *fakeRegion) Contains(ev shape.PointerEvent) bool {
	return r.bounds.Contains(ev.Data)
}

type fakeImage struct {
	label   string
	extent  geometry.Rect
	grid    *mat.Dense
	uniform bool
}

func newFakeImage(label string, extent geometry.Rect, rows, cols int) *fakeImage {
	grid := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			grid.Set(r, c, float64(r*cols+c))
		}
	}
	return &fakeImage{label: label, extent: extent, grid: grid, uniform: true}
}

func (f *fakeImage) Kind() shape.Kind { return shape.KindImage }
func (f *fakeImage) Label() string { return f.label }
func (f *fakeImage) Extent() geometry.Rect { return f.extent }
func (f *fakeImage) Grid() *mat.Dense { return f.grid }
func (f *fakeImage) UniformSampling() bool { return f.uniform }

func (f *fakeImage) Contains(ev shape.PointerEvent) bool {
	return f.extent.Contains(ev.Data)
}

func (f *fakeImage) CursorData(x, y float64) (string, bool) {
	if !f.extent.Contains(geometry.Point2D{X: x, Y: y}) {
		return "", false
	}
	rows, cols := f.grid.Dims()
	c := int((x - f.extent.X) / f.extent.Width * float64(cols))
	r := int((y - f.extent.Y) / f.extent.Height * float64(rows))
	if c >= cols {
		c = cols - 1
	}
	if r >= rows {
		r = rows - 1
	}
	return strconv.FormatFloat(f.grid.At(r, c), 'g', -1, 64), true
}

type fakeText struct{ label string }

func (f *fakeText) Kind() shape.Kind { return shape.KindText }
func (f *fakeText) Label() string { return f.label }

// strangeShape has a kind outside the closed set.
type strangeShape struct{}

func (strangeShape) Kind() shape.Kind { return shape.Kind(99) }
func (strangeShape) Label() string { return "strange" }

func eventAt(x, y float64) shape.PointerEvent {
	// Identity transforms keep screen and data coordinates equal.
	p := geometry.Point2D{X: x, Y: y}
	return shape.PointerEvent{Pos: p, Data: p}
}
