package chart

import (
	"image/color"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"plotpick/internal/shape"
	"plotpick/pkg/colorutil"
	"plotpick/pkg/geometry"
)

const defaultPickRadius = 8 // pixels

// Line is a line/marker series.
type Line struct {
	name  string
	data  []geometry.Point2D
	chart *Chart

	Style  shape.DrawStyle
	Marker bool
	Stroke bool
	Radius float64
	Color  color.RGBA
}

// NewLine creates a line series with markers and stroke enabled.
func NewLine(c *Chart, name string, data []geometry.Point2D) *Line {
	return &Line{
		name:   name,
		data:   data,
		chart:  c,
		Marker: true,
		Stroke: true,
		Radius: defaultPickRadius,
		Color:  colorutil.Blue,
	}
}

func (l *Line) Kind() shape.Kind { return shape.KindLine }
func (l *Line) Label() string { return l.name }
func (l *Line) XYData() []geometry.Point2D { return l.data }
func (l *Line) MarkerVisible() bool { return l.Marker }
func (l *Line) LineVisible() bool { return l.Stroke }
func (l *Line) DrawStyle() shape.DrawStyle { return l.Style }
func (l *Line) PickRadius() float64 { return l.Radius }
func (l *Line) Transform() shape.Transformer { return l.chart }

// Scatter is a scattered-point collection with host-side containment.
type Scatter struct {
	name    string
	offsets []geometry.Point2D
	chart   *Chart

	Tolerance float64 // containment tolerance, pixels
	Paths     int     // marker path count; pickable only when 1
	Color     color.RGBA
}

// NewScatter creates a single-path scatter collection.
func NewScatter(c *Chart, name string, offsets []geometry.Point2D) *Scatter {
	return &Scatter{
		name:      name,
		offsets:   offsets,
		chart:     c,
		Tolerance: defaultPickRadius,
		Paths:     1,
		Color:     colorutil.Orange,
	}
}

func (s *Scatter) Kind() shape.Kind { return shape.KindScatter }
func (s *Scatter) Label() string { return s.name }
func (s *Scatter) Offsets() []geometry.Point2D { return s.offsets }
func (s *Scatter) PathCount() int { return s.Paths }
func (s *Scatter) Transform() shape.Transformer { return s.chart }

// Contains returns the indices of all offsets within the tolerance of the
// event position, in screen space.
func (s *Scatter) Contains(ev shape.PointerEvent) (bool, []int) {
	tol2 := s.Tolerance * s.Tolerance
	var idxs []int
	for i, off := range s.offsets {
		if ev.Pos.DistanceSq(s.chart.Apply(off)) <= tol2 {
			idxs = append(idxs, i)
		}
	}
	return len(idxs) > 0, idxs
}

// Polygon is a filled region.
type Polygon struct {
	name     string
	vertices []geometry.Point2D
	chart    *Chart

	Color color.RGBA
}

// NewPolygon creates a filled polygon from data-coordinate vertices.
func NewPolygon(c *Chart, name string, vertices []geometry.Point2D) *Polygon {
	return &Polygon{name: name, vertices: vertices, chart: c, Color: colorutil.Green}
}

func (p *Polygon) Kind() shape.Kind { return shape.KindFilled }
func (p *Polygon) Label() string { return p.name }
func (p *Polygon) Vertices() []geometry.Point2D { return p.vertices }

func (p *Polygon) Contains(ev shape.PointerEvent) bool {
	return geometry.PointInPolygon(ev.Data, p.vertices)
}

// Heatmap is a regularly sampled image grid drawn into a data-space extent.
// Grid row 0 corresponds to the low-y edge of the extent.
type Heatmap struct {
	name   string
	extent geometry.Rect
	grid   *mat.Dense

	Uniform bool
}

// NewHeatmap creates a heatmap from image-order rows (top row first). The
// rows are flipped into the grid so that row 0 lands at the low-y edge,
// since data y grows upward while image rows grow downward.
func NewHeatmap(name string, extent geometry.Rect, rows [][]float64) *Heatmap {
	nr := len(rows)
	nc := 0
	if nr > 0 {
		nc = len(rows[0])
	}
	grid := mat.NewDense(nr, nc, nil)
	for r, row := range rows {
		for c, v := range row {
			grid.Set(nr-1-r, c, v)
		}
	}
	return &Heatmap{name: name, extent: extent, grid: grid, Uniform: true}
}

func (h *Heatmap) Kind() shape.Kind { return shape.KindImage }
func (h *Heatmap) Label() string { return h.name }
func (h *Heatmap) Extent() geometry.Rect { return h.extent }
func (h *Heatmap) Grid() *mat.Dense { return h.grid }
func (h *Heatmap) UniformSampling() bool { return h.Uniform }

func (h *Heatmap) Contains(ev shape.PointerEvent) bool {
	return h.extent.Contains(ev.Data)
}

// CursorData returns the sample value under a data coordinate as display
// text.
func (h *Heatmap) CursorData(x, y float64) (string, bool) {
	rows, cols := h.grid.Dims()
	if rows == 0 || cols == 0 || !h.extent.Contains(geometry.Point2D{X: x, Y: y}) {
		return "", false
	}
	col := cellIndex(x, h.extent.X, h.extent.Width, cols)
	row := cellIndex(y, h.extent.Y, h.extent.Height, rows)
	return strconv.FormatFloat(h.grid.At(row, col), 'g', -1, 64), true
}

// cellIndex maps a coordinate into a cell index, clamped so the high edge
// of the extent still resolves to the last cell.
func cellIndex(v, low, span float64, n int) int {
	i := int((v - low) / span * float64(n))
	if i < 0 {
		i = 0
	} else if i >= n {
		i = n - 1
	}
	return i
}

// TextLabel is a text shape; never pickable.
type TextLabel struct {
	name string
	At   geometry.Point2D
	Text string
}

// NewTextLabel creates a text label at a data coordinate.
func NewTextLabel(name, text string, at geometry.Point2D) *TextLabel {
	return &TextLabel{name: name, At: at, Text: text}
}

func (t *TextLabel) Kind() shape.Kind { return shape.KindText }
func (t *TextLabel) Label() string { return t.name }
