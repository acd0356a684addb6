package chart

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"plotpick/internal/pick"
	"plotpick/pkg/colorutil"
	"plotpick/pkg/geometry"
)

// Render rasterizes the chart and, when a cursor is given, its selection
// overlays.
func Render(c *Chart, cur *Cursor) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for i := range out.Pix {
		out.Pix[i] = 0xff // white background
	}

	for _, s := range c.Shapes() {
		switch t := s.(type) {
		case *Heatmap:
			drawHeatmap(out, c, t)
		case *Polygon:
			drawPolygon(out, c, t)
		case *Scatter:
			drawScatter(out, c, t)
		case *Line:
			drawLineSeries(out, c, t)
		case *TextLabel:
			p := c.Apply(t.At)
			drawText(out, int(p.X), int(p.Y), t.Text, colorutil.Black)
		}
	}

	if cur != nil {
		drawSelection(out, c, cur)
	}
	return out
}

// drawHeatmap colors the grid cells over a heat ramp and scales the cell
// raster into the extent's screen rectangle.
func drawHeatmap(out *image.RGBA, c *Chart, h *Heatmap) {
	rows, cols := h.Grid().Dims()
	if rows == 0 || cols == 0 {
		return
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			v := h.Grid().At(r, col)
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	// Grid row 0 sits at the low-y edge, which is the bottom of the screen
	// rectangle, so cell-image rows run in reverse.
	cells := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			cells.SetRGBA(col, rows-1-r, colorutil.Heat((h.Grid().At(r, col)-lo)/span))
		}
	}

	ext := h.Extent()
	topLeft := c.Apply(geometry.Point2D{X: ext.X, Y: ext.Y + ext.Height})
	bottomRight := c.Apply(geometry.Point2D{X: ext.X + ext.Width, Y: ext.Y})
	dst := image.Rect(int(topLeft.X), int(topLeft.Y), int(bottomRight.X), int(bottomRight.Y))
	xdraw.NearestNeighbor.Scale(out, dst, cells, cells.Bounds(), xdraw.Over, nil)
}

func drawPolygon(out *image.RGBA, c *Chart, p *Polygon) {
	screen := make([]geometry.Point2D, len(p.Vertices()))
	for i, v := range p.Vertices() {
		screen[i] = c.Apply(v)
	}
	box := geometry.BoundingBox(screen)
	x1, y1 := int(box.X), int(box.Y)
	x2, y2 := int(box.X+box.Width)+1, int(box.Y+box.Height)+1
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if geometry.PointInPolygon(geometry.NewPoint2D(float64(x), float64(y)), screen) {
				setPx(out, x, y, p.Color)
			}
		}
	}
}

func drawScatter(out *image.RGBA, c *Chart, s *Scatter) {
	for _, off := range s.Offsets() {
		p := c.Apply(off)
		drawMarker(out, int(p.X), int(p.Y), 2, s.Color)
	}
}

func drawLineSeries(out *image.RGBA, c *Chart, l *Line) {
	if l.LineVisible() {
		pts := pick.ExpandSteps(l.Style, l.XYData())
		var prev geometry.Point2D
		for i, pt := range pts {
			cur := c.Apply(pt)
			if i > 0 {
				drawSegment(out, prev, cur, l.Color)
			}
			prev = cur
		}
	}
	if l.MarkerVisible() {
		for _, pt := range l.XYData() {
			p := c.Apply(pt)
			drawMarker(out, int(p.X), int(p.Y), 2, l.Color)
		}
	}
}

// drawSelection renders the active selection's overlay handles: the target
// crosshair extras and the annotation text box.
func drawSelection(out *image.RGBA, c *Chart, cur *Cursor) {
	ov := cur.ActiveOverlay()
	if ov == nil {
		return
	}
	for _, extra := range ov.Extras {
		if mark, ok := extra.(*highlightMark); ok {
			p := c.Apply(mark.At)
			drawCrosshair(out, int(p.X), int(p.Y), 6, colorutil.Magenta)
		}
	}
	if box, ok := ov.Annotation.(*annotationBox); ok {
		p := c.Apply(box.At)
		drawText(out, int(p.X)+10, int(p.Y)-10, box.Text, colorutil.Black)
	}
}

func setPx(out *image.RGBA, x, y int, col color.RGBA) {
	if image.Pt(x, y).In(out.Bounds()) {
		out.SetRGBA(x, y, col)
	}
}

// drawSegment draws a 1px line between two screen points.
func drawSegment(out *image.RGBA, a, b geometry.Point2D, col color.RGBA) {
	steps := int(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)))
	if steps == 0 {
		setPx(out, int(a.X), int(a.Y), col)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		setPx(out, int(a.X+(b.X-a.X)*t), int(a.Y+(b.Y-a.Y)*t), col)
	}
}

// drawMarker draws a filled square marker centered at (x, y).
func drawMarker(out *image.RGBA, x, y, half int, col color.RGBA) {
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			setPx(out, x+dx, y+dy, col)
		}
	}
}

// drawCrosshair draws target crosshairs centered at (x, y).
func drawCrosshair(out *image.RGBA, x, y, arm int, col color.RGBA) {
	for d := -arm; d <= arm; d++ {
		setPx(out, x+d, y, col)
		setPx(out, x, y+d, col)
	}
}
