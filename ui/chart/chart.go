// Package chart provides a minimal in-memory chart host for the picking
// engine: a data model with an affine screen projection, concrete shape
// implementations, and a Fyne widget wiring pointer and key events to picks.
package chart

import (
	"fmt"

	"plotpick/internal/pick"
	"plotpick/internal/shape"
	"plotpick/pkg/geometry"
)

// Chart owns the data limits, the pixel viewport and the plotted shapes.
// It implements shape.Transformer (data to screen, y axis flipped) and
// shape.CoordFormatter for its shapes.
type Chart struct {
	Limits geometry.Rect // data-coordinate extent of the viewport
	Width  int           // viewport width, pixels
	Height int           // viewport height, pixels

	shapes []shape.Shape
}

// New creates a chart over the given data limits and pixel size.
func New(limits geometry.Rect, width, height int) *Chart {
	return &Chart{Limits: limits, Width: width, Height: height}
}

// Add appends a shape. Later shapes sit above earlier ones.
func (c *Chart) Add(s shape.Shape) {
	c.shapes = append(c.shapes, s)
}

// Shapes returns the plotted shapes in z-order.
func (c *Chart) Shapes() []shape.Shape { return c.shapes }

// affine builds the data-to-screen transform. Screen y grows downward, so
// the data y axis is flipped.
func (c *Chart) affine() geometry.AffineTransform {
	sx := float64(c.Width) / c.Limits.Width
	sy := float64(c.Height) / c.Limits.Height
	return geometry.AffineTransform{
		A: sx, TX: -c.Limits.X * sx,
		D: -sy, TY: (c.Limits.Y + c.Limits.Height) * sy,
	}
}

// IsAffine implements shape.Transformer.
func (c *Chart) IsAffine() bool { return true }

// Apply implements shape.Transformer.
func (c *Chart) Apply(p geometry.Point2D) geometry.Point2D {
	return c.affine().Apply(p)
}

// Invert implements shape.Transformer.
func (c *Chart) Invert(p geometry.Point2D) (geometry.Point2D, bool) {
	inv, ok := c.affine().Inverse()
	if !ok {
		return geometry.Point2D{}, false
	}
	return inv.Apply(p), true
}

// FormatCoord implements shape.CoordFormatter. The fields are space padded
// the way interactive plot status bars print them; the annotator collapses
// the padding to one field per line.
func (c *Chart) FormatCoord(x, y float64) string {
	return fmt.Sprintf("x=%-12.6g y=%-12.6g", x, y)
}

// EventAt builds the pointer event for a screen position, filling in the
// data coordinates under the pointer.
func (c *Chart) EventAt(pos geometry.Point2D) shape.PointerEvent {
	data, _ := c.Invert(pos)
	return shape.PointerEvent{Pos: pos, Data: data}
}

// PickAt dispatches a pick over every shape and returns the closest match,
// or nil when nothing is within tolerance. Ties go to the shape drawn later.
func (c *Chart) PickAt(p *pick.Picker, pos geometry.Point2D) *pick.Selection {
	ev := c.EventAt(pos)
	var best *pick.Selection
	for _, s := range c.shapes {
		sel := p.Compute(s, ev)
		if sel == nil {
			continue
		}
		if best == nil || sel.Dist <= best.Dist {
			best = sel
		}
	}
	return best
}
