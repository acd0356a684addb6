package pick

import (
	"plotpick/internal/shape"
	"plotpick/pkg/geometry"
)

// Move computes a new Selection one discrete step away from sel along the
// underlying data, following a directional key press. Kinds without a move
// rule return the input Selection unchanged.
func (p *Picker) Move(sel *Selection, key shape.Key) *Selection {
	if sel == nil {
		return nil
	}
	switch sel.Shape.Kind() {
	case shape.KindLine:
		if ls, ok := sel.Shape.(shape.LineSeries); ok {
			return p.moveLine(sel, ls, key)
		}
	case shape.KindImage:
		if img, ok := sel.Shape.(shape.ImageGrid); ok {
			return p.moveImage(sel, img, key)
		}
	}
	return sel
}

func (p *Picker) moveLine(sel *Selection, ls shape.LineSeries, key shape.Key) *Selection {
	ix := sel.Target.Index
	if ix == nil {
		// Picks without a fractional index (scatter path, curved
		// transform) cannot step along the data.
		return sel
	}
	var next int
	switch key {
	case shape.KeyLeft:
		next = ix.Ceil() - 1
	case shape.KeyRight:
		next = ix.Floor() + 1
	default:
		// Refresh: re-target the current vertex after external state
		// changes. Only meaningful for an integral index.
		if ix.X != 0 || ix.Y != 0 {
			return sel
		}
		next = ix.Seg
	}
	data := ls.XYData()
	if len(data) == 0 {
		return sel
	}
	next = floorMod(next, len(data)) // cyclic data
	t := Target{Point2D: data[next], Index: &Index{Seg: next}}
	return NewSelection(ls, t, 0) // exact vertex hit
}

func (p *Picker) moveImage(sel *Selection, img shape.ImageGrid, key shape.Key) *Selection {
	if !img.UniformSampling() {
		p.sink("move: irregularly sampled image %q is unsupported", img.Label())
		return sel
	}
	ext := img.Extent()
	rows, cols := img.Grid().Dims()
	if rows == 0 || cols == 0 || ext.Width == 0 || ext.Height == 0 {
		return sel
	}

	// Fractional cell indices of the current target. Columns follow data x;
	// rows follow data y, so "up" steps toward higher row indices even
	// though the source image had its rows top-down.
	ix := int((sel.Target.X - ext.X) / ext.Width * float64(cols))
	iy := int((sel.Target.Y - ext.Y) / ext.Height * float64(rows))
	switch key {
	case shape.KeyLeft:
		ix--
	case shape.KeyRight:
		ix++
	case shape.KeyUp:
		iy++
	case shape.KeyDown:
		iy--
	}
	ix = floorMod(ix, cols) // cyclic addressing
	iy = floorMod(iy, rows)

	t := Target{Point2D: geometry.Point2D{
		X: (float64(ix)+0.5)/float64(cols)*ext.Width + ext.X,
		Y: (float64(iy)+0.5)/float64(rows)*ext.Height + ext.Y,
	}}
	return NewSelection(img, t, sel.Dist)
}

// floorMod wraps i into [0, n), tolerating negative i.
func floorMod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}
