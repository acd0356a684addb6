package pick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotpick/internal/diag"
	"plotpick/internal/shape"
	"plotpick/pkg/geometry"
)

func lineSelection(ls shape.LineSeries, ix Index) *Selection {
	data := ls.XYData()
	return NewSelection(ls, Target{Point2D: data[ix.Seg], Index: &ix}, 2.5)
}

func TestMoveLineSteps(t *testing.T) {
	line := newFakeLine("wave", []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 1}, {X: 20, Y: 4}})
	p := New(nil)

	sel := lineSelection(line, Index{Seg: 1})
	right := p.Move(sel, shape.KeyRight)
	require.NotNil(t, right)
	assert.Equal(t, geometry.Point2D{X: 20, Y: 4}, right.Target.Point2D)
	assert.Equal(t, Index{Seg: 2}, *right.Target.Index)
	assert.Equal(t, 0.0, right.Dist, "a move lands exactly on a vertex")
	assert.False(t, right.Same(sel), "moves mint new selections")

	left := p.Move(sel, shape.KeyLeft)
	require.NotNil(t, left)
	assert.Equal(t, geometry.Point2D{X: 0, Y: 0}, left.Target.Point2D)
	assert.Equal(t, Index{Seg: 0}, *left.Target.Index)
}

func TestMoveLineWraps(t *testing.T) {
	line := newFakeLine("wave", []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 1}, {X: 20, Y: 4}})
	p := New(nil)

	fromLast := p.Move(lineSelection(line, Index{Seg: 2}), shape.KeyRight)
	assert.Equal(t, 0, fromLast.Target.Index.Seg, "stepping past the end wraps to the first vertex")

	fromFirst := p.Move(lineSelection(line, Index{Seg: 0}), shape.KeyLeft)
	assert.Equal(t, 2, fromFirst.Target.Index.Seg, "stepping before the start wraps to the last vertex")
}

func TestMoveLineFromFractionalIndex(t *testing.T) {
	line := newFakeLine("wave", []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 1}, {X: 20, Y: 4}})
	p := New(nil)

	// A mid-segment pick snaps to the bracketing vertices: floor to the
	// left, ceil to the right.
	sel := lineSelection(line, Index{Seg: 1, X: 0.4})
	left := p.Move(sel, shape.KeyLeft)
	assert.Equal(t, 1, left.Target.Index.Seg)
	right := p.Move(sel, shape.KeyRight)
	assert.Equal(t, 2, right.Target.Index.Seg)
}

func TestMoveLineWithoutIndex(t *testing.T) {
	line := newFakeLine("polar", []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 1}})
	p := New(nil)

	sel := NewSelection(line, Target{Point2D: geometry.Point2D{X: 5, Y: 0.5}}, 1)
	assert.Same(t, sel, p.Move(sel, shape.KeyRight), "index-free picks cannot step")
}

func TestMoveLineRefreshKey(t *testing.T) {
	line := newFakeLine("wave", []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 1}})
	p := New(nil)

	// A non-directional key re-targets an integral index in place.
	sel := lineSelection(line, Index{Seg: 1})
	refreshed := p.Move(sel, shape.Key("r"))
	assert.False(t, refreshed.Same(sel))
	assert.Equal(t, geometry.Point2D{X: 10, Y: 1}, refreshed.Target.Point2D)

	// But leaves a fractional index untouched.
	frac := lineSelection(line, Index{Seg: 0, X: 0.5})
	assert.Same(t, frac, p.Move(frac, shape.Key("r")))
}

func TestMoveImageSteps(t *testing.T) {
	// 2x4 grid over x in [0, 8), y in [0, 4): cells are 2 wide, 2 tall.
	img := newFakeImage("heat", geometry.NewRect(0, 0, 8, 4), 2, 4)
	p := New(nil)

	// Start at the center of cell (row 0, col 1).
	sel := NewSelection(img, Target{Point2D: geometry.Point2D{X: 3, Y: 1}}, 1.5)

	right := p.Move(sel, shape.KeyRight)
	assert.InDelta(t, 5.0, right.Target.X, 1e-12)
	assert.InDelta(t, 1.0, right.Target.Y, 1e-12)
	assert.Equal(t, 1.5, right.Dist, "moving across an image preserves the pick distance")

	back := p.Move(right, shape.KeyLeft)
	assert.InDelta(t, 3.0, back.Target.X, 1e-12)
	assert.InDelta(t, 1.0, back.Target.Y, 1e-12)

	up := p.Move(sel, shape.KeyUp)
	assert.InDelta(t, 3.0, up.Target.X, 1e-12)
	assert.InDelta(t, 3.0, up.Target.Y, 1e-12, "up steps toward higher y")

	down := p.Move(up, shape.KeyDown)
	assert.InDelta(t, 1.0, down.Target.Y, 1e-12)
}

func TestMoveImageWraps(t *testing.T) {
	img := newFakeImage("heat", geometry.NewRect(0, 0, 8, 4), 2, 4)
	p := New(nil)

	// Last column, top row.
	sel := NewSelection(img, Target{Point2D: geometry.Point2D{X: 7, Y: 3}}, 0)
	right := p.Move(sel, shape.KeyRight)
	assert.InDelta(t, 1.0, right.Target.X, 1e-12, "stepping off the right edge wraps to the first column")
	up := p.Move(sel, shape.KeyUp)
	assert.InDelta(t, 1.0, up.Target.Y, 1e-12, "stepping off the top wraps to the bottom row")
}

func TestMoveImageRecentersOffCellTargets(t *testing.T) {
	img := newFakeImage("heat", geometry.NewRect(0, 0, 8, 4), 2, 4)
	p := New(nil)

	// The initial pick can land anywhere inside a cell; the first move
	// snaps to cell centers.
	sel := NewSelection(img, Target{Point2D: geometry.Point2D{X: 2.3, Y: 0.1}}, 0)
	moved := p.Move(sel, shape.KeyRight)
	assert.InDelta(t, 5.0, moved.Target.X, 1e-12)
	assert.InDelta(t, 1.0, moved.Target.Y, 1e-12)
}

func TestMoveImageNonUniform(t *testing.T) {
	img := newFakeImage("warped", geometry.NewRect(0, 0, 8, 4), 2, 4)
	img.uniform = false
	var rec diag.Recorder
	p := New(rec.Sink())

	sel := NewSelection(img, Target{Point2D: geometry.Point2D{X: 3, Y: 1}}, 0)
	assert.Same(t, sel, p.Move(sel, shape.KeyRight))
	require.Len(t, rec.Messages, 1)
	assert.Contains(t, rec.Messages[0], "warped")
}

func TestMovePassesThroughOtherKinds(t *testing.T) {
	p := New(nil)

	scatter := NewSelection(newFakeScatter("dots", []geometry.Point2D{{X: 0, Y: 0}}),
		Target{Index: &Index{Seg: 0}}, 0)
	assert.Same(t, scatter, p.Move(scatter, shape.KeyRight))

	region := NewSelection(&fakeRegion{label: "band", bounds: geometry.NewRect(0, 0, 1, 1)},
		Target{}, 0)
	assert.Same(t, region, p.Move(region, shape.KeyLeft))

	assert.Nil(t, p.Move(nil, shape.KeyLeft))
}
