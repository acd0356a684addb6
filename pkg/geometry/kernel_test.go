package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestVertex(t *testing.T) {
	pts := []Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}}

	idx, dist, ok := NearestVertex(pts, Point2D{X: 9, Y: 1})
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.InDelta(t, math.Sqrt(2), dist, 1e-12)
}

func TestNearestVertexExactHit(t *testing.T) {
	pts := []Point2D{{X: 0, Y: 0}, {X: 10, Y: 5}}

	idx, dist, ok := NearestVertex(pts, Point2D{X: 10, Y: 5})
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Zero(t, dist)
}

func TestNearestVertexSkipsNonFinite(t *testing.T) {
	pts := []Point2D{
		{X: math.NaN(), Y: 0},
		{X: math.Inf(1), Y: 0},
		{X: 3, Y: 4},
	}

	idx, dist, ok := NearestVertex(pts, Point2D{X: 0, Y: 0})
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.InDelta(t, 5, dist, 1e-12)
}

func TestNearestVertexDegenerate(t *testing.T) {
	_, _, ok := NearestVertex(nil, Point2D{})
	assert.False(t, ok, "empty input must fail silently")

	_, _, ok = NearestVertex([]Point2D{{X: math.NaN(), Y: math.NaN()}}, Point2D{})
	assert.False(t, ok, "all-NaN input must fail silently")
}

func TestNearestOnPolylineMidpoint(t *testing.T) {
	pts := []Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}}

	seg, proj, frac, dist, ok := NearestOnPolyline(pts, Point2D{X: 5, Y: -3})
	require.True(t, ok)
	assert.Equal(t, 0, seg)
	assert.InDelta(t, 5, proj.X, 1e-12)
	assert.InDelta(t, 0, proj.Y, 1e-12)
	assert.InDelta(t, 0.5, frac, 1e-12)
	assert.InDelta(t, 3, dist, 1e-12)
}

func TestNearestOnPolylineClamped(t *testing.T) {
	pts := []Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	queries := []Point2D{
		{X: -5, Y: 0}, {X: 15, Y: -1}, {X: 4, Y: 3},
		{X: 11, Y: 20}, {X: -3, Y: -3}, {X: 10.5, Y: 5},
	}

	for _, q := range queries {
		seg, proj, frac, _, ok := NearestOnPolyline(pts, q)
		require.True(t, ok)
		assert.GreaterOrEqual(t, frac, 0.0)
		assert.LessOrEqual(t, frac, 1.0)

		// The projection never leaves the segment's bounding box.
		a, b := pts[seg], pts[seg+1]
		assert.GreaterOrEqual(t, proj.X, math.Min(a.X, b.X)-1e-12)
		assert.LessOrEqual(t, proj.X, math.Max(a.X, b.X)+1e-12)
		assert.GreaterOrEqual(t, proj.Y, math.Min(a.Y, b.Y)-1e-12)
		assert.LessOrEqual(t, proj.Y, math.Max(a.Y, b.Y)+1e-12)
	}
}

func TestNearestOnPolylineSkipsZeroLengthSegments(t *testing.T) {
	pts := []Point2D{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}}

	seg, _, _, dist, ok := NearestOnPolyline(pts, Point2D{X: 2, Y: 1})
	require.True(t, ok)
	assert.Equal(t, 1, seg)
	assert.InDelta(t, 1, dist, 1e-12)

	_, _, _, _, ok = NearestOnPolyline([]Point2D{{X: 1, Y: 1}, {X: 1, Y: 1}}, Point2D{})
	assert.False(t, ok, "polyline of coincident points has no usable segment")
}

func TestNearestOnPolylineTranslationStable(t *testing.T) {
	pts := []Point2D{{X: 0, Y: 0}, {X: 4, Y: 3}, {X: 9, Y: -2}, {X: 14, Y: 1}}
	q := Point2D{X: 6, Y: 2}
	shift := Point2D{X: 123.5, Y: -87.25}

	seg, _, frac, dist, ok := NearestOnPolyline(pts, q)
	require.True(t, ok)

	moved := make([]Point2D, len(pts))
	for i, p := range pts {
		moved[i] = p.Add(shift)
	}
	seg2, _, frac2, dist2, ok2 := NearestOnPolyline(moved, q.Add(shift))
	require.True(t, ok2)

	assert.Equal(t, seg, seg2)
	assert.InDelta(t, frac, frac2, 1e-9)
	assert.InDelta(t, dist, dist2, 1e-9)
}

func TestAffineTransformInverseRoundTrip(t *testing.T) {
	tr := Translation(5, -3).Compose(Scaling(2, -4))
	inv, ok := tr.Inverse()
	require.True(t, ok)

	p := Point2D{X: 1.25, Y: -7}
	back := inv.Apply(tr.Apply(p))
	assert.InDelta(t, p.X, back.X, 1e-12)
	assert.InDelta(t, p.Y, back.Y, 1e-12)
}

func TestAffineTransformSingular(t *testing.T) {
	_, ok := Scaling(0, 1).Inverse()
	assert.False(t, ok)
}
