package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceSymmetric(t *testing.T) {
	shapes := sampleShapes()
	for i := range shapes {
		for j := range shapes {
			a, b := shapes[i], shapes[j]
			assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-6, "i=%d j=%d", i, j)
		}
	}
}

func TestDistanceNonNegative(t *testing.T) {
	shapes := sampleShapes()
	for i := range shapes {
		for j := range shapes {
			assert.GreaterOrEqual(t, Distance(shapes[i], shapes[j]), 0.0)
		}
	}
}

func TestPointSegmentDistance(t *testing.T) {
	s := Segment{Start: Point{0, 0}, End: Point{4, 0}}
	assert.InDelta(t, 1.0, PointSegmentDistance(Point{2, 1}, s), 1e-9)
	assert.InDelta(t, 0.0, PointSegmentDistance(Point{2, 0}, s), 1e-9)
	assert.InDelta(t, 1.0, PointSegmentDistance(Point{-1, 0}, s), 1e-9)
	assert.InDelta(t, 2.0, PointSegmentDistance(Point{6, 0}, s), 1e-9)
}

func TestSegSegDistance(t *testing.T) {
	a := Segment{Start: Point{0, 0}, End: Point{1, 0}}
	b := Segment{Start: Point{0, 1}, End: Point{1, 1}}
	assert.InDelta(t, 1.0, SegSegDistance(a, b), 1e-9)

	crossing := Segment{Start: Point{0, -1}, End: Point{0, 1}}
	assert.InDelta(t, 0.0, SegSegDistance(a, crossing), 1e-9)
}

func TestPointRectDistance(t *testing.T) {
	r := Rectangle{Min: Point{0, 0}, Max: Point{2, 2}}
	assert.InDelta(t, 0.0, PointRectDistance(Point{1, 1}, r), 1e-9)
	assert.InDelta(t, 1.0, PointRectDistance(Point{3, 1}, r), 1e-9)
	assert.InDelta(t, math.Sqrt(2), PointRectDistance(Point{3, 3}, r), 1e-9)
}

func TestPointPolygonDistance(t *testing.T) {
	p := NewPolygon([]Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}})
	assert.InDelta(t, 0.0, PointPolygonDistance(Point{1, 1}, p), 1e-9)
	assert.InDelta(t, 1.0, PointPolygonDistance(Point{3, 1}, p), 1e-9)
}

func TestRectRectDistance(t *testing.T) {
	a := Rectangle{Min: Point{0, 0}, Max: Point{1, 1}}
	b := Rectangle{Min: Point{2, 0}, Max: Point{3, 1}}
	assert.InDelta(t, 1.0, RectRectDistance(a, b), 1e-9)

	overlapping := Rectangle{Min: Point{0.5, 0}, Max: Point{1.5, 1}}
	assert.InDelta(t, 0.0, RectRectDistance(a, overlapping), 1e-9)
}

func TestCircleRectDistance(t *testing.T) {
	r := Rectangle{Min: Point{0, 0}, Max: Point{2, 2}}
	c := Circle{Center: Point{4, 1}, Radius: 1}
	assert.InDelta(t, 1.0, CircleRectDistance(c, r), 1e-9)
}

func TestCirclePathDistance(t *testing.T) {
	p := Path{Verts: []Point{{0, 0}, {4, 0}}, Width: 0.4}
	c := Circle{Center: Point{2, 2}, Radius: 0.5}
	assert.InDelta(t, 1.3, CirclePathDistance(c, p), 1e-9)
}
