package geom

import "math"

// Point is a pair of 64-bit floats. Equality is ε-based via Point.Equal, not
// struct comparison with ==.
type Point struct {
	X, Y float64
}

// Equal reports whether p and q are within Epsilon of each other on both axes.
func (p Point) Equal(q Point) bool {
	return EqualF(p.X, q.X) && EqualF(p.Y, q.Y)
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Dot returns the dot product of p and q treated as vectors from the origin.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the 2D cross product (scalar) of p and q treated as vectors.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Len returns the Euclidean length of p treated as a vector from the origin.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return p.Sub(q).Len() }

// IsFinite reports whether both coordinates of p are finite.
func (p Point) IsFinite() bool { return IsFinite(p.X) && IsFinite(p.Y) }

// Kind discriminates the closed family of primitive shapes. New shapes are
// never added outside this file: every predicate/distance dispatch table in
// this package is exhaustive over Kind and a new member requires touching
// every table by design (spec.md §9 "Shape polymorphism").
type Kind int

const (
	KindCircle Kind = iota
	KindSegment
	KindCapsule
	KindRectangle
	KindTriangle
	KindPolygon
	KindPath
	KindLine
)

// Shape is implemented by every member of the closed primitive family.
type Shape interface {
	Kind() Kind
	Bounds() Rectangle
}

// Circle is a disc with the given center and radius.
type Circle struct {
	Center Point
	Radius float64
}

func (Circle) Kind() Kind { return KindCircle }

func (c Circle) Bounds() Rectangle {
	r := Point{c.Radius, c.Radius}
	return Rectangle{Min: c.Center.Sub(r), Max: c.Center.Add(r)}
}

// Segment is a zero-width line segment between two endpoints.
type Segment struct {
	Start, End Point
}

func (Segment) Kind() Kind { return KindSegment }

func (s Segment) Bounds() Rectangle {
	return enclosing(s.Start, s.End)
}

// Line returns the infinite supporting Line of the segment.
func (s Segment) Line() Line {
	return Line{Point: s.Start, Dir: s.End.Sub(s.Start)}
}

// Len returns the Euclidean length of the segment.
func (s Segment) Len() float64 { return s.Start.Dist(s.End) }

// Capsule is a segment expanded by a radius: the Minkowski sum of a segment
// and a disc, i.e. a "stadium" shape. Used for traces and via clearance.
type Capsule struct {
	Seg    Segment
	Radius float64
}

func (Capsule) Kind() Kind { return KindCapsule }

func (c Capsule) Bounds() Rectangle {
	b := c.Seg.Bounds()
	r := Point{c.Radius, c.Radius}
	return Rectangle{Min: b.Min.Sub(r), Max: b.Max.Add(r)}
}

// Rectangle is an axis-aligned box given by its min and max corners.
// Invariant: Min.X <= Max.X && Min.Y <= Max.Y. Use NewRectangle to normalize
// arbitrary corner pairs.
type Rectangle struct {
	Min, Max Point
}

// NewRectangle normalizes two arbitrary corners into a Rectangle.
func NewRectangle(a, b Point) Rectangle {
	return Rectangle{
		Min: Point{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		Max: Point{math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
	}
}

func enclosing(pts ...Point) Rectangle {
	r := Rectangle{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

func (Rectangle) Kind() Kind { return KindRectangle }

func (r Rectangle) Bounds() Rectangle { return r }

// Width and Height report the rectangle's extent on each axis.
func (r Rectangle) Width() float64  { return r.Max.X - r.Min.X }
func (r Rectangle) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the rectangle's centroid.
func (r Rectangle) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Corners returns the four corners in counter-clockwise order starting at Min.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{
		r.Min,
		{r.Max.X, r.Min.Y},
		r.Max,
		{r.Min.X, r.Max.Y},
	}
}

// Inflate returns r expanded by d on every side (d may be negative).
func (r Rectangle) Inflate(d float64) Rectangle {
	pad := Point{d, d}
	return Rectangle{Min: r.Min.Sub(pad), Max: r.Max.Add(pad)}
}

// Triangle is three points forming a (possibly degenerate) triangle.
type Triangle struct {
	A, B, C Point
}

func (Triangle) Kind() Kind { return KindTriangle }

func (t Triangle) Bounds() Rectangle { return enclosing(t.A, t.B, t.C) }

// Pts returns the triangle's vertices as an array, convenient for iteration.
func (t Triangle) Pts() [3]Point { return [3]Point{t.A, t.B, t.C} }

// Polygon is a closed, simple polygon, pre-triangulated on construction so
// that polygon/rectangle predicates can be reduced to per-triangle tests.
type Polygon struct {
	Verts []Point
	tris  []Triangle
}

// NewPolygon constructs a Polygon from a vertex sequence (not repeating the
// first vertex at the end) and triangulates it via ear clipping.
func NewPolygon(verts []Point) Polygon {
	p := Polygon{Verts: append([]Point(nil), verts...)}
	p.tris = triangulate(p.Verts)
	return p
}

func (Polygon) Kind() Kind { return KindPolygon }

func (p Polygon) Bounds() Rectangle {
	if len(p.Verts) == 0 {
		return Rectangle{}
	}
	return enclosing(p.Verts...)
}

// Triangles returns the polygon's pre-computed ear-clipping triangulation.
func (p Polygon) Triangles() []Triangle { return p.tris }

// Edges calls fn for each (ordered) edge of the polygon boundary.
func (p Polygon) Edges(fn func(a, b Point)) {
	n := len(p.Verts)
	for i := 0; i < n; i++ {
		fn(p.Verts[i], p.Verts[(i+1)%n])
	}
}

// Path is an open polyline of given width, conceptually an expansion into a
// sequence of abutting capsules (one per consecutive vertex pair).
type Path struct {
	Verts []Point
	Width float64
}

func (Path) Kind() Kind { return KindPath }

func (p Path) Bounds() Rectangle {
	if len(p.Verts) == 0 {
		return Rectangle{}
	}
	b := enclosing(p.Verts...)
	return b.Inflate(p.Width / 2)
}

// Capsules decomposes the path into its abutting capsule segments.
func (p Path) Capsules() []Capsule {
	if len(p.Verts) < 2 {
		return nil
	}
	caps := make([]Capsule, 0, len(p.Verts)-1)
	for i := 0; i+1 < len(p.Verts); i++ {
		caps = append(caps, Capsule{Seg: Segment{Start: p.Verts[i], End: p.Verts[i+1]}, Radius: p.Width / 2})
	}
	return caps
}

// Length returns the total length of the path's polyline.
func (p Path) Length() float64 {
	var total float64
	for i := 0; i+1 < len(p.Verts); i++ {
		total += p.Verts[i].Dist(p.Verts[i+1])
	}
	return total
}

// Line is an infinite line through Point in direction Dir. It exists only as
// a supporting primitive for orientation/projection tests, never as a
// free-standing obstacle.
type Line struct {
	Point Point
	Dir   Point
}

func (Line) Kind() Kind { return KindLine }

func (l Line) Bounds() Rectangle {
	// An infinite line has no finite bounds; callers must never query it
	// through the spatial index. Return a degenerate rectangle at Point.
	return Rectangle{Min: l.Point, Max: l.Point}
}

// Project returns the orthogonal projection of p onto the line. For a
// degenerate (zero-length) direction, returns l.Point.
func (l Line) Project(p Point) Point {
	d := l.Dir
	lenSq := d.Dot(d)
	if EqualF(lenSq, 0) {
		return l.Point
	}
	t := p.Sub(l.Point).Dot(d) / lenSq
	return l.Point.Add(d.Scale(t))
}
