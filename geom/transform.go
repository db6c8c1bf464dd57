package geom

import "math"

// Transform is a 2D affine transform: p' = Scale*Rotate*p + Offset, applied
// in that order. Components (board) and pins carry one of these to place
// local padstack geometry into board (or component-local) space.
type Transform struct {
	Offset Point
	Angle  float64 // radians
	Scale  float64 // uniform scale factor, 1 for no scaling
}

// Identity returns the no-op transform.
func Identity() Transform { return Transform{Scale: 1} }

// Translate returns a pure-translation transform.
func Translate(offset Point) Transform { return Transform{Offset: offset, Scale: 1} }

// Rotate returns a pure-rotation transform (radians, about the origin).
func Rotate(angle float64) Transform { return Transform{Angle: angle, Scale: 1} }

// ScaleBy returns a pure uniform-scale transform.
func ScaleBy(k float64) Transform { return Transform{Scale: k} }

// Point applies t to p.
func (t Transform) Point(p Point) Point {
	s, c := math.Sin(t.Angle), math.Cos(t.Angle)
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	x := p.X*c - p.Y*s
	y := p.X*s + p.Y*c
	return Point{x*scale + t.Offset.X, y*scale + t.Offset.Y}
}

// Then composes t followed by other: Then(other).Point(p) == other.Point(t.Point(p)).
func (t Transform) Then(other Transform) Transform {
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	return Transform{
		Offset: other.Point(Point{}).Add(rotateScale(t.Offset, other.Angle, other.Scale)),
		Angle:  t.Angle + other.Angle,
		Scale:  scale * nz(other.Scale),
	}
}

func nz(f float64) float64 {
	if f == 0 {
		return 1
	}
	return f
}

func rotateScale(p Point, angle, scale float64) Point {
	s, c := math.Sin(angle), math.Cos(angle)
	sc := nz(scale)
	return Point{(p.X*c - p.Y*s) * sc, (p.X*s + p.Y*c) * sc}
}

// Shape applies t to any member of the closed primitive family, returning a
// new shape of the same Kind. Line/Segment/Capsule/Path/Triangle transform
// their constituent points; Polygon re-triangulates since vertex winding and
// triangle shape are affected by reflection (negative Scale).
func (t Transform) Shape(s Shape) Shape {
	switch v := s.(type) {
	case Circle:
		return Circle{Center: t.Point(v.Center), Radius: v.Radius * math.Abs(nz(t.Scale))}
	case Segment:
		return Segment{Start: t.Point(v.Start), End: t.Point(v.End)}
	case Capsule:
		seg := t.Shape(v.Seg).(Segment)
		return Capsule{Seg: seg, Radius: v.Radius * math.Abs(nz(t.Scale))}
	case Rectangle:
		corners := v.Corners()
		pts := make([]Point, len(corners))
		for i, c := range corners {
			pts[i] = t.Point(c)
		}
		return enclosing(pts...)
	case Triangle:
		return Triangle{A: t.Point(v.A), B: t.Point(v.B), C: t.Point(v.C)}
	case Polygon:
		pts := make([]Point, len(v.Verts))
		for i, p := range v.Verts {
			pts[i] = t.Point(p)
		}
		return NewPolygon(pts)
	case Path:
		pts := make([]Point, len(v.Verts))
		for i, p := range v.Verts {
			pts[i] = t.Point(p)
		}
		return Path{Verts: pts, Width: v.Width * math.Abs(nz(t.Scale))}
	case Line:
		return Line{Point: t.Point(v.Point), Dir: rotateScale(v.Dir, t.Angle, t.Scale)}
	default:
		return s
	}
}
