package geom

// This file implements the separating-axis test (SAT) shared by every
// convex-polygon pair (rectangle/triangle combinations) per spec.md §4.A
// "Rectangle–triangle intersection: separating-axis test on the seven edge
// normals (3 triangle, 4 rectangle); non-separating on all axes ⇒
// intersection." The same machinery generalizes to triangle-triangle and
// rectangle-rectangle, so those pairs share this one implementation instead
// of bespoke code per combination.

// convexIntersect reports whether the convex polygons described by point
// rings a and b intersect, via SAT over the outward edge normals of both.
func convexIntersect(a, b []Point) bool {
	if separatingAxisExists(a, b) {
		return false
	}
	if separatingAxisExists(b, a) {
		return false
	}
	return true
}

// separatingAxisExists tests only the edge normals of ring, projecting both
// rings onto each; a gap on any axis proves separation.
func separatingAxisExists(ring, other []Point) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		p0 := ring[i]
		p1 := ring[(i+1)%n]
		axis := Point{-(p1.Y - p0.Y), p1.X - p0.X} // outward normal candidate
		if EqualF(axis.X, 0) && EqualF(axis.Y, 0) {
			continue
		}
		minA, maxA := projectRing(ring, axis)
		minB, maxB := projectRing(other, axis)
		if LessF(maxA, minB) || LessF(maxB, minA) {
			return true
		}
	}
	return false
}

func projectRing(ring []Point, axis Point) (min, max float64) {
	min, max = ring[0].Dot(axis), ring[0].Dot(axis)
	for _, p := range ring[1:] {
		d := p.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return
}

func rectPts(r Rectangle) []Point {
	c := r.Corners()
	return c[:]
}

func triPts(t Triangle) []Point {
	return []Point{t.A, t.B, t.C}
}

// RectIntersectsRect reports AABB overlap with Epsilon tolerance.
func RectIntersectsRect(a, b Rectangle) bool {
	return LessEqF(a.Min.X, b.Max.X) && LessEqF(b.Min.X, a.Max.X) &&
		LessEqF(a.Min.Y, b.Max.Y) && LessEqF(b.Min.Y, a.Max.Y)
}

// RectIntersectsTriangle implements spec.md's 7-axis SAT.
func RectIntersectsTriangle(r Rectangle, t Triangle) bool {
	return convexIntersect(rectPts(r), triPts(t))
}

// TriangleIntersectsTriangle applies the same SAT machinery to two triangles.
func TriangleIntersectsTriangle(a, b Triangle) bool {
	return convexIntersect(triPts(a), triPts(b))
}

// RectIntersectsPolygon reports intersection iff r intersects any triangle
// of the polygon's pre-computed triangulation (spec.md §4.A).
func RectIntersectsPolygon(r Rectangle, p Polygon) bool {
	for _, t := range p.Triangles() {
		if RectIntersectsTriangle(r, t) {
			return true
		}
	}
	return false
}

// TriangleIntersectsPolygon reduces to per-triangle SAT against p's
// triangulation.
func TriangleIntersectsPolygon(tr Triangle, p Polygon) bool {
	for _, t := range p.Triangles() {
		if TriangleIntersectsTriangle(tr, t) {
			return true
		}
	}
	return false
}

// PolygonIntersectsPolygon checks every triangle pair across both
// triangulations; O(|tris(a)|*|tris(b)|), acceptable for board geometry
// (polygons are typically board outlines or keepouts, not dense meshes).
func PolygonIntersectsPolygon(a, b Polygon) bool {
	for _, ta := range a.Triangles() {
		for _, tb := range b.Triangles() {
			if TriangleIntersectsTriangle(ta, tb) {
				return true
			}
		}
	}
	return false
}

// rectContainsPoint reports whether r contains p, boundary included within
// Epsilon (used by the containment reductions in contains.go).
func rectContainsPoint(r Rectangle, p Point) bool {
	return GreaterEqF(p.X, r.Min.X) && LessEqF(p.X, r.Max.X) &&
		GreaterEqF(p.Y, r.Min.Y) && LessEqF(p.Y, r.Max.Y)
}
