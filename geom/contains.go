package geom

// Contains implements spec.md §4.A's contains(A, B) predicate, required only
// for the rectangle⊇shape and polygon⊇shape combinations the router
// actually uses. Every other (A, B) pair is defined to return false: the
// router never asks whether, say, a Triangle contains a Path.
func Contains(a, b Shape) bool {
	switch av := a.(type) {
	case Rectangle:
		return rectangleContains(av, b)
	case Polygon:
		return polygonContains(av, b)
	default:
		return false
	}
}

func rectangleContains(r Rectangle, b Shape) bool {
	switch bv := b.(type) {
	case Circle:
		return rectContainsPoint(r.Inflate(-bv.Radius), bv.Center)
	case Segment:
		return rectContainsPoint(r, bv.Start) && rectContainsPoint(r, bv.End)
	case Capsule:
		inner := r.Inflate(-bv.Radius)
		return rectContainsPoint(inner, bv.Seg.Start) && rectContainsPoint(inner, bv.Seg.End)
	case Rectangle:
		return rectContainsPoint(r, bv.Min) && rectContainsPoint(r, bv.Max)
	case Triangle:
		for _, p := range triPts(bv) {
			if !rectContainsPoint(r, p) {
				return false
			}
		}
		return true
	case Polygon:
		for _, p := range bv.Verts {
			if !rectContainsPoint(r, p) {
				return false
			}
		}
		return true
	case Path:
		inner := r.Inflate(-bv.Width / 2)
		for _, p := range bv.Verts {
			if !rectContainsPoint(inner, p) {
				return false
			}
		}
		return true
	case Line:
		// An infinite line fits inside a finite rectangle only in the
		// degenerate zero-direction case, which collapses to a point.
		if EqualF(bv.Dir.Len(), 0) {
			return rectContainsPoint(r, bv.Point)
		}
		return false
	default:
		return false
	}
}

// polygonContains implements spec.md's "polygon contains rectangle iff every
// rectangle corner is inside the polygon and no polygon edge crosses any
// rectangle edge", generalized to the rest of the primitive family by the
// same two-part test: every representative point of b lies inside p, and no
// edge of b crosses the polygon boundary.
func polygonContains(p Polygon, b Shape) bool {
	switch bv := b.(type) {
	case Circle:
		return pointInPolygon(bv.Center, p) && GreaterEqF(distToPolygonBoundary(bv.Center, p), bv.Radius)
	case Segment:
		return pointInPolygon(bv.Start, p) && pointInPolygon(bv.End, p) && !polygonBoundaryCrosses(p, bv)
	case Capsule:
		if !pointInPolygon(bv.Seg.Start, p) || !pointInPolygon(bv.Seg.End, p) {
			return false
		}
		if polygonBoundaryCrosses(p, bv.Seg) {
			return false
		}
		return GreaterEqF(minf(distToPolygonBoundary(bv.Seg.Start, p), distToPolygonBoundary(bv.Seg.End, p)), bv.Radius)
	case Rectangle:
		for _, c := range rectPts(bv) {
			if !pointInPolygon(c, p) {
				return false
			}
		}
		return !polygonEdgesCrossRing(p, rectPts(bv))
	case Triangle:
		for _, c := range triPts(bv) {
			if !pointInPolygon(c, p) {
				return false
			}
		}
		return !polygonEdgesCrossRing(p, triPts(bv))
	case Polygon:
		for _, v := range bv.Verts {
			if !pointInPolygon(v, p) {
				return false
			}
		}
		return !polygonEdgesCrossRing(p, bv.Verts)
	case Path:
		for _, v := range bv.Verts {
			if !pointInPolygon(v, p) {
				return false
			}
		}
		for _, c := range bv.Capsules() {
			if polygonBoundaryCrosses(p, c.Seg) {
				return false
			}
			if LessF(minf(distToPolygonBoundary(c.Seg.Start, p), distToPolygonBoundary(c.Seg.End, p)), c.Radius) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func pointInPolygon(p Point, poly Polygon) bool {
	for _, t := range poly.Triangles() {
		if pointInTriangle(p, t.A, t.B, t.C) {
			return true
		}
	}
	return false
}

func distToPolygonBoundary(p Point, poly Polygon) float64 {
	best := -1.0
	poly.Edges(func(a, b Point) {
		d := PointSegmentDistance(p, Segment{Start: a, End: b})
		if best < 0 || d < best {
			best = d
		}
	})
	if best < 0 {
		return 0
	}
	return best
}

func polygonBoundaryCrosses(poly Polygon, s Segment) bool {
	crosses := false
	poly.Edges(func(a, b Point) {
		if crosses {
			return
		}
		if SegIntersectsSeg(Segment{Start: a, End: b}, s) {
			crosses = true
		}
	})
	return crosses
}

func polygonEdgesCrossRing(poly Polygon, ring []Point) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		if polygonBoundaryCrosses(poly, Segment{Start: ring[i], End: ring[(i+1)%n]}) {
			return true
		}
	}
	return false
}
