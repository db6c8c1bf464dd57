package geom

// Distance is the total distance function spec.md §4.A requires: it returns
// 0 whenever Intersects(a, b) holds (relied on by the quadtree's Within
// queries), and otherwise the exact gap between a and b for every pair the
// router consumes, falling back to a generic edge-decomposition gap for the
// remaining combinations.
func Distance(a, b Shape) float64 {
	if l, ok := a.(Line); ok {
		return lineDistance(l, b)
	}
	if l, ok := b.(Line); ok {
		return lineDistance(l, a)
	}
	if Intersects(a, b) {
		return 0
	}
	switch av := a.(type) {
	case Circle:
		return capsuleDistanceToShape(circleAsCapsule(av), b)
	case Segment:
		return capsuleDistanceToShape(segmentAsCapsule(av), b)
	case Capsule:
		return capsuleDistanceToShape(av, b)
	case Path:
		return pathDistanceToShape(av, b)
	default:
		return genericGapDistance(a, b)
	}
}

func lineDistance(l Line, b Shape) float64 {
	if Intersects(l, b) {
		return 0
	}
	switch bv := b.(type) {
	case Circle:
		return maxf(pointLineDistance(bv.Center, l)-bv.Radius, 0)
	case Segment:
		return maxf(minf(pointLineDistance(bv.Start, l), pointLineDistance(bv.End, l)), 0)
	case Capsule:
		d := minf(pointLineDistance(bv.Seg.Start, l), pointLineDistance(bv.Seg.End, l))
		return maxf(d-bv.Radius, 0)
	case Line:
		return pointLineDistance(bv.Point, l) // only non-intersecting (i.e. parallel, distinct) lines reach here
	default:
		best := -1.0
		for _, p := range shapeVerts(b) {
			d := pointLineDistance(p, l)
			if best < 0 || d < best {
				best = d
			}
		}
		if best < 0 {
			return 0
		}
		return best
	}
}

func shapeVerts(s Shape) []Point {
	switch v := s.(type) {
	case Rectangle:
		return rectPts(v)
	case Triangle:
		return triPts(v)
	case Polygon:
		return v.Verts
	case Path:
		return v.Verts
	default:
		return nil
	}
}

// capsuleDistanceToShape computes the gap between a capsule and any other
// shape; callers have already established the pair does not intersect.
func capsuleDistanceToShape(c Capsule, b Shape) float64 {
	switch bv := b.(type) {
	case Circle:
		return CapsuleCircleDistance(c, bv)
	case Segment:
		return CapsuleSegmentDistance(c, bv)
	case Capsule:
		return CapsuleCapsuleDistance(c, bv)
	case Rectangle:
		return maxf(rectSegDistance(bv, c.Seg)-c.Radius, 0)
	case Triangle:
		best := -1.0
		pts := triPts(bv)
		for i := 0; i < 3; i++ {
			edge := Segment{Start: pts[i], End: pts[(i+1)%3]}
			d := CapsuleSegmentDistance(c, edge)
			if best < 0 || d < best {
				best = d
			}
		}
		return maxf(best, 0)
	case Polygon:
		return CapsulePolygonDistance(c, bv)
	case Path:
		best := -1.0
		for _, pc := range bv.Capsules() {
			d := CapsuleCapsuleDistance(c, pc)
			if best < 0 || d < best {
				best = d
			}
		}
		if best < 0 {
			return 0
		}
		return best
	default:
		return 0
	}
}

func pathDistanceToShape(p Path, b Shape) float64 {
	best := -1.0
	for _, c := range p.Capsules() {
		d := capsuleDistanceToShape(c, b)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// genericGapDistance handles the remaining zero-fill-radius pairs (rect,
// triangle, polygon against each other) by decomposing both shapes into
// their boundary edges and taking the minimum capsule-capsule gap. Correct
// whenever a and b do not intersect, since for convex/triangulated shapes
// the closest points between non-overlapping regions always lie on their
// boundaries.
func genericGapDistance(a, b Shape) float64 {
	edgesA := edgeCapsules(a)
	best := -1.0
	for _, ca := range edgesA {
		d := capsuleDistanceToShape(ca, b)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

func edgeCapsules(s Shape) []Capsule {
	switch v := s.(type) {
	case Rectangle:
		pts := rectPts(v)
		caps := make([]Capsule, 4)
		for i := range pts {
			caps[i] = segmentAsCapsule(Segment{Start: pts[i], End: pts[(i+1)%4]})
		}
		return caps
	case Triangle:
		pts := triPts(v)
		caps := make([]Capsule, 3)
		for i := range pts {
			caps[i] = segmentAsCapsule(Segment{Start: pts[i], End: pts[(i+1)%3]})
		}
		return caps
	case Polygon:
		var caps []Capsule
		v.Edges(func(a, b Point) {
			caps = append(caps, segmentAsCapsule(Segment{Start: a, End: b}))
		})
		return caps
	case Path:
		return v.Capsules()
	case Capsule:
		return []Capsule{v}
	case Circle:
		return []Capsule{circleAsCapsule(v)}
	case Segment:
		return []Capsule{segmentAsCapsule(v)}
	default:
		return nil
	}
}

// --- Named wrappers matching spec.md §4.A's required-pairs vocabulary ---

// PointRectDistance is 0 if p lies in r, else the distance to the nearest
// edge (point-to-rectangle via axis clamp).
func PointRectDistance(p Point, r Rectangle) float64 {
	clamped := Point{
		X: clamp(p.X, r.Min.X, r.Max.X),
		Y: clamp(p.Y, r.Min.Y, r.Max.Y),
	}
	return p.Dist(clamped)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PointPolygonDistance is 0 if p lies inside (or on) poly, else the distance
// to the nearest boundary edge.
func PointPolygonDistance(p Point, poly Polygon) float64 {
	if pointInPolygon(p, poly) {
		return 0
	}
	return distToPolygonBoundary(p, poly)
}

// CircleRectDistance is the gap between a circle and a rectangle.
func CircleRectDistance(c Circle, r Rectangle) float64 {
	return Distance(c, r)
}

// CirclePathDistance is the gap between a circle and a path.
func CirclePathDistance(c Circle, p Path) float64 {
	return Distance(c, p)
}

// RectRectDistance is the gap between two rectangles.
func RectRectDistance(a, b Rectangle) float64 {
	return Distance(a, b)
}
