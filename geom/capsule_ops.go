package geom

// Segments and circles are both degenerate capsules (radius zero, or a
// zero-length segment respectively); this file implements every
// capsule-family predicate/distance once and lets intersects.go/distance.go
// reduce Circle and Segment onto it. This is the halving spec.md §9 asks
// for: "pairwise predicate dispatch is an N×N table of functions, with
// symmetry exploited to halve the table" — here the reduction also collapses
// three of the eight kinds onto one implementation.

func circleAsCapsule(c Circle) Capsule {
	return Capsule{Seg: Segment{Start: c.Center, End: c.Center}, Radius: c.Radius}
}

func segmentAsCapsule(s Segment) Capsule {
	return Capsule{Seg: s, Radius: 0}
}

// SegIntersectsSeg implements spec.md §4.A's exact segment–segment oracle:
// orientation test on each endpoint against the other segment's line,
// collinear cases resolved via bounding-rectangle containment of endpoints.
func SegIntersectsSeg(a, b Segment) bool {
	aSt := orientation(b.Start, b.End, a.Start)
	aEn := orientation(b.Start, b.End, a.End)
	bSt := orientation(a.Start, a.End, b.Start)
	bEn := orientation(a.Start, a.End, b.End)

	if aSt != aEn && bSt != bEn {
		return true
	}

	aRect := enclosing(a.Start, a.End)
	bRect := enclosing(b.Start, b.End)
	if aSt == 0 && rectContainsPoint(bRect, a.Start) {
		return true
	}
	if aEn == 0 && rectContainsPoint(bRect, a.End) {
		return true
	}
	if bSt == 0 && rectContainsPoint(aRect, b.Start) {
		return true
	}
	if bEn == 0 && rectContainsPoint(aRect, b.End) {
		return true
	}
	return false
}

// PointSegmentDistance projects p onto the segment's supporting line; if the
// projection lies within the segment, returns the perpendicular distance,
// else the distance to the nearer endpoint (spec.md §4.A).
func PointSegmentDistance(p Point, s Segment) float64 {
	stD := p.Dist(s.Start)
	enD := p.Dist(s.End)
	nearest := minf(stD, enD)
	proj := s.Line().Project(p)
	if segmentContainsColinearPoint(s, proj) {
		return minf(nearest, p.Dist(proj))
	}
	return nearest
}

func segmentContainsColinearPoint(s Segment, p Point) bool {
	return rectContainsPoint(enclosing(s.Start, s.End), p)
}

// SegSegDistance returns 0 for intersecting segments (spec.md's "distance
// returns 0 on intersection" contract), else the minimum of the four
// endpoint-to-opposite-segment distances.
func SegSegDistance(a, b Segment) float64 {
	if SegIntersectsSeg(a, b) {
		return 0
	}
	best := PointSegmentDistance(a.Start, b)
	best = minf(best, PointSegmentDistance(a.End, b))
	best = minf(best, PointSegmentDistance(b.Start, a))
	best = minf(best, PointSegmentDistance(b.End, a))
	return best
}

// CapsuleIntersectsCapsule reduces to SegSegDistance minus the combined
// radii (spec.md §4.A "Capsule–X distance: reduce to segment–X distance
// minus the capsule radius, clamped to 0").
func CapsuleIntersectsCapsule(a, b Capsule) bool {
	return LessEqF(SegSegDistance(a.Seg, b.Seg), a.Radius+b.Radius)
}

// CapsuleCapsuleDistance is the gap between two capsules, 0 if they touch or
// overlap.
func CapsuleCapsuleDistance(a, b Capsule) float64 {
	d := SegSegDistance(a.Seg, b.Seg) - a.Radius - b.Radius
	return maxf(d, 0)
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// rectSegDistance is the minimum distance from segment s to the boundary of
// rectangle r (used by CapsuleIntersectsRect/SegmentRectDistance).
func rectSegDistance(r Rectangle, s Segment) float64 {
	corners := r.Corners()
	best := -1.0
	for i := 0; i < 4; i++ {
		edge := Segment{Start: corners[i], End: corners[(i+1)%4]}
		d := SegSegDistance(edge, s)
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

// CapsuleIntersectsRect reports intersection between a capsule and an
// axis-aligned rectangle (spec.md §4.A cap_intersect_rt): true if either
// endpoint lies in the rectangle, or the rectangle boundary comes within the
// capsule's radius of the supporting segment.
func CapsuleIntersectsRect(c Capsule, r Rectangle) bool {
	if rectContainsPoint(r, c.Seg.Start) || rectContainsPoint(r, c.Seg.End) {
		return true
	}
	return LessEqF(rectSegDistance(r, c.Seg), c.Radius)
}

// SegmentRectDistance is 0 if the segment intersects the rectangle, else the
// gap to the nearest rectangle edge.
func SegmentRectDistance(s Segment, r Rectangle) float64 {
	if CapsuleIntersectsRect(segmentAsCapsule(s), r) {
		return 0
	}
	return rectSegDistance(r, s)
}

// CapsuleIntersectsTriangle reports intersection via endpoint containment or
// edge proximity within the capsule radius.
func CapsuleIntersectsTriangle(c Capsule, t Triangle) bool {
	if pointInTriangle(c.Seg.Start, t.A, t.B, t.C) || pointInTriangle(c.Seg.End, t.A, t.B, t.C) {
		return true
	}
	pts := triPts(t)
	for i := 0; i < 3; i++ {
		edge := Segment{Start: pts[i], End: pts[(i+1)%3]}
		if LessEqF(SegSegDistance(edge, c.Seg), c.Radius) {
			return true
		}
	}
	return false
}

// CapsuleIntersectsPolygon reduces to the polygon's pre-computed
// triangulation, matching the rectangle–polygon pattern in spec.md §4.A.
func CapsuleIntersectsPolygon(c Capsule, p Polygon) bool {
	for _, t := range p.Triangles() {
		if CapsuleIntersectsTriangle(c, t) {
			return true
		}
	}
	return false
}

// CapsuleIntersectsPath decomposes the path into capsules and checks each
// (spec.md §4.A "Path–X: decompose path into abutting capsules; min over
// them").
func CapsuleIntersectsPath(c Capsule, p Path) bool {
	for _, pc := range p.Capsules() {
		if CapsuleIntersectsCapsule(c, pc) {
			return true
		}
	}
	return false
}

// CapsuleCircleDistance is the gap between a capsule and a circle.
func CapsuleCircleDistance(a Capsule, b Circle) float64 {
	return CapsuleCapsuleDistance(a, circleAsCapsule(b))
}

// CapsuleSegmentDistance is the gap between a capsule and a bare segment.
func CapsuleSegmentDistance(a Capsule, b Segment) float64 {
	return CapsuleCapsuleDistance(a, segmentAsCapsule(b))
}

// CapsulePolygonDistance is 0 on intersection, else the minimum gap to any
// triangle of the polygon's triangulation.
func CapsulePolygonDistance(a Capsule, b Polygon) float64 {
	if CapsuleIntersectsPolygon(a, b) {
		return 0
	}
	best := -1.0
	for _, t := range b.Triangles() {
		pts := triPts(t)
		for i := 0; i < 3; i++ {
			edge := Segment{Start: pts[i], End: pts[(i+1)%3]}
			d := CapsuleCapsuleDistance(a, segmentAsCapsule(edge))
			if best < 0 || d < best {
				best = d
			}
		}
	}
	if best < 0 {
		return 0
	}
	return best
}
