package geom

// Intersects is the total, symmetric predicate required by spec.md §4.A for
// every unordered primitive pair. Circle and Segment are degenerate
// Capsules (see capsule_ops.go) and Path is a sequence of Capsules, so the
// real dispatch surface below covers only {Capsule, Rectangle, Triangle,
// Polygon, Line} pairwise plus the Path/Capsule reductions — the N×N table
// spec.md §9 calls for, with symmetry and the capsule/path reductions used
// to collapse most of it.
func Intersects(a, b Shape) bool {
	switch av := a.(type) {
	case Circle:
		return capsuleIntersectsShape(circleAsCapsule(av), b)
	case Segment:
		return capsuleIntersectsShape(segmentAsCapsule(av), b)
	case Capsule:
		return capsuleIntersectsShape(av, b)
	case Path:
		return pathIntersectsShape(av, b)
	case Rectangle:
		return rectIntersectsShape(av, b)
	case Triangle:
		return triangleIntersectsShape(av, b)
	case Polygon:
		return polygonIntersectsShape(av, b)
	case Line:
		return lineIntersectsShape(av, b)
	default:
		return false
	}
}

func capsuleIntersectsShape(c Capsule, b Shape) bool {
	switch bv := b.(type) {
	case Circle:
		return CapsuleIntersectsCapsule(c, circleAsCapsule(bv))
	case Segment:
		return CapsuleIntersectsCapsule(c, segmentAsCapsule(bv))
	case Capsule:
		return CapsuleIntersectsCapsule(c, bv)
	case Rectangle:
		return CapsuleIntersectsRect(c, bv)
	case Triangle:
		return CapsuleIntersectsTriangle(c, bv)
	case Polygon:
		return CapsuleIntersectsPolygon(c, bv)
	case Path:
		return CapsuleIntersectsPath(c, bv)
	case Line:
		return CapsuleIntersectsLine(c, bv)
	default:
		return false
	}
}

func pathIntersectsShape(p Path, b Shape) bool {
	if bp, ok := b.(Path); ok {
		for _, ca := range p.Capsules() {
			for _, cb := range bp.Capsules() {
				if CapsuleIntersectsCapsule(ca, cb) {
					return true
				}
			}
		}
		return false
	}
	for _, c := range p.Capsules() {
		if capsuleIntersectsShape(c, b) {
			return true
		}
	}
	return false
}

func rectIntersectsShape(r Rectangle, b Shape) bool {
	switch bv := b.(type) {
	case Circle, Segment, Capsule:
		return capsuleIntersectsShape(shapeAsCapsule(bv), r)
	case Path:
		return pathIntersectsShape(bv, r)
	case Rectangle:
		return RectIntersectsRect(r, bv)
	case Triangle:
		return RectIntersectsTriangle(r, bv)
	case Polygon:
		return RectIntersectsPolygon(r, bv)
	case Line:
		return RectIntersectsLine(r, bv)
	default:
		return false
	}
}

func triangleIntersectsShape(t Triangle, b Shape) bool {
	switch bv := b.(type) {
	case Circle, Segment, Capsule:
		return capsuleIntersectsShape(shapeAsCapsule(bv), t)
	case Path:
		return pathIntersectsShape(bv, t)
	case Rectangle:
		return RectIntersectsTriangle(bv, t)
	case Triangle:
		return TriangleIntersectsTriangle(t, bv)
	case Polygon:
		return TriangleIntersectsPolygon(t, bv)
	case Line:
		return TriangleIntersectsLine(t, bv)
	default:
		return false
	}
}

func polygonIntersectsShape(p Polygon, b Shape) bool {
	switch bv := b.(type) {
	case Circle, Segment, Capsule:
		return capsuleIntersectsShape(shapeAsCapsule(bv), p)
	case Path:
		return pathIntersectsShape(bv, p)
	case Rectangle:
		return RectIntersectsPolygon(bv, p)
	case Triangle:
		return TriangleIntersectsPolygon(bv, p)
	case Polygon:
		return PolygonIntersectsPolygon(p, bv)
	case Line:
		return PolygonIntersectsLine(p, bv)
	default:
		return false
	}
}

func lineIntersectsShape(l Line, b Shape) bool {
	switch bv := b.(type) {
	case Circle, Segment, Capsule:
		return CapsuleIntersectsLine(shapeAsCapsule(bv), l)
	case Path:
		return PathIntersectsLine(bv, l)
	case Rectangle:
		return RectIntersectsLine(bv, l)
	case Triangle:
		return TriangleIntersectsLine(bv, l)
	case Polygon:
		return PolygonIntersectsLine(bv, l)
	case Line:
		return LineIntersectsLine(l, bv)
	default:
		return false
	}
}

// shapeAsCapsule reduces Circle/Segment/Capsule to their capsule form; b
// must be one of those three kinds.
func shapeAsCapsule(b Shape) Capsule {
	switch bv := b.(type) {
	case Circle:
		return circleAsCapsule(bv)
	case Segment:
		return segmentAsCapsule(bv)
	case Capsule:
		return bv
	default:
		panic("geom: shapeAsCapsule called on non-capsule-family shape")
	}
}
