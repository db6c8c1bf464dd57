package geom

// triangulate performs simple ear-clipping triangulation of a simple polygon
// given in either winding order. Runs once at Polygon construction time so
// that every later polygon/rectangle predicate reduces to per-triangle tests
// (spec.md §4.A "pre-triangulate polygon once").
//
// Complexity: O(n^2), acceptable since this runs once per polygon, not per
// query.
func triangulate(verts []Point) []Triangle {
	n := len(verts)
	if n < 3 {
		return nil
	}

	// Work on a mutable index ring so we can clip ears without reallocating
	// the vertex slice itself.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	// Ear clipping requires consistent (counter-clockwise) winding.
	if signedArea(verts) < 0 {
		reverseInts(idx)
	}

	var tris []Triangle
	guard := 0
	for len(idx) > 3 && guard < n*n+8 {
		guard++
		earFound := false
		for i := 0; i < len(idx); i++ {
			prev := idx[(i-1+len(idx))%len(idx)]
			cur := idx[i]
			next := idx[(i+1)%len(idx)]
			a, b, c := verts[prev], verts[cur], verts[next]
			if !isConvex(a, b, c) {
				continue
			}
			if anyVertexInside(verts, idx, prev, cur, next, a, b, c) {
				continue
			}
			tris = append(tris, Triangle{A: a, B: b, C: c})
			idx = append(idx[:i], idx[i+1:]...)
			earFound = true
			break
		}
		if !earFound {
			// Degenerate/self-intersecting input: fall back to a simple fan
			// triangulation rather than looping forever.
			break
		}
	}
	if len(idx) >= 3 {
		for i := 1; i+1 < len(idx); i++ {
			tris = append(tris, Triangle{A: verts[idx[0]], B: verts[idx[i]], C: verts[idx[i+1]]})
		}
	}
	return tris
}

func signedArea(verts []Point) float64 {
	var sum float64
	n := len(verts)
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

func reverseInts(a []int) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}

// isConvex reports whether b is a convex vertex of the (ccw) chain a->b->c.
func isConvex(a, b, c Point) bool {
	return GreaterF(cross3(a, b, c), 0)
}

func cross3(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// anyVertexInside reports whether any other ring vertex lies inside triangle
// (a,b,c), which would make it an invalid ear.
func anyVertexInside(verts []Point, idx []int, prev, cur, next int, a, b, c Point) bool {
	for _, vi := range idx {
		if vi == prev || vi == cur || vi == next {
			continue
		}
		if pointInTriangle(verts[vi], a, b, c) {
			return true
		}
	}
	return false
}

func pointInTriangle(p, a, b, c Point) bool {
	d1 := sign(cross3(a, b, p))
	d2 := sign(cross3(b, c, p))
	d3 := sign(cross3(c, a, p))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
