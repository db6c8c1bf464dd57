package quadtree

import (
	"github.com/google/uuid"
	"github.com/wireloom/boardroute/geom"
)

// Query returns the ids of every indexed shape that intersects s, per
// spec.md §4.B: a bounding-rectangle walk collects candidates, then each
// candidate is filtered by the exact kernel predicate so the result never
// contains a false positive.
//
// Complexity: O(log n + k) expected, where k is the number of candidates
// visited (nodes whose rectangle overlaps s.Bounds()).
func (t *Tree) Query(s geom.Shape) []uuid.UUID {
	qr := s.Bounds()
	var out []uuid.UUID
	t.root.collect(qr, func(e entry) {
		if geom.Intersects(e.shape, s) {
			out = append(out, e.id)
		}
	})
	return out
}

// QueryRect is Query specialized to a bounding-rectangle query, matching
// spec.md §4.B's "query by bounding rectangle" phrasing; Rectangle already
// implements geom.Shape so this is a thin, discoverable alias.
func (t *Tree) QueryRect(r geom.Rectangle) []uuid.UUID {
	return t.Query(r)
}

// Within returns the ids of every indexed shape within radius of s,
// degenerating correctly to Query when radius is 0 because geom.Distance
// returns 0 on intersection or containment (spec.md §4.B).
func (t *Tree) Within(s geom.Shape, radius float64) []uuid.UUID {
	qr := s.Bounds().Inflate(radius)
	var out []uuid.UUID
	t.root.collect(qr, func(e entry) {
		if geom.LessEqF(geom.Distance(e.shape, s), radius) {
			out = append(out, e.id)
		}
	})
	return out
}

// collect walks nodes whose rectangle overlaps qr and calls visit for every
// candidate entry whose own bounding rectangle overlaps qr.
func (n *node) collect(qr geom.Rectangle, visit func(entry)) {
	if !geom.RectIntersectsRect(n.bounds, qr) {
		return
	}
	for _, e := range n.entries {
		if geom.RectIntersectsRect(e.bounds, qr) {
			visit(e)
		}
	}
	for _, c := range n.children {
		if c != nil {
			c.collect(qr, visit)
		}
	}
}
