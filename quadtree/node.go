package quadtree

import (
	"github.com/google/uuid"
	"github.com/wireloom/boardroute/geom"
)

// quadrants splits r into its four non-overlapping quadrants, NW/NE/SW/SE.
func quadrants(r geom.Rectangle) [4]geom.Rectangle {
	mid := r.Center()
	return [4]geom.Rectangle{
		{Min: geom.Point{X: r.Min.X, Y: mid.Y}, Max: geom.Point{X: mid.X, Y: r.Max.Y}},
		{Min: mid, Max: r.Max},
		{Min: r.Min, Max: mid},
		{Min: geom.Point{X: mid.X, Y: r.Min.Y}, Max: geom.Point{X: r.Max.X, Y: mid.Y}},
	}
}

// rectEncloses reports whether inner fits entirely within outer. The
// children partition the parent's rectangle exactly, so this comparison
// needs no epsilon tolerance beyond what geom.LessEqF already provides.
func rectEncloses(outer, inner geom.Rectangle) bool {
	return geom.LessEqF(outer.Min.X, inner.Min.X) &&
		geom.LessEqF(outer.Min.Y, inner.Min.Y) &&
		geom.GreaterEqF(outer.Max.X, inner.Max.X) &&
		geom.GreaterEqF(outer.Max.Y, inner.Max.Y)
}

// fittingChild returns the one child whose rectangle wholly encloses b, or
// nil if no single child does (b straddles the split point).
func (n *node) fittingChild(b geom.Rectangle) *node {
	if !n.hasChildren() {
		return nil
	}
	for _, c := range n.children {
		if rectEncloses(c.bounds, b) {
			return c
		}
	}
	return nil
}

// insert places e at the deepest node whose single child cannot wholly
// contain it; a leaf that overflows once e is added is then split.
//
// Complexity: O(depth) amortized.
func (n *node) insert(e entry, leafThreshold, depthCap int, locs map[uuid.UUID]*node) {
	if n.hasChildren() {
		if child := n.fittingChild(e.bounds); child != nil {
			child.insert(e, leafThreshold, depthCap, locs)
			return
		}
		n.entries = append(n.entries, e)
		locs[e.id] = n
		return
	}
	n.entries = append(n.entries, e)
	locs[e.id] = n
	if len(n.entries) > leafThreshold && n.depth < depthCap {
		n.split(leafThreshold, depthCap, locs)
	}
}

// split creates the four child nodes and redistributes any existing entry
// that fits wholly within one of them.
func (n *node) split(leafThreshold, depthCap int, locs map[uuid.UUID]*node) {
	quads := quadrants(n.bounds)
	for i := range quads {
		n.children[i] = &node{bounds: quads[i], depth: n.depth + 1}
	}
	kept := n.entries[:0]
	for _, e := range n.entries {
		if child := n.fittingChild(e.bounds); child != nil {
			child.insert(e, leafThreshold, depthCap, locs)
		} else {
			kept = append(kept, e)
			locs[e.id] = n
		}
	}
	n.entries = kept
}

// removeAt deletes id from this node's own entry slice (not recursive);
// callers locate the owning node via Tree.locs first.
func (n *node) removeAt(id uuid.UUID) {
	for i, e := range n.entries {
		if e.id == id {
			n.entries[i] = n.entries[len(n.entries)-1]
			n.entries = n.entries[:len(n.entries)-1]
			return
		}
	}
}
