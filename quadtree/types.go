package quadtree

import (
	"github.com/google/uuid"
	"github.com/wireloom/boardroute/geom"
)

// DefaultLeafThreshold is the entry count at which a node splits, per
// spec.md's "threshold (e.g. 8)".
const DefaultLeafThreshold = 8

// DefaultDepthCap bounds recursion depth, per spec.md's "depth is under a
// cap (e.g. 12)".
const DefaultDepthCap = 12

// entry is one indexed shape. bounds is cached at insertion time so node
// placement and candidate filtering never re-derive it from shape.
type entry struct {
	id     uuid.UUID
	shape  geom.Shape
	bounds geom.Rectangle
}

// node is one quadtree node. A node with children is internal; entries that
// straddle more than one child's rectangle stay at the node that contains
// them, per spec.md's "each node holds shapes whose bounding rectangle is
// not contained in a single child".
type node struct {
	bounds   geom.Rectangle
	depth    int
	entries  []entry
	children [4]*node
}

func (n *node) hasChildren() bool { return n.children[0] != nil }

// Tree is a per-layer spatial index over geom.Shape values keyed by
// uuid.UUID. The zero value is not usable; construct with New.
//
// Concurrency: Tree is not safe for concurrent mutation; callers needing
// concurrent readers during a single routing pass should take their own
// snapshot (bulk rebuild, per spec.md §4.B, is acceptable between net
// routings and is the intended way to share a tree across goroutines).
type Tree struct {
	root          *node
	leafThreshold int
	depthCap      int
	locs          map[uuid.UUID]*node
}

// New constructs an empty Tree over bounds with the default leaf threshold
// and depth cap.
func New(bounds geom.Rectangle) *Tree {
	return NewWithLimits(bounds, DefaultLeafThreshold, DefaultDepthCap)
}

// NewWithLimits constructs an empty Tree with explicit split parameters.
func NewWithLimits(bounds geom.Rectangle, leafThreshold, depthCap int) *Tree {
	return &Tree{
		root:          &node{bounds: bounds},
		leafThreshold: leafThreshold,
		depthCap:      depthCap,
		locs:          make(map[uuid.UUID]*node),
	}
}

// Len returns the number of indexed entries.
func (t *Tree) Len() int { return len(t.locs) }

// Bounds returns the tree's root bounding rectangle.
func (t *Tree) Bounds() geom.Rectangle { return t.root.bounds }
