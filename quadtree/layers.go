package quadtree

import "github.com/wireloom/boardroute/geom"

// LayerSet is one Tree per board layer, per spec.md §4.B's "per-layer
// partitioning (one index per layer)". Layers are created lazily on first
// use so a board with sparse layer usage doesn't pay for empty trees.
type LayerSet struct {
	bounds geom.Rectangle
	trees  map[int]*Tree
}

// NewLayerSet constructs an empty LayerSet over the given board bounds.
func NewLayerSet(bounds geom.Rectangle) *LayerSet {
	return &LayerSet{bounds: bounds, trees: make(map[int]*Tree)}
}

// Layer returns the Tree for the given layer index, creating it on first
// access.
func (s *LayerSet) Layer(layer int) *Tree {
	t, ok := s.trees[layer]
	if !ok {
		t = New(s.bounds)
		s.trees[layer] = t
	}
	return t
}

// Layers returns the set of layer indices that have been touched so far.
func (s *LayerSet) Layers() []int {
	out := make([]int, 0, len(s.trees))
	for l := range s.trees {
		out = append(out, l)
	}
	return out
}
