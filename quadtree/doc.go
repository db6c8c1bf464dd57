// Package quadtree provides a bounding-rectangle spatial index over
// geom.Shape values, keyed by uuid.UUID, with one independent tree per board
// layer.
//
// A node holds every entry whose bounding rectangle does not fit wholly
// inside one of its four children; a leaf splits once its entry count
// exceeds a threshold (default 8) and its depth is under a cap (default 12).
// Queries walk only children whose rectangle overlaps the query rectangle,
// then filter candidates by the exact geom predicate — the quadtree never
// reports a false positive, only a possibly-larger candidate set.
//
// Why quadtree? — the router issues millions of "what obstacles does this
// cell's footprint touch" queries per pass; a bounding-rectangle walk turns
// that from O(n) obstacles into O(log n + k) for k actual hits.
package quadtree
