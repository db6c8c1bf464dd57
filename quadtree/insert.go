package quadtree

import (
	"github.com/google/uuid"
	"github.com/wireloom/boardroute/geom"
)

// Insert adds shape under id, replacing any prior entry with the same id.
// Complexity: O(depth) amortized.
func (t *Tree) Insert(id uuid.UUID, shape geom.Shape) {
	if _, exists := t.locs[id]; exists {
		t.removeLocked(id)
	}
	e := entry{id: id, shape: shape, bounds: shape.Bounds()}
	t.root.insert(e, t.leafThreshold, t.depthCap, t.locs)
}

// BulkInsert adds every (id, shape) pair. Grounded on spec.md §4.B's "bulk
// insert" requirement: equivalent to repeated Insert, exposed separately so
// callers rebuilding a tree between net routings can express the intent.
func (t *Tree) BulkInsert(ids []uuid.UUID, shapes []geom.Shape) {
	for i := range ids {
		t.Insert(ids[i], shapes[i])
	}
}

// Remove deletes the entry keyed by id. Returns ErrNotFound if absent.
func (t *Tree) Remove(id uuid.UUID) error {
	if _, exists := t.locs[id]; !exists {
		return ErrNotFound
	}
	t.removeLocked(id)
	return nil
}

func (t *Tree) removeLocked(id uuid.UUID) {
	n := t.locs[id]
	n.removeAt(id)
	delete(t.locs, id)
}
