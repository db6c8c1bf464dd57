package quadtree

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wireloom/boardroute/geom"
)

func boardBounds() geom.Rectangle {
	return geom.Rectangle{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 1000, Y: 1000}}
}

func TestInsertAndQueryRect(t *testing.T) {
	tree := New(boardBounds())
	id := uuid.New()
	tree.Insert(id, geom.Circle{Center: geom.Point{X: 100, Y: 100}, Radius: 5})

	hits := tree.QueryRect(geom.Rectangle{Min: geom.Point{X: 90, Y: 90}, Max: geom.Point{X: 110, Y: 110}})
	require.Len(t, hits, 1)
	assert.Equal(t, id, hits[0])

	miss := tree.QueryRect(geom.Rectangle{Min: geom.Point{X: 900, Y: 900}, Max: geom.Point{X: 910, Y: 910}})
	assert.Empty(t, miss)
}

func TestQueryFiltersByExactPredicate(t *testing.T) {
	tree := New(boardBounds())
	// A circle whose bounding box overlaps the query rect but whose actual
	// disc does not: the bounding-rect candidate walk must not leak it.
	id := uuid.New()
	tree.Insert(id, geom.Circle{Center: geom.Point{X: 0, Y: 0}, Radius: 1})

	query := geom.Rectangle{Min: geom.Point{X: 0.9, Y: 0.9}, Max: geom.Point{X: 2, Y: 2}}
	hits := tree.Query(query)
	assert.Empty(t, hits, "corner of bounding box overlaps but the circle itself does not")
}

func TestSplitsUnderManyEntries(t *testing.T) {
	tree := NewWithLimits(boardBounds(), 4, 12)
	for i := 0; i < 50; i++ {
		x := float64(i % 10 * 90)
		y := float64(i / 10 * 90)
		tree.Insert(uuid.New(), geom.Circle{Center: geom.Point{X: x, Y: y}, Radius: 1})
	}
	assert.Equal(t, 50, tree.Len())
	assert.True(t, tree.root.hasChildren())

	hits := tree.QueryRect(boardBounds())
	assert.Len(t, hits, 50)
}

func TestRemove(t *testing.T) {
	tree := New(boardBounds())
	id := uuid.New()
	tree.Insert(id, geom.Circle{Center: geom.Point{X: 1, Y: 1}, Radius: 1})
	require.Equal(t, 1, tree.Len())

	require.NoError(t, tree.Remove(id))
	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.QueryRect(boardBounds()))

	assert.ErrorIs(t, tree.Remove(id), ErrNotFound)
}

func TestReinsertReplacesEntry(t *testing.T) {
	tree := New(boardBounds())
	id := uuid.New()
	tree.Insert(id, geom.Circle{Center: geom.Point{X: 1, Y: 1}, Radius: 1})
	tree.Insert(id, geom.Circle{Center: geom.Point{X: 500, Y: 500}, Radius: 1})

	assert.Equal(t, 1, tree.Len())
	hits := tree.QueryRect(geom.Rectangle{Min: geom.Point{X: 490, Y: 490}, Max: geom.Point{X: 510, Y: 510}})
	require.Len(t, hits, 1)
	assert.Equal(t, id, hits[0])
}

func TestWithinDegeneratesToIntersection(t *testing.T) {
	tree := New(boardBounds())
	id := uuid.New()
	tree.Insert(id, geom.Circle{Center: geom.Point{X: 100, Y: 100}, Radius: 5})

	touching := geom.Circle{Center: geom.Point{X: 100, Y: 100}, Radius: 1}
	hits := tree.Within(touching, 0)
	require.Len(t, hits, 1)
	assert.Equal(t, id, hits[0])
}

func TestWithinExpandsSearchRadius(t *testing.T) {
	tree := New(boardBounds())
	id := uuid.New()
	tree.Insert(id, geom.Circle{Center: geom.Point{X: 200, Y: 200}, Radius: 5})

	far := geom.Circle{Center: geom.Point{X: 100, Y: 200}, Radius: 1}
	assert.Empty(t, tree.Within(far, 10))
	assert.NotEmpty(t, tree.Within(far, 100))
}

func TestBulkInsert(t *testing.T) {
	tree := New(boardBounds())
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	shapes := []geom.Shape{
		geom.Circle{Center: geom.Point{X: 10, Y: 10}, Radius: 1},
		geom.Circle{Center: geom.Point{X: 20, Y: 20}, Radius: 1},
		geom.Circle{Center: geom.Point{X: 30, Y: 30}, Radius: 1},
	}
	tree.BulkInsert(ids, shapes)
	assert.Equal(t, 3, tree.Len())
}

func TestLayerSetIsolatesLayers(t *testing.T) {
	set := NewLayerSet(boardBounds())
	id := uuid.New()
	set.Layer(0).Insert(id, geom.Circle{Center: geom.Point{X: 5, Y: 5}, Radius: 1})

	assert.Equal(t, 1, set.Layer(0).Len())
	assert.Equal(t, 0, set.Layer(1).Len())
	assert.ElementsMatch(t, []int{0, 1}, set.Layers())
}
