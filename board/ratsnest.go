package board

import (
	"sort"

	"github.com/wireloom/boardroute/geom"
)

// RatsnestEdge is one "air wire" of a net's minimum-spanning visualization:
// a straight-line hint between two pins that are not yet electrically
// joined by routed copper.
type RatsnestEdge struct {
	A, B   PinRef
	Length float64
}

// Ratsnest returns the minimum-spanning-tree set of air wires over netID's
// pins, built via Kruskal over the complete graph of pin positions
// (Euclidean edge weight) — spec.md §9's "a Kruskal over the pin complete
// graph suffices for MST", grounded on prim_kruskal/kruskal.go's
// disjoint-set-with-path-compression structure, adapted from *core.Graph
// onto the board's own PinRef/point set. Decoration only: gridroute never
// consumes this, matching spec.md's explicit non-requirement. Delaunay
// triangulation, used by the original for a richer ratsnest, is not
// reproduced (spec.md §9 "optional decoration, need not be reproduced").
func (p *Pcb) Ratsnest(netID NetID) ([]RatsnestEdge, error) {
	pins, err := p.PinsOf(netID)
	if err != nil {
		return nil, err
	}
	if len(pins) < 2 {
		return nil, nil
	}

	positions := make([]geom.Point, len(pins))
	for i, ref := range pins {
		_, _, abs, err := p.resolvePinRef(ref)
		if err != nil {
			return nil, err
		}
		positions[i] = abs.Point(geom.Point{})
	}

	type candidateEdge struct {
		i, j   int
		length float64
	}
	edges := make([]candidateEdge, 0, len(pins)*(len(pins)-1)/2)
	for i := 0; i < len(pins); i++ {
		for j := i + 1; j < len(pins); j++ {
			edges = append(edges, candidateEdge{i: i, j: j, length: positions[i].Dist(positions[j])})
		}
	}
	sort.SliceStable(edges, func(a, b int) bool { return edges[a].length < edges[b].length })

	parent := make([]int, len(pins))
	rank := make([]int, len(pins))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	mst := make([]RatsnestEdge, 0, len(pins)-1)
	for _, e := range edges {
		if find(e.i) == find(e.j) {
			continue
		}
		union(e.i, e.j)
		mst = append(mst, RatsnestEdge{A: pins[e.i], B: pins[e.j], Length: e.length})
		if len(mst) == len(pins)-1 {
			break
		}
	}
	return mst, nil
}
