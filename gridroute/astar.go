package gridroute

import (
	"container/heap"
	"math"
)

// planarNeighbors enumerates the 8 in-plane offsets, cardinal first so
// corner-cutting checks can reuse the two preceding cardinal results.
var planarNeighbors = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

const sqrt2 = math.Sqrt2

// pqNode is one entry in the A* open set.
type pqNode struct {
	cell Cell
	g    float64
	f    float64
	idx  int
}

type nodePQ []*pqNode

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i]; pq[i].idx = i; pq[j].idx = j }
func (pq *nodePQ) Push(x interface{}) {
	n := x.(*pqNode)
	n.idx = len(*pq)
	*pq = append(*pq, n)
}
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.idx = -1
	*pq = old[:n-1]
	return item
}

// heuristic is an admissible estimate of the remaining cost from c to the
// nearest cell in targets: octile distance in-plane plus ViaCost per layer
// crossed, tight for the 8-connected/via cost model so A* stays optimal.
func (g *Grid) heuristic(c Cell, targets []Cell) float64 {
	best := math.Inf(1)
	for _, t := range targets {
		di := math.Abs(float64(c.I - t.I))
		dj := math.Abs(float64(c.J - t.J))
		planar := g.opts.Step * (math.Max(di, dj) + (sqrt2-1)*math.Min(di, dj))
		layerDiff := math.Abs(float64(g.layerIndex(c.Layer) - g.layerIndex(t.Layer)))
		est := planar + layerDiff*g.opts.ViaCost
		if est < best {
			best = est
		}
	}
	if math.IsInf(best, 1) || math.IsNaN(best) {
		return 0
	}
	return best
}

// search runs multi-source-to-multi-target A* from sources (each with g=0,
// representing the tree already grown) to the nearest cell in targets. It
// returns the path from the reached source to the reached target,
// inclusive, or nil if no target is reachable.
func (g *Grid) search(idx *obstacleIndex, sources, targets []Cell) []Cell {
	if len(sources) == 0 || len(targets) == 0 {
		return nil
	}
	targetSet := make(map[Cell]bool, len(targets))
	for _, t := range targets {
		targetSet[t] = true
	}

	open := &nodePQ{}
	heap.Init(open)
	gScore := make(map[Cell]float64)
	cameFrom := make(map[Cell]Cell)
	closed := make(map[Cell]bool)

	for _, s := range sources {
		gScore[s] = 0
		heap.Push(open, &pqNode{cell: s, g: 0, f: g.heuristic(s, targets)})
	}

	const tieBreak = 1e-6

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pqNode)
		c := cur.cell
		if closed[c] {
			continue
		}
		closed[c] = true

		if targetSet[c] {
			return reconstruct(cameFrom, c)
		}

		for _, nb := range g.planarSuccessors(idx, c) {
			g.relax(c, nb.cell, cur.g+nb.cost, targets, gScore, cameFrom, open, closed, tieBreak)
		}
		for _, nb := range g.viaSuccessors(idx, c) {
			g.relax(c, nb.cell, cur.g+nb.cost, targets, gScore, cameFrom, open, closed, tieBreak)
		}
	}
	return nil
}

func (g *Grid) relax(from, to Cell, tentativeG float64, targets []Cell, gScore map[Cell]float64, cameFrom map[Cell]Cell, open *nodePQ, closed map[Cell]bool, tieBreak float64) {
	if closed[to] {
		return
	}
	if existing, ok := gScore[to]; ok && existing <= tentativeG {
		return
	}
	gScore[to] = tentativeG
	cameFrom[to] = from
	f := tentativeG + g.heuristic(to, targets) - tieBreak
	heap.Push(open, &pqNode{cell: to, g: tentativeG, f: f})
}

type successor struct {
	cell Cell
	cost float64
}

// planarSuccessors returns c's free in-plane neighbors. Corner-cutting
// (a diagonal move squeezing between two blocked orthogonal cells) is
// disallowed.
func (g *Grid) planarSuccessors(idx *obstacleIndex, c Cell) []successor {
	cardinalFree := [4]bool{}
	var out []successor
	for k, off := range planarNeighbors {
		i, j := c.I+off[0], c.J+off[1]
		if g.blocked(idx, c.Layer, i, j) {
			if k < 4 {
				cardinalFree[k] = false
			}
			continue
		}
		if k < 4 {
			cardinalFree[k] = true
			out = append(out, successor{Cell{c.Layer, i, j}, g.opts.Step})
			continue
		}
		// Diagonal: requires both adjacent cardinal neighbors free.
		// Indices: 4={1,1} needs right(0)+up(2); 5={1,-1} needs right(0)+down(3);
		// 6={-1,1} needs left(1)+up(2); 7={-1,-1} needs left(1)+down(3).
		var reqA, reqB int
		switch k {
		case 4:
			reqA, reqB = 0, 2
		case 5:
			reqA, reqB = 0, 3
		case 6:
			reqA, reqB = 1, 2
		case 7:
			reqA, reqB = 1, 3
		}
		if cardinalFree[reqA] && cardinalFree[reqB] {
			out = append(out, successor{Cell{c.Layer, i, j}, g.opts.Step * sqrt2})
		}
	}
	return out
}

// viaSuccessors returns the layers directly above and below c.Layer that a
// via placed at (c.I, c.J) could legally reach.
func (g *Grid) viaSuccessors(idx *obstacleIndex, c Cell) []successor {
	li := g.layerIndex(c.Layer)
	if li < 0 {
		return nil
	}
	var out []successor
	for _, ni := range []int{li - 1, li + 1} {
		if ni < 0 || ni >= len(g.layers) {
			continue
		}
		if g.viaBlocked(idx, c.I, c.J) {
			continue
		}
		target := Cell{g.layers[ni], c.I, c.J}
		if g.blocked(idx, target.Layer, target.I, target.J) {
			continue
		}
		out = append(out, successor{target, g.opts.ViaCost})
	}
	return out
}

func reconstruct(cameFrom map[Cell]Cell, end Cell) []Cell {
	path := []Cell{end}
	cur := end
	for {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
