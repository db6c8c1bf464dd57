package gridroute

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/wireloom/boardroute/board"
	"github.com/wireloom/boardroute/geom"
)

// RouteNets routes netOrder's nets strictly in the given order against pcb,
// returning the accumulated RouteResult. Per spec.md §4.D: a net that
// cannot be fully connected is marked Failed and the pass continues; only
// a board whose routable region collapses to nothing (ErrFatalGrid) aborts
// the whole pass.
func RouteNets(pcb *board.Pcb, netOrder []board.NetID, opts Options) (RouteResult, error) {
	// Earlier nets' copper must obstruct later nets, but pcb itself stays
	// read-only (netorder routes several orders against it concurrently), so
	// the pass routes against a private copy whose wire/via lists grow as
	// nets commit.
	snapshot := *pcb
	snapshot.Wires = append([]board.Wire(nil), pcb.Wires...)
	snapshot.Vias = append([]board.Via(nil), pcb.Vias...)
	grid, err := NewGrid(&snapshot, opts)
	if err != nil {
		return RouteResult{}, err
	}

	result := RouteResult{Statuses: make(map[board.NetID]NetState, len(netOrder))}
	for _, netID := range netOrder {
		result.Statuses[netID] = Pending
	}

	for _, netID := range netOrder {
		result.Statuses[netID] = Routing
		netResult, err := grid.routeNet(&snapshot, netID)
		if err != nil {
			result.Statuses[netID] = Failed
			result.Failed = true
			continue
		}
		result.Statuses[netID] = Committed
		result = result.Merge(netResult)
		snapshot.Wires = append(snapshot.Wires, netResult.Wires...)
		snapshot.Vias = append(snapshot.Vias, netResult.Vias...)
	}
	return result, nil
}

// routeNet grows netID's multi-terminal tree: seed from the pin nearest the
// center of the board's bounding rectangle, then repeatedly run multi-source (every cell already in
// the tree) to nearest-unconnected-pin A*, committing each found path's
// cells into the tree before moving to the next pin.
func (g *Grid) routeNet(pcb *board.Pcb, netID board.NetID) (RouteResult, error) {
	pins, err := pcb.PinsOf(netID)
	if err != nil {
		return RouteResult{}, err
	}
	if len(pins) < 2 {
		return RouteResult{}, nil
	}

	idx := g.buildObstacleIndex(netID)

	type pinCell struct {
		ref  board.PinRef
		cell Cell
		pos  geom.Point
	}
	remaining := make([]pinCell, 0, len(pins))
	for _, ref := range pins {
		_, pin, abs, err := pcb.ResolvePinRef(ref)
		if err != nil {
			return RouteResult{}, err
		}
		layer := g.pinLayer(pin)
		pos := abs.Point(geom.Point{})
		i, j := g.CellIndex(pos)
		remaining = append(remaining, pinCell{ref: ref, cell: Cell{Layer: layer, I: i, J: j}, pos: pos})
	}

	center := g.pcb.Boundary.Bounds().Center()
	seed := 0
	for i, pc := range remaining {
		if pc.pos.Dist(center) < remaining[seed].pos.Dist(center) {
			seed = i
		}
	}
	remaining[0], remaining[seed] = remaining[seed], remaining[0]

	tree := map[Cell]bool{remaining[0].cell: true}
	treeCells := []Cell{remaining[0].cell}
	remaining = remaining[1:]

	var paths [][]Cell

	for len(remaining) > 0 {
		targets := make([]Cell, len(remaining))
		for i, pc := range remaining {
			targets[i] = pc.cell
		}
		path := g.search(idx, treeCells, targets)
		if path == nil {
			return RouteResult{}, fmt.Errorf("%w: net %s", ErrUnroutableNet, netID)
		}

		reached := path[len(path)-1]
		next := -1
		for i, pc := range remaining {
			if pc.cell == reached {
				next = i
				break
			}
		}
		if next < 0 {
			return RouteResult{}, fmt.Errorf("%w: net %s", ErrUnroutableNet, netID)
		}
		remaining = append(remaining[:next], remaining[next+1:]...)
		paths = append(paths, path)

		for _, c := range path {
			if !tree[c] {
				tree[c] = true
				treeCells = append(treeCells, c)
			}
		}
	}

	return g.commit(netID, paths), nil
}

// pinLayer returns the layer a pin's padstack occupies, preferring the
// board's first layer when the padstack spans multiple (through-hole) — any
// spanned layer is equally valid as a starting point for routing.
func (g *Grid) pinLayer(pin board.Pin) board.LayerId {
	padstack, ok := g.pcb.Padstacks[pin.Padstack]
	if !ok {
		return g.layers[0]
	}
	ls := padstack.Layers()
	if len(ls) == 0 {
		return g.layers[0]
	}
	return ls[0]
}

// commit converts each growth-iteration's path into its own wires (one per
// contiguous same-layer run within that path, split at via transitions) and
// vias (placed at each transition's (I, J)). A path is emitted independently
// of every other path, so a branch that joins the tree mid-wire produces a
// wire of its own sharing only its first cell with whatever path grew the
// branch point, rather than being flattened into one polyline per layer.
// Each such branch cell is kept as a vertex of every wire passing through
// it, so the two wires meet at a common vertex.
func (g *Grid) commit(netID board.NetID, paths [][]Cell) RouteResult {
	var result RouteResult
	viaSet := make(map[[2]int]bool)

	junctions := make(map[Cell]bool)
	for i, path := range paths {
		if i > 0 && len(path) > 0 {
			junctions[path[0]] = true
		}
	}

	for _, path := range paths {
		if len(path) == 0 {
			continue
		}
		run := []Cell{path[0]}
		for i := 1; i < len(path); i++ {
			if path[i].Layer == path[i-1].Layer {
				run = append(run, path[i])
				continue
			}
			viaSet[[2]int{path[i-1].I, path[i-1].J}] = true
			result.appendWire(g, netID, run, junctions)
			run = []Cell{path[i]}
		}
		result.appendWire(g, netID, run, junctions)
	}

	for key := range viaSet {
		result.Vias = append(result.Vias, board.Via{
			ID:       uuid.New(),
			Net:      netID,
			Position: g.CellCenter(key[0], key[1]),
			Padstack: g.opts.ViaPadstack,
		})
	}
	return result
}

// appendWire simplifies run's cells into a polyline and appends it as a
// wire, skipping runs too short to form a segment (a single-cell run at a
// via with no planar movement on either side). Cells in keep stay vertices.
func (r *RouteResult) appendWire(g *Grid, netID board.NetID, run []Cell, keep map[Cell]bool) {
	verts := simplify(g, run, keep)
	if len(verts) < 2 {
		return
	}
	length := 0.0
	for i := 1; i < len(verts); i++ {
		length += verts[i-1].Dist(verts[i])
	}
	r.Wires = append(r.Wires, board.Wire{
		ID:    uuid.New(),
		Net:   netID,
		Layer: run[0].Layer,
		Path:  geom.Path{Verts: verts, Width: g.opts.TraceWidth},
	})
	r.TotalLength += length
}

// simplify converts a layer's occupied cells into a polyline, collapsing
// consecutive collinear centers except those of cells in keep. Cell
// adjacency within a layer is assumed (the tree grows by A* moves only), so
// a simple index-order walk suffices.
func simplify(g *Grid, cells []Cell, keep map[Cell]bool) []geom.Point {
	if len(cells) == 0 {
		return nil
	}
	pts := make([]geom.Point, len(cells))
	for i, c := range cells {
		pts[i] = g.CellCenter(c.I, c.J)
	}
	out := pts[:1]
	for i := 1; i < len(pts)-1; i++ {
		prev, cur, next := out[len(out)-1], pts[i], pts[i+1]
		dx1, dy1 := cur.X-prev.X, cur.Y-prev.Y
		dx2, dy2 := next.X-cur.X, next.Y-cur.Y
		if !keep[cells[i]] && geom.EqualF(dx1*dy2-dy1*dx2, 0) {
			continue
		}
		out = append(out, cur)
	}
	if len(pts) > 1 {
		out = append(out, pts[len(pts)-1])
	}
	return out
}
