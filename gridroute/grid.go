package gridroute

import (
	"github.com/google/uuid"

	"github.com/wireloom/boardroute/board"
	"github.com/wireloom/boardroute/geom"
	"github.com/wireloom/boardroute/quadtree"
)

// Grid is the uniform 3D discretization of one board snapshot: a cols x
// rows planar grid repeated per board layer, per spec.md §4.D "Grid
// construction". It is scoped to one routing invocation.
type Grid struct {
	pcb    *board.Pcb
	opts   Options
	origin geom.Point
	cols   int
	rows   int
	layers []board.LayerId
	margin float64 // clearance + trace_width/2, the cell footprint inflation
}

// NewGrid discretizes pcb's boundary at opts.Step. Returns ErrFatalGrid if
// the boundary has zero area or the board has no layers.
func NewGrid(pcb *board.Pcb, opts Options) (*Grid, error) {
	bounds := pcb.Boundary.Bounds()
	if bounds.Width() <= 0 || bounds.Height() <= 0 || len(pcb.Layers) == 0 || opts.Step <= 0 {
		return nil, ErrFatalGrid
	}
	cols := int(bounds.Width()/opts.Step) + 1
	rows := int(bounds.Height()/opts.Step) + 1
	if cols <= 0 || rows <= 0 {
		return nil, ErrFatalGrid
	}
	return &Grid{
		pcb:    pcb,
		opts:   opts,
		origin: bounds.Min,
		cols:   cols,
		rows:   rows,
		layers: append([]board.LayerId(nil), pcb.Layers...),
		margin: pcb.Clearance() + opts.TraceWidth/2,
	}, nil
}

// layerIndex returns layer's position in the grid's layer stack, or -1.
func (g *Grid) layerIndex(layer board.LayerId) int {
	for i, l := range g.layers {
		if l == layer {
			return i
		}
	}
	return -1
}

// InBounds reports whether (i, j) lies within the grid's planar extent.
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.cols && j >= 0 && j < g.rows
}

// CellCenter returns the board-space center point of cell (i, j).
func (g *Grid) CellCenter(i, j int) geom.Point {
	return geom.Point{
		X: g.origin.X + (float64(i)+0.5)*g.opts.Step,
		Y: g.origin.Y + (float64(j)+0.5)*g.opts.Step,
	}
}

// CellIndex returns the nearest grid cell (i, j) to a board-space point.
func (g *Grid) CellIndex(p geom.Point) (int, int) {
	i := int((p.X - g.origin.X) / g.opts.Step)
	j := int((p.Y - g.origin.Y) / g.opts.Step)
	return i, j
}

// footprint returns cell (i, j)'s inflated footprint: the cell's square
// expanded by clearance + trace_width/2, per spec.md §4.D.
func (g *Grid) footprint(i, j int) geom.Rectangle {
	half := g.opts.Step / 2
	center := g.CellCenter(i, j)
	return geom.Rectangle{
		Min: geom.Point{X: center.X - half, Y: center.Y - half},
		Max: geom.Point{X: center.X + half, Y: center.Y + half},
	}.Inflate(g.margin)
}

// obstacleIndex accelerates per-layer blocking queries for one net's
// routing pass: one quadtree of obstacle shapes per layer, built once and
// reused for every cell query during that net's A* search. wire and via
// are separate trees because a KeepoutWireOnly/KeepoutViaOnly region only
// obstructs one of the two routing-object classes (spec.md §3) — collapsing
// them into a single class-blind tree would make typed keepouts inert.
type obstacleIndex struct {
	wire map[board.LayerId]*quadtree.Tree
	via  map[board.LayerId]*quadtree.Tree
}

func (g *Grid) buildObstacleIndex(net board.NetID) *obstacleIndex {
	qbounds := g.pcb.Boundary.Bounds().Inflate(g.margin + g.opts.Step)
	idx := &obstacleIndex{
		wire: make(map[board.LayerId]*quadtree.Tree, len(g.layers)),
		via:  make(map[board.LayerId]*quadtree.Tree, len(g.layers)),
	}
	for _, layer := range g.layers {
		wireTree := quadtree.New(qbounds)
		for _, shape := range g.pcb.ObstacleShapes(layer, net, board.KeepoutWireOnly) {
			wireTree.Insert(uuid.New(), shape)
		}
		idx.wire[layer] = wireTree

		viaTree := quadtree.New(qbounds)
		for _, shape := range g.pcb.ObstacleShapes(layer, net, board.KeepoutViaOnly) {
			viaTree.Insert(uuid.New(), shape)
		}
		idx.via[layer] = viaTree
	}
	return idx
}

// blocked reports whether cell (layer, i, j)'s inflated footprint leaves
// the boundary or overlaps a wire-class obstacle not belonging to the net
// the index was built for. Used for in-plane wire movement.
func (g *Grid) blocked(idx *obstacleIndex, layer board.LayerId, i, j int) bool {
	if !g.InBounds(i, j) {
		return true
	}
	fp := g.footprint(i, j)
	if !geom.Contains(g.pcb.Boundary, fp) {
		return true
	}
	tree := idx.wire[layer]
	if tree == nil {
		return true
	}
	return len(tree.Query(fp)) > 0
}

// viaBlocked reports whether placing opts.ViaPadstack at (i, j) would
// collide with a via-class obstacle on any layer the via spans, per
// spec.md §4.D "placing a via also requires the destination via-padstack
// footprint to be free on all layers it spans".
func (g *Grid) viaBlocked(idx *obstacleIndex, i, j int) bool {
	if !g.InBounds(i, j) {
		return true
	}
	padstack, ok := g.pcb.Padstacks[g.opts.ViaPadstack]
	if !ok {
		return true
	}
	fp := g.footprint(i, j)
	if !geom.Contains(g.pcb.Boundary, fp) {
		return true
	}
	for _, layer := range padstack.Layers() {
		tree := idx.via[layer]
		if tree == nil {
			return true
		}
		if len(tree.Query(fp)) > 0 {
			return true
		}
	}
	return false
}
