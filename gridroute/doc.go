// Package gridroute is the per-net multi-layer grid router, the core of
// the core: it discretizes a board snapshot into a uniform 3D cell grid,
// blocks cells per the inflated footprint of obstacles not belonging to the
// net being routed, and searches that grid with A* to connect every pin of
// a net as an incrementally-grown multi-terminal tree.
//
// RouteNets is the package's single entry point: given a board snapshot and
// an ordered list of net ids, it routes each net strictly in that order,
// committing wires and vias to the returned RouteResult as it goes and
// marking unroutable nets failed without aborting the pass.
package gridroute
