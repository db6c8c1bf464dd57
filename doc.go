// Package boardroute (module github.com/wireloom/boardroute) is a
// deterministic, embeddable autorouting core for two-layer-and-up printed
// circuit boards.
//
// It takes a board snapshot — boundary, components, padstacks, nets,
// keepouts — and produces wires and vias that connect every net's pins
// without violating clearance, all on a fixed-step grid with an A* search
// at its center.
//
// Everything is organized under focused subpackages:
//
//	geom/      — points, shapes, transforms, containment and intersection tests
//	quadtree/  — spatial index used to answer "what's near this cell" fast
//	board/     — the board snapshot: components, padstacks, nets, wires, vias
//	gridroute/ — the grid router: A* over a discretized board, net by net
//	netorder/  — a permutation-GA that searches for a good net routing order
//	route/     — the top-level entry point tying grid routing and net-order
//	             search together and committing results back to the board
//
// Routing one net in isolation is a shortest-path problem; routing all of
// them together, where an earlier net's copper becomes a later net's
// obstacle, is order-sensitive — netorder exists because some orders route
// cleanly and others leave nets stranded behind someone else's traces.
package boardroute
