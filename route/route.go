package route

import (
	"sort"

	"github.com/wireloom/boardroute/board"
	"github.com/wireloom/boardroute/gridroute"
	"github.com/wireloom/boardroute/netorder"
)

// Route is the module's single public entry point, modeled on the
// two-stage validate-then-branch dispatch of a generic solver front end:
// validate the board has nets to route, then either route them directly
// (Options.Search == false) or search for a good net order first
// (Options.Search == true), finally committing the winning wires and vias
// to pcb.
func Route(pcb *board.Pcb, opts Options) (RouteResult, error) {
	netOrder := sortedNetOrder(pcb)
	if len(netOrder) == 0 {
		return RouteResult{}, ErrNoNets
	}

	var result RouteResult
	if !opts.Search {
		res, err := gridroute.RouteNets(pcb, netOrder, opts.Grid)
		if err != nil {
			return RouteResult{}, err
		}
		result = res
	} else {
		router := netorder.GridRouter{Opts: opts.Grid}
		best, err := netorder.Evolve(pcb, netOrder, router, opts.NetOrder)
		if err != nil {
			return RouteResult{}, err
		}
		result = best.RouteResult
	}

	commit(pcb, result)
	return result, nil
}

// commit appends a RouteResult's wires, vias, and debug rectangles to pcb,
// per spec.md §4.F: "Commits the winning result's wires/vias to the PCB."
func commit(pcb *board.Pcb, result RouteResult) {
	for _, w := range result.Wires {
		pcb.AppendWire(w)
	}
	for _, v := range result.Vias {
		pcb.AppendVia(v)
	}
	for _, r := range result.DebugRects {
		pcb.AppendDebugRect(r)
	}
}

func sortedNetOrder(pcb *board.Pcb) []board.NetID {
	ids := make([]board.NetID, len(pcb.Nets))
	for i, n := range pcb.Nets {
		ids[i] = n.ID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
