package gridroute

import "github.com/wireloom/boardroute/board"

// Cell identifies one grid cell: a layer and its planar (i, j) coordinate.
type Cell struct {
	Layer board.LayerId
	I, J  int
}

// NetState is the per-net state machine spec.md §4.D requires: Pending,
// then Routing, then terminal on Committed or Failed. There are no retries
// within a pass — that is the net-order driver's job across passes.
type NetState int

const (
	Pending NetState = iota
	Routing
	Committed
	Failed
)

func (s NetState) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Routing:
		return "Routing"
	case Committed:
		return "Committed"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Options parameterizes grid construction and the A* search.
type Options struct {
	// Step is the grid cell size, typically the minimum pad pitch / 4,
	// bounded below by clearance + min trace width.
	Step float64
	// TraceWidth is used both to inflate cell footprints for blocking and
	// to size committed wire paths.
	TraceWidth float64
	// ViaCost is the constant cost of an inter-layer move, typically 10x a
	// unit step.
	ViaCost float64
	// ViaPadstack names the board's default via padstack, used both to
	// commit a Via and to determine which layers a via move must keep free.
	ViaPadstack board.PadstackID
}

// DefaultOptions returns Options with the given step, trace width and via
// padstack, and the conventional 10x via cost (ViaCost = 10 * step).
func DefaultOptions(step, traceWidth float64, viaPadstack board.PadstackID) Options {
	return Options{
		Step:        step,
		TraceWidth:  traceWidth,
		ViaCost:     10 * step,
		ViaPadstack: viaPadstack,
	}
}

// RouteResult is spec.md §4.D/§4.F's per-pass (or per-net) output: the
// committed wires and vias, any debug rectangles, and whether any net
// failed.
type RouteResult struct {
	Wires       []board.Wire
	Vias        []board.Via
	DebugRects  []board.DebugRect
	Failed      bool
	TotalLength float64
	Statuses    map[board.NetID]NetState
}

// Merge combines r and other associatively: wire/via/debug-rect lists
// concatenate, Failed is OR-combined, TotalLength sums, and per-net
// statuses from other take precedence on key collision (a later merge
// reflects the more recent routing attempt). Merge is idempotent given an
// empty RouteResult on either side.
func (r RouteResult) Merge(other RouteResult) RouteResult {
	statuses := make(map[board.NetID]NetState, len(r.Statuses)+len(other.Statuses))
	for k, v := range r.Statuses {
		statuses[k] = v
	}
	for k, v := range other.Statuses {
		statuses[k] = v
	}
	return RouteResult{
		Wires:       append(append([]board.Wire(nil), r.Wires...), other.Wires...),
		Vias:        append(append([]board.Via(nil), r.Vias...), other.Vias...),
		DebugRects:  append(append([]board.DebugRect(nil), r.DebugRects...), other.DebugRects...),
		Failed:      r.Failed || other.Failed,
		TotalLength: r.TotalLength + other.TotalLength,
		Statuses:    statuses,
	}
}
