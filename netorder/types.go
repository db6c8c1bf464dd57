package netorder

import (
	"math/rand"
	"sort"

	"github.com/wireloom/boardroute/board"
	"github.com/wireloom/boardroute/gridroute"
)

// Router routes one net order against an immutable board snapshot and
// returns the resulting RouteResult. rng is an independently-derived
// stream scoped to this fitness evaluation; the default gridroute-backed
// implementation ignores it (A* is deterministic), but the interface
// carries it so a future stochastic router — or a test double — can
// observe per-evaluation randomness without reaching into shared state.
type Router interface {
	Route(pcb *board.Pcb, order []board.NetID, rng *rand.Rand) (gridroute.RouteResult, error)
}

// GridRouter adapts gridroute.RouteNets to the Router interface.
type GridRouter struct {
	Opts gridroute.Options
}

func (g GridRouter) Route(pcb *board.Pcb, order []board.NetID, _ *rand.Rand) (gridroute.RouteResult, error) {
	return gridroute.RouteNets(pcb, order, g.Opts)
}

// Default cost weights: K_fail >> K_via >> K_len, per spec.md §4.E's
// `cost = K_fail·(#failed) + K_via·(#vias) + K_len·(total wire length)`.
const (
	DefaultKFail = 1000.0
	DefaultKVia  = 10.0
	DefaultKLen  = 1.0
)

// Options parameterizes the net-order GA.
type Options struct {
	Population  int
	Generations int
	// ElitismFraction of the population carried forward unchanged each
	// generation (spec.md: "top-proportion elitism (keep best 10%)").
	ElitismFraction float64
	// MutationRate is the per-individual probability a mutation operator
	// is applied at all (spec.md: "applied with probability rate, else
	// skipped").
	MutationRate float64
	// ReplacementFraction controls ReplaceChildren(f): the fraction of
	// the next generation that is freshly bred children; the rest
	// carries forward from the current generation's survivors.
	ReplacementFraction float64
	// StagnationLimit generations with an unchanged best-of-generation
	// before early termination.
	StagnationLimit int
	KFail, KVia, KLen float64
	Seed              int64
	// Workers bounds fitness-evaluation parallelism; 0 means GOMAXPROCS.
	Workers int
}

// DefaultOptions returns Options matching spec.md §4.E's defaults:
// population 32, stagnation 200, ReplaceChildren(0.5), top-10% elitism.
func DefaultOptions() Options {
	return Options{
		Population:          32,
		Generations:          1,
		ElitismFraction:      0.1,
		MutationRate:         0.1,
		ReplacementFraction:  0.5,
		StagnationLimit:      200,
		KFail:                DefaultKFail,
		KVia:                 DefaultKVia,
		KLen:                 DefaultKLen,
		Seed:                 0,
	}
}

// Result is the GA's overall output: the best net order found, its
// RouteResult, and the generation at which it was reached.
type Result struct {
	Order      []board.NetID
	RouteResult gridroute.RouteResult
	Cost       float64
	Generation int
}

// individual is one population member: a candidate net order plus its
// most recently evaluated fitness (lower cost is better; fitness here is
// the direct cost, not memega's 1/(1+cost) transform — lower-is-better
// comparisons are simpler to reason about and termination-order-stable).
type individual struct {
	order  []board.NetID
	result gridroute.RouteResult
	cost   float64
}

// cost scores r per spec.md §4.E: K_fail counts every individually failed
// net (not just whether any net failed at all), so an order stranding 5
// nets scores worse than one stranding 1, keeping K_fail >> K_via >> K_len
// meaningful even when a pass has multiple failures.
func cost(opts Options, r gridroute.RouteResult) float64 {
	failed := 0
	for _, state := range r.Statuses {
		if state == gridroute.Failed {
			failed++
		}
	}
	return opts.KFail*float64(failed) + opts.KVia*float64(len(r.Vias)) + opts.KLen*r.TotalLength
}

// lexLess provides the deterministic tie-break spec.md §5 requires:
// "selected deterministically by (cost, then lexicographic permutation)".
func lexLess(a, b []board.NetID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func sortByFitness(pop []individual) {
	sort.SliceStable(pop, func(i, j int) bool {
		if pop[i].cost != pop[j].cost {
			return pop[i].cost < pop[j].cost
		}
		return lexLess(pop[i].order, pop[j].order)
	})
}
