package route

import (
	"errors"

	"github.com/wireloom/boardroute/gridroute"
	"github.com/wireloom/boardroute/netorder"
)

// ErrNoNets is returned when a board has no nets to route.
var ErrNoNets = errors.New("route: board has no nets")

// Options combines the grid router's parameters with the optional
// net-order search's parameters.
type Options struct {
	Grid gridroute.Options
	// Search enables netorder's permutation-GA to choose a net order
	// instead of routing nets in ascending net-ID order.
	Search   bool
	NetOrder netorder.Options
}

// RouteResult re-exports gridroute's result type as route's public output
// type, per spec.md §4.F.
type RouteResult = gridroute.RouteResult
