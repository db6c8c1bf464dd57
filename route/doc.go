// Package route is the top-level dispatcher: given a board snapshot, it
// either routes the board's nets in ascending net-ID order directly through
// gridroute, or — when a net-order search is requested — runs netorder's
// permutation-GA to choose an order first, then commits the winning
// RouteResult's wires and vias to the board.
package route
