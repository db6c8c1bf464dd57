// Package netorder searches the space of net-routing-order permutations for
// one that minimizes total routing cost, by invoking a Router (normally
// gridroute) once per candidate order and scoring its RouteResult.
//
// Evolve runs a generational permutation-GA: top-proportion elitism plus
// tournament selection, four adaptively-chosen crossover operators
// (no-op, PMX, order, cycle), four rate-gated mutation operators (swap,
// remove-and-reinsert, scramble, reverse), Kendall-tau diversity with
// duplicate regeneration, and stagnation-based early termination.
package netorder
