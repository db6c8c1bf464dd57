// Package geom is the computational-geometry kernel shared by the rest of
// boardroute: a closed family of primitive shapes and a total set of
// predicates and distance functions over them.
//
// Design goals:
//   - Totality: every predicate/distance function is defined for every input,
//     including degenerate ones (zero-length segments, coincident points).
//   - Determinism: the predicates' orientation, overlap and containment
//     decisions go through the ε-tolerant wrappers in epsilon.go; bare
//     operators remain only for min/max selection, sentinel values and
//     sign checks such as a polygon's winding.
//   - Closed dispatch: Shape is a sum type over eight concrete primitives;
//     pairwise predicates are implemented once per unordered pair and the
//     symmetric half of the table is derived by argument-swap, not duplicated.
//
// geom does not fail: predicates and distances return plain values. Their
// inputs are not checked for NaN/Inf, and no function in the package
// returns ErrNonFinite (see errors.go); callers can test coordinates with
// IsFinite and Point.IsFinite.
package geom
