package gridroute

import "errors"

// ErrUnroutableNet is the recoverable per-net failure kind (spec.md §7): the
// A* open set was exhausted before reaching the target. Wrapped with the
// net id via fmt.Errorf("%w: net %s", ErrUnroutableNet, id) at the call
// site so callers can still errors.Is against the sentinel.
var ErrUnroutableNet = errors.New("gridroute: net is unroutable")

// ErrFatalGrid is the fatal, whole-pass failure kind: the board has a
// zero-area routable region, so no grid could be constructed at all.
var ErrFatalGrid = errors.New("gridroute: board has zero-area routable region")
