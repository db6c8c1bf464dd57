package board

import "errors"

// Construction-time invariant violations, spec.md §7's InvalidBoard kind.
// Fatal: a Pcb that fails New is not usable.
var (
	ErrEmptyBoundary       = errors.New("board: boundary polygon has no vertices")
	ErrNoLayers            = errors.New("board: layer stack is empty")
	ErrDuplicateID         = errors.New("board: duplicate id")
	ErrUnresolvedPinRef    = errors.New("board: pin reference does not resolve to a component/pin/padstack-layer")
	ErrPinMultiplyAssigned = errors.New("board: pin is assigned to more than one net")
)

// ErrNetNotFound is returned by read operations given an unknown NetID; it
// is a caller-usage error, not a construction-time invariant, so it is kept
// separate from the InvalidBoard family above.
var ErrNetNotFound = errors.New("board: net not found")
