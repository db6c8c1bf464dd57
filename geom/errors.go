package geom

import "errors"

// ErrNonFinite indicates a coordinate reaching the kernel was NaN or ±Inf.
// Per spec this corresponds to the NumericDegenerate error kind: the kernel
// itself has no other failure mode, since every documented degeneracy
// (zero-length segments, coincident points) has a defined result.
var ErrNonFinite = errors.New("geom: non-finite coordinate")
