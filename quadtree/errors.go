package quadtree

import "errors"

// ErrNotFound is returned by Remove when no entry with the given id exists.
var ErrNotFound = errors.New("quadtree: id not found")
