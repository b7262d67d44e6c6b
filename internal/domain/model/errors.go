package model

import "errors"

// ErrInvalidInput indicates malformed engine input: an empty item list or a
// non-positive dimension, weight or quantity. "No feasible recommendation"
// is never an error; it is signaled by a nil result.
var ErrInvalidInput = errors.New("invalid input")
