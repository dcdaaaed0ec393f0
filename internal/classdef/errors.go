package classdef

import "errors"

// Structural errors abort the definition pass on first occurrence. Callers
// match them with errors.Is; the wrapped message carries the class or
// attribute the failure belongs to.
var (
	// ErrMissingIdentifier means a node expected to carry a name has none.
	ErrMissingIdentifier = errors.New("missing identifier")
	// ErrInvalidInteger means a scalar expected to be an integer is not.
	ErrInvalidInteger = errors.New("invalid integer")
	// ErrInvalidReference means a value or tuple reference is malformed:
	// wrong scalar type, or a numeric string not starting with a digit.
	ErrInvalidReference = errors.New("invalid reference")
)
