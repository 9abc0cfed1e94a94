package namedvec

import "errors"

// Common errors
var (
	ErrIndexOutOfRange = errors.New("index is out of range")
	ErrNameNotFound    = errors.New("name not found")
)
