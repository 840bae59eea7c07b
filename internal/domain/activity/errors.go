package activity

import "errors"

var (
	// ErrInvalidInput indicates an empty or malformed activity entry.
	ErrInvalidInput = errors.New("invalid activity input")
)
