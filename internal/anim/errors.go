package anim

import "errors"

var (
	// ErrInvalidConfig indicates a scheduler config that cannot drive a loop.
	ErrInvalidConfig = errors.New("anim: invalid scheduler config")

	// ErrWrite indicates a frame could not be written to the output.
	ErrWrite = errors.New("anim: frame write failed")
)
