package t2048

import "errors"

// Errors returned by the engine. Callers match them with errors.Is.
var (
	ErrInvalidGridSize  = errors.New("t2048: invalid grid size")
	ErrInvalidDirection = errors.New("t2048: invalid direction")
	ErrInvalidTarget    = errors.New("t2048: target must be a power of two >= 4")
	ErrInvalidPolicy    = errors.New("t2048: invalid tile policy")
	ErrCorruptState     = errors.New("t2048: corrupt persisted state")
	ErrNoSession        = errors.New("t2048: no running session")
)
