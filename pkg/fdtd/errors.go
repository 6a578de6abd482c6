package fdtd

import "errors"

var (
	// ErrInvalidSize reports a non-positive interior size.
	ErrInvalidSize = errors.New("fdtd: invalid grid size")

	// ErrInvalidConfig reports a configuration value outside its domain.
	ErrInvalidConfig = errors.New("fdtd: invalid configuration")

	// ErrOutOfRange reports a rectangle or point outside the permitted region.
	ErrOutOfRange = errors.New("fdtd: coordinates out of range")

	// ErrNotReady reports stepping through a solver whose grid changed after Setup.
	ErrNotReady = errors.New("fdtd: solver not ready (grid edited or set up again)")

	// ErrNoSource reports feeding before InitSource.
	ErrNoSource = errors.New("fdtd: source not initialised")
)
