package motion

import "errors"

var (
	// ErrInvalidTimestep is returned when Step receives a dt that is not a positive finite number.
	ErrInvalidTimestep = errors.New("motion: timestep must be positive and finite")
	// ErrNoGroundQuery is returned when Step has no ground signal to read.
	ErrNoGroundQuery = errors.New("motion: ground query is required")
	// ErrNilState is returned when Step has no state to integrate.
	ErrNilState = errors.New("motion: state is required")
	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("motion: invalid config")
)
