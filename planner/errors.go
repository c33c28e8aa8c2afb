package planner

import "errors"

// Sentinel errors for configuration failures (spec §7). These are raised
// synchronously from Validate()/constructors and never from Solve: a
// failed Solve returns (false, nil), not an error.
var (
	// ErrInvalidArg indicates an out-of-range configuration value, such as
	// a goal_sampling_rate outside [0,1].
	ErrInvalidArg = errors.New("planner: invalid argument")

	// ErrInvalidDim indicates a configuration with an unsupported Dim
	// (D < 2 for InformedRRTStarConfig, D <= 0 for RRTConfig). The rotation
	// builder and the ball sampler report dimension errors by wrapping
	// spatial.ErrInvalidDim instead.
	ErrInvalidDim = errors.New("planner: invalid dimension")
)
