package starburst

import "errors"

var (
	// ErrInvalidArgument is returned for configuration that can never be
	// valid, such as a star count below 1 or more than MaxSteps steps.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvariantViolation is returned when an API is used in a mode that
	// was not enabled.
	ErrInvariantViolation = errors.New("invariant violation")
)
