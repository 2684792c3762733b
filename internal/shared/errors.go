package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")

	// Flow errors
	ErrTimeout            = fmt.Errorf("operation timed out")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
)
