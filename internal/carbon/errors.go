package carbon

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors reported by validation. Compare with errors.Is.
var (
	// ErrMissingField indicates a required numeric attribute was not supplied.
	ErrMissingField = constError("missing required field")

	// ErrNonFinite indicates a NaN or infinite numeric attribute.
	ErrNonFinite = constError("value is not finite")

	// ErrNotPositive indicates a dimension that must be strictly positive.
	ErrNotPositive = constError("value must be positive")

	// ErrNegative indicates a value that must not be negative.
	ErrNegative = constError("value must not be negative")

	// ErrInvalidYears indicates a negative projection horizon.
	ErrInvalidYears = constError("years must not be negative")
)

// ValidationError reports which field of which plant failed validation.
type ValidationError struct {
	PlantID string
	Field   string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.PlantID == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("plant %q: invalid %s: %v", e.PlantID, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
