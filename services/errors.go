package services

import "errors"

var (
	// ErrNotFound signals a missing dish, order or pickup slot.
	ErrNotFound = errors.New("record not found")

	// ErrDenied signals an access-policy failure.
	ErrDenied = errors.New("access denied")

	// ErrOrderNumberConflict is returned when a unique order number could
	// not be allocated within the retry bound.
	ErrOrderNumberConflict = errors.New("could not allocate a unique order number")
)

// ValidationError carries a human-readable reason the caller can show to
// the user and allow resubmission.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func newValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
