package planner

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed input (bad dates, inverted ranges,
// empty weekday sets). It is always raised before any state mutation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func validationf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure, as opposed to a
// storage error that should abort the whole operation.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
