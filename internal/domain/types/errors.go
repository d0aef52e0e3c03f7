package types

import "fmt"

// IllegalValueError reports a raw field value that does not satisfy the
// field's format rule. Its message is the user-facing constraint text.
type IllegalValueError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *IllegalValueError) Error() string {
	if e.Constraint == "" {
		return fmt.Sprintf("illegal %s value %q", e.Field, e.Value)
	}
	return e.Constraint
}
