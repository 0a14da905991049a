package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrMemberNotFound  = errors.New("member not found")
)

var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrValidation    = errors.New("validation error")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries field-level messages for a rejected submission.
// It matches errors.Is(err, ErrValidation).
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation error: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
