package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("not found")

	ErrTripNotFound         = fmt.Errorf("trip %w", ErrNotFound)
	ErrStopNotFound         = fmt.Errorf("stop %w", ErrNotFound)
	ErrCityNotFound         = fmt.Errorf("city %w", ErrNotFound)
	ErrActivityNotFound     = fmt.Errorf("activity %w", ErrNotFound)
	ErrTripActivityNotFound = fmt.Errorf("trip activity %w", ErrNotFound)
	ErrAccountNotFound      = fmt.Errorf("account %w", ErrNotFound)

	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
	ErrValidation         = errors.New("validation failed")
	ErrScheduleConflict   = errors.New("schedule conflict")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned for malformed or missing input. It matches ErrValidation.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil returns nil when no field was rejected.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ConflictError is returned when a schedule interval overlaps an existing one.
// It matches ErrScheduleConflict.
type ConflictError struct {
	Message       string
	ConflictingID uuid.UUID
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Is(target error) bool { return target == ErrScheduleConflict }

// WrapDatabaseError keeps the store's error text for logs while matching ErrDatabaseError.
func WrapDatabaseError(err error) error {
	return fmt.Errorf("%w: %v", ErrDatabaseError, err)
}
