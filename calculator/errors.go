package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned when an argument is not the expected numeric or list kind
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrDomainViolation is returned when an argument is outside its allowed range
	ErrDomainViolation = errors.New("domain violation")

	// ErrUnknownTool is returned when no calculator is registered under a tool name
	ErrUnknownTool = errors.New("unknown tool")
)

// ValidationError reports the argument that failed validation.
// Kind is ErrTypeMismatch or ErrDomainViolation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Kind    error  `json:"-"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the error kind so errors.Is works against the sentinels
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func typeMismatch(field, message string) error {
	return &ValidationError{Field: field, Message: message, Kind: ErrTypeMismatch}
}

func domainViolation(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...), Kind: ErrDomainViolation}
}

// IsTypeMismatch reports whether err is a type mismatch
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// IsDomainViolation reports whether err is a domain violation
func IsDomainViolation(err error) bool {
	return errors.Is(err, ErrDomainViolation)
}
