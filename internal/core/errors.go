package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden indicates the caller does not own the targeted resource.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthenticated indicates the operation requires a signed-in user.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidCredentials indicates a login attempt with an unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrValidation represents user input validation failures.
	ErrValidation = errors.New("validation error")
	// ErrInvalidVideoReference indicates an update referenced a video the course does not hold.
	ErrInvalidVideoReference = errors.New("invalid video reference")
	// ErrSlugConflict indicates a write lost a race on a unique slug.
	ErrSlugConflict = errors.New("slug conflict")
	// ErrSlugExhausted indicates no free slug was found within the attempt bound.
	ErrSlugExhausted = errors.New("unable to generate unique slug")
	// ErrAccountExists indicates a write lost a race on a unique email or username.
	ErrAccountExists = errors.New("account already exists")
	// ErrPersistence wraps unexpected storage failures.
	ErrPersistence = errors.New("persistence failure")
)

// ValidationError carries per-field messages keyed by field path, e.g.
// "title" or "videos[2].title".
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(path, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{path: message}}
}

// Add records message for path unless the path already has one.
func (e *ValidationError) Add(path, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[path]; !exists {
		e.Fields[path] = message
	}
}

// Empty reports whether no field failed.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	paths := make([]string, 0, len(e.Fields))
	for path := range e.Fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		parts = append(parts, fmt.Sprintf("%s: %s", path, e.Fields[path]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
