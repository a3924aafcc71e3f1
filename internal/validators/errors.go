// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationError reports a single failed validation rule.
//
// Message is a human-readable description that is returned to API callers
// verbatim, so it is written as a complete sentence.
type ValidationError struct {
	// Field is the name of the offending field (see Field* constants).
	Field string

	// Message describes the violated rule.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// newValidationError constructs a [ValidationError] for field.
func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// AsValidationError unwraps err into a [ValidationError] if it carries one.
func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}
