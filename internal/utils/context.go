// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing, HTTP response writing, HTTP client initialization, JWT token
// generation and validation, and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-doc-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key used to store the authenticated caller identity
// in the context. Use [WithCaller] and [CallerFromContext] instead of
// accessing it directly.
var CallerCtxKey = contextKey("caller")

// WithCaller returns a copy of ctx carrying the caller identity.
func WithCaller(ctx context.Context, caller models.Caller) context.Context {
	return context.WithValue(ctx, CallerCtxKey, caller)
}

// CallerFromContext retrieves the caller identity stored by [WithCaller].
//
// Returns ok == false if the context carries no identity, which means the
// request did not pass the authentication middleware.
func CallerFromContext(ctx context.Context) (models.Caller, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(models.Caller)
	return caller, ok
}
