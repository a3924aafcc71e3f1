// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrNoCaller            = errors.New("no caller identity in context")
	ErrInvalidToken        = errors.New("token is expired or invalid")
	ErrSessionExpired      = errors.New("token is not the active session")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// NoResultsError is returned by a search that matched no document.
type NoResultsError struct {
	Term string
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no results found for %q", e.Term)
}
