// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrNoToken is returned by the auth middleware when the request carries
	// neither an x-access-token nor an Authorization header.
	ErrNoToken = errors.New("no access token in request")

	// ErrInvalidPathID is returned when an {id} path parameter is not a
	// positive integer.
	ErrInvalidPathID = errors.New("invalid id path parameter")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
