// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import "errors"

var (
	ErrInvalidLimit    = errors.New("limit must be an integer within 1 - 10")
	ErrInvalidOffset   = errors.New("offset must be a non-negative integer")
	ErrEmptySearchTerm = errors.New("search term is empty")
)
