// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Page holds validated pagination parameters of a collection request.
type Page struct {
	// Limit is the maximum number of rows to return, in [1, 10].
	Limit int64

	// Offset is the number of rows to skip, never negative.
	Offset int64
}

// SearchRequest describes a document search.
type SearchRequest struct {
	// Term is the trimmed search term matched against title and content.
	Term string

	Page Page
}
