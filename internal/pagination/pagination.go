// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pagination computes page metadata for collection responses.
package pagination

import "github.com/MKhiriev/go-doc-keeper/models"

// Calculate returns the metadata of a page of returned rows taken from a
// result set of count rows with the given limit and offset.
//
// The current page is floor(offset/limit)+1. The page count is 1 when a
// single page covers the whole set, ceil(count/limit) otherwise.
func Calculate(count, limit, offset int64, returned int) models.MetaData {
	if limit <= 0 {
		return models.MetaData{TotalPages: 1, CurrentPage: 1, PageSize: int64(returned)}
	}

	totalPages := int64(1)
	if limit < count {
		totalPages = (count + limit - 1) / limit
	}

	return models.MetaData{
		TotalPages:  totalPages,
		CurrentPage: offset/limit + 1,
		PageSize:    int64(returned),
	}
}
