// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MetaData describes the position of a returned page inside the full
// result set.
type MetaData struct {
	// TotalPages is the number of pages of the current size needed to
	// cover every matching row. It is never smaller than 1.
	TotalPages int64 `json:"totalPages"`

	// CurrentPage is the 1-based number of the returned page.
	CurrentPage int64 `json:"currentPage"`

	// PageSize is the number of rows actually returned.
	PageSize int64 `json:"pageSize"`
}

// DocumentsPage is a page of documents together with the total number of
// documents matching the query.
type DocumentsPage struct {
	Rows  []Document `json:"rows"`
	Count int64      `json:"count"`
}

// UsersPage is a page of users together with the total number of users.
type UsersPage struct {
	Rows  []User `json:"rows"`
	Count int64  `json:"count"`
}

// DocumentResponse is the body returned for a single document.
type DocumentResponse struct {
	Document Document `json:"document"`
}

// DocumentsResponse is the body returned for document collections
// (listing, search and per-user documents).
type DocumentsResponse struct {
	Documents DocumentsPage `json:"documents"`
	MetaData  MetaData      `json:"metaData"`
}

// UsersResponse is the body returned for the user listing.
type UsersResponse struct {
	Users    UsersPage `json:"users"`
	MetaData MetaData  `json:"metaData"`
}

// AuthResponse is returned on successful signup or login.
type AuthResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	UserID    int64  `json:"userId"`
	UserEmail string `json:"userEmail"`
}

// MessageResponse is a body carrying a single human-readable message.
// Every error response uses this shape.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is returned when an admin creates a user.
type UserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}
