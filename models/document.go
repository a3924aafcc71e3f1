// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Access defines the visibility of a document.
type Access string

const (
	// AccessPublic documents are readable by every authenticated user.
	AccessPublic Access = "public"

	// AccessPrivate documents are readable only by their owner and admins.
	AccessPrivate Access = "private"

	// AccessRole documents are additionally readable by users sharing the
	// owner's role.
	AccessRole Access = "role"
)

// AllowedAccess lists every valid [Access] value.
var AllowedAccess = []Access{AccessPublic, AccessPrivate, AccessRole}

// IsValid reports whether a is one of the enumerated access values.
func (a Access) IsValid() bool {
	for _, allowed := range AllowedAccess {
		if a == allowed {
			return true
		}
	}
	return false
}

// Document is a piece of content owned by exactly one user.
type Document struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Access  Access `json:"access"`
	OwnerID int64  `json:"ownerId"`

	// OwnerRoleID is the role of the owner at query time. It is loaded
	// together with the document and used for role-scoped access checks.
	OwnerRoleID int64 `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}

// DocumentCreate is the payload of a document creation request.
// The owner is always the caller and never taken from the payload.
type DocumentCreate struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Access  Access `json:"access,omitempty"`
}

// DocumentUpdate describes a partial update of a document.
// Only non-nil fields are applied.
type DocumentUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Access  *Access `json:"access,omitempty"`

	// OwnerID is never applied; its presence in the payload is rejected.
	OwnerID *int64 `json:"ownerId,omitempty"`
}

// IsEmpty reports whether no updatable field is set.
func (u DocumentUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Access == nil
}
