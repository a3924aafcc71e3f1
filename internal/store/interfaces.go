// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-doc-keeper/internal/query"
	"github.com/MKhiriev/go-doc-keeper/models"
)

// UserRepository persists users and their session tokens.
type UserRepository interface {
	// CreateUser inserts user (with an already hashed password) and returns
	// the stored row. Duplicate username or email yields [ErrUsernameExists]
	// or [ErrEmailExists], an unknown role [ErrUnknownRole].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns [ErrUserNotFound] when no row matches.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// FindUserByUsername returns [ErrUserNotFound] when no row matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// ListUsers returns a page of users ordered by id and the total count.
	ListUsers(ctx context.Context, page models.Page) (models.UsersPage, error)

	// UpdateUser applies the non-nil fields of update and returns the
	// updated row.
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the user and, by cascade, their documents.
	DeleteUser(ctx context.Context, id int64) error

	// SetToken stores the active session token. An empty token clears it.
	SetToken(ctx context.Context, id int64, token string) error
}

// RoleRepository persists roles.
type RoleRepository interface {
	CreateRole(ctx context.Context, role models.Role) (models.Role, error)
	FindRoleByID(ctx context.Context, id int64) (models.Role, error)
	ListRoles(ctx context.Context) ([]models.Role, error)
	UpdateRole(ctx context.Context, role models.Role) (models.Role, error)

	// DeleteRole returns [ErrRoleInUse] while users still reference the role.
	DeleteRole(ctx context.Context, id int64) error
}

// DocumentRepository persists documents. Every document is returned with
// the role of its owner.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc models.Document) (models.Document, error)
	FindDocumentByID(ctx context.Context, id int64) (models.Document, error)
	ListDocuments(ctx context.Context, q query.DocumentQuery) (models.DocumentsPage, error)
	UpdateDocument(ctx context.Context, id int64, update models.DocumentUpdate) (models.Document, error)
	DeleteDocument(ctx context.Context, id int64) error
}
