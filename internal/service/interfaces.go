// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-doc-keeper/models"
)

// AuthService issues and verifies session tokens.
//
// A user has at most one active session: issuing a token stores it on the
// user, and a token is accepted only while it equals the stored one.
type AuthService interface {
	// Signup registers a regular user and opens a session for it.
	Signup(ctx context.Context, request models.SignupRequest) (models.User, models.Token, error)

	// CreateUser registers a user with any role on behalf of an admin
	// caller. No session is opened.
	CreateUser(ctx context.Context, request models.SignupRequest) (models.User, error)

	Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error)

	// Logout clears the session of the caller found in ctx.
	Logout(ctx context.Context) error

	// Authenticate verifies tokenString and returns the identity it carries.
	Authenticate(ctx context.Context, tokenString string) (models.Caller, error)
}

// UserService manages user accounts. Every method reads the caller from ctx.
type UserService interface {
	ListUsers(ctx context.Context, page models.Page) (models.UsersPage, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// DocumentService manages documents under the access policy. Every method
// reads the caller from ctx.
type DocumentService interface {
	CreateDocument(ctx context.Context, request models.DocumentCreate) (models.Document, error)
	GetDocument(ctx context.Context, id int64) (models.Document, error)
	ListDocuments(ctx context.Context, page models.Page) (models.DocumentsPage, error)
	ListUserDocuments(ctx context.Context, ownerID int64, page models.Page) (models.DocumentsPage, error)
	SearchDocuments(ctx context.Context, request models.SearchRequest) (models.DocumentsPage, error)
	UpdateDocument(ctx context.Context, id int64, update models.DocumentUpdate) (models.Document, error)
	DeleteDocument(ctx context.Context, id int64) error
}

// RoleService manages roles. The reserved roles cannot be changed.
type RoleService interface {
	CreateRole(ctx context.Context, role models.Role) (models.Role, error)
	GetRole(ctx context.Context, id int64) (models.Role, error)
	ListRoles(ctx context.Context) ([]models.Role, error)
	UpdateRole(ctx context.Context, role models.Role) (models.Role, error)
	DeleteRole(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
