// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the go-doc-keeper REST API.
//
// [ServerAdapter] decouples callers such as cmd/client from the transport.
// The package ships an HTTP implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-doc-keeper/models"
)

// ServerAdapter defines transport-agnostic communication with the
// go-doc-keeper server. Implementations are responsible for serialisation,
// session token management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the session token attached to all subsequent
	// authenticated requests. An empty token clears it.
	SetToken(token string)

	// Token returns the session token currently stored, or an empty string.
	Token() string

	// Signup registers a new account and stores the returned token.
	Signup(ctx context.Context, request models.SignupRequest) (models.AuthResponse, error)

	// Login authenticates with username and password and stores the
	// returned token.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)

	// Logout ends the server-side session and clears the stored token.
	Logout(ctx context.Context) error

	CreateDocument(ctx context.Context, request models.DocumentCreate) (models.Document, error)
	GetDocument(ctx context.Context, id int64) (models.Document, error)
	ListDocuments(ctx context.Context, page models.Page) (models.DocumentsResponse, error)
	SearchDocuments(ctx context.Context, term string, page models.Page) (models.DocumentsResponse, error)
	UpdateDocument(ctx context.Context, id int64, update models.DocumentUpdate) (models.Document, error)
	DeleteDocument(ctx context.Context, id int64) error

	ListUsers(ctx context.Context, page models.Page) (models.UsersResponse, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUserDocuments(ctx context.Context, ownerID int64, page models.Page) (models.DocumentsResponse, error)

	ListRoles(ctx context.Context) ([]models.Role, error)
	CreateRole(ctx context.Context, title string) (models.Role, error)

	// Version returns the version string reported by the server.
	Version(ctx context.Context) (string, error)
}
