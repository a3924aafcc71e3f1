// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import "errors"

// Forbidden decisions.
var (
	ErrDocumentReadDenied  = errors.New("document is not visible to caller")
	ErrDocumentWriteDenied = errors.New("caller is neither document owner nor admin")
	ErrOwnerChange         = errors.New("document owner cannot be changed")
	ErrNotSelfOrAdmin      = errors.New("caller is neither target user nor admin")
	ErrUserIDChange        = errors.New("user id cannot be changed")
	ErrRoleChangeDenied    = errors.New("only admin can change user role")
	ErrAdminUserDelete     = errors.New("admin user cannot be deleted")
	ErrAdminDocumentDelete = errors.New("admin-owned document can only be deleted by its owner")
	ErrReservedRole        = errors.New("reserved role cannot be mutated")
	ErrAdminRequired       = errors.New("admin role required")
)

// Bad request decisions.
var (
	ErrSignupWithID   = errors.New("explicit id in signup payload")
	ErrSignupAsAdmin  = errors.New("signup with admin role")
	ErrRoleIDRequired = errors.New("role id required")
)
