// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package policy holds the access-control decisions of the document
// service. Every function is pure: it inspects already loaded resources and
// the caller identity and returns nil (allow) or a sentinel error (deny).
//
// Resource existence is checked by the caller before any of these
// functions are invoked.
package policy

import "github.com/MKhiriev/go-doc-keeper/models"

// CanReadDocument allows reading when the document is public, the caller
// owns it, the caller is an admin, or the document is role-scoped and the
// caller shares the owner's role.
func CanReadDocument(doc models.Document, caller models.Caller) error {
	switch {
	case doc.Access == models.AccessPublic:
		return nil
	case doc.OwnerID == caller.UserID:
		return nil
	case caller.IsAdmin():
		return nil
	case doc.Access == models.AccessRole && doc.OwnerRoleID == caller.RoleID:
		return nil
	}
	return ErrDocumentReadDenied
}

// CanWriteDocument allows updates by the owner or an admin.
func CanWriteDocument(doc models.Document, caller models.Caller) error {
	if doc.OwnerID == caller.UserID || caller.IsAdmin() {
		return nil
	}
	return ErrDocumentWriteDenied
}

// CheckOwnerUnchanged rejects any update that carries an owner id,
// regardless of the caller's role.
func CheckOwnerUnchanged(update models.DocumentUpdate) error {
	if update.OwnerID != nil {
		return ErrOwnerChange
	}
	return nil
}

// CanDeleteDocument applies write access and additionally protects
// documents owned by an admin: only that owner may delete them.
func CanDeleteDocument(doc models.Document, caller models.Caller) error {
	if err := CanWriteDocument(doc, caller); err != nil {
		return err
	}
	if doc.OwnerRoleID == models.RoleAdminID && doc.OwnerID != caller.UserID {
		return ErrAdminDocumentDelete
	}
	return nil
}

// IsSelfOrAdmin allows operations on targetUserID by that user or an admin.
func IsSelfOrAdmin(targetUserID int64, caller models.Caller) error {
	if caller.UserID == targetUserID || caller.IsAdmin() {
		return nil
	}
	return ErrNotSelfOrAdmin
}

// CanDeleteUser allows self-or-admin deletion of non-admin users.
// Admin users cannot be deleted by anyone, admins included.
func CanDeleteUser(target models.User, caller models.Caller) error {
	if err := IsSelfOrAdmin(target.ID, caller); err != nil {
		return err
	}
	if target.IsAdmin() {
		return ErrAdminUserDelete
	}
	return nil
}

// ScopeUserUpdate checks a user update against the caller and returns the
// part of it the caller is allowed to apply.
//
// Users update their own profile fields. An admin updating another user may
// change the role only, and must provide it. An admin updating itself may
// change both.
func ScopeUserUpdate(targetUserID int64, update models.UserUpdate, caller models.Caller) (models.UserUpdate, error) {
	if update.ID != nil {
		return models.UserUpdate{}, ErrUserIDChange
	}
	if err := IsSelfOrAdmin(targetUserID, caller); err != nil {
		return models.UserUpdate{}, err
	}

	if caller.UserID == targetUserID {
		if caller.IsAdmin() {
			return update, nil
		}
		if update.RoleID != nil {
			return models.UserUpdate{}, ErrRoleChangeDenied
		}
		return update.ProfileOnly(), nil
	}

	if update.RoleID == nil {
		return models.UserUpdate{}, ErrRoleIDRequired
	}
	return models.UserUpdate{RoleID: update.RoleID}, nil
}

// CanMutateRole rejects updates and deletions of the reserved roles.
func CanMutateRole(role models.Role) error {
	if role.IsReserved() {
		return ErrReservedRole
	}
	return nil
}

// CheckSignup rejects self signups that carry an explicit id or request
// the admin role.
func CheckSignup(request models.SignupRequest) error {
	if request.ID != nil {
		return ErrSignupWithID
	}
	if request.RoleID != nil && *request.RoleID == models.RoleAdminID {
		return ErrSignupAsAdmin
	}
	return nil
}

// CheckUserCreate validates a user creation performed by an admin, which
// may assign any role but never an explicit id.
func CheckUserCreate(request models.SignupRequest) error {
	if request.ID != nil {
		return ErrSignupWithID
	}
	return nil
}

// RequireAdmin allows admin callers only.
func RequireAdmin(caller models.Caller) error {
	if caller.IsAdmin() {
		return nil
	}
	return ErrAdminRequired
}
