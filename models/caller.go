// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Caller is the identity of the user performing the current request,
// derived from a verified bearer token.
type Caller struct {
	UserID int64
	RoleID int64
}

// IsAdmin reports whether the caller holds the administrative role.
func (c Caller) IsAdmin() bool {
	return c.RoleID == RoleAdminID
}
