// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Reserved roles. Both rows are seeded by the first migration and can
// never be updated or deleted.
const (
	RoleAdminID   int64 = 1
	RoleRegularID int64 = 2

	RoleAdminTitle   = "admin"
	RoleRegularTitle = "regular"
)

// Role groups users for authorization purposes.
type Role struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Role model.
func (r Role) TableName() string {
	return "roles"
}

// IsReserved reports whether the role is one of the two built-in roles.
func (r Role) IsReserved() bool {
	switch {
	case r.ID == RoleAdminID, r.ID == RoleRegularID:
		return true
	case r.Title == RoleAdminTitle, r.Title == RoleRegularTitle:
		return true
	}
	return false
}
