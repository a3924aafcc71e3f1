// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields (Password, Token) are never serialized to JSON.
type User struct {
	// ID is the unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login name of the user.
	Username string `json:"username"`

	// FirstName is the given name of the user.
	FirstName string `json:"firstName"`

	// LastName is the family name of the user.
	LastName string `json:"lastName"`

	// Email is the unique e-mail address of the user.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password once the user
	// has been prepared for writing. It is plain text only between request
	// decoding and the service's prepare-for-write step.
	Password string `json:"-"`

	// RoleID references the role of the user. Defaults to [RoleRegularID].
	RoleID int64 `json:"roleId"`

	// Token is the currently active session token. An empty value means
	// the user has no active session (never logged in or logged out).
	Token string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the administrative role.
func (u User) IsAdmin() bool {
	return u.RoleID == RoleAdminID
}

// Caller returns the request identity of the user.
func (u User) Caller() Caller {
	return Caller{UserID: u.ID, RoleID: u.RoleID}
}

// SignupRequest is the payload of a signup (or admin-created user) request.
//
// ID and RoleID are pointers so that the presence of the keys in the JSON
// body can be detected: an explicit id is always rejected, and a self
// signup may not request the administrative role.
type SignupRequest struct {
	ID        *int64 `json:"id,omitempty"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	RoleID    *int64 `json:"roleId,omitempty"`
}

// ToUser converts the request into a [User] ready for validation.
// A missing role falls back to [RoleRegularID].
func (r SignupRequest) ToUser() User {
	roleID := RoleRegularID
	if r.RoleID != nil {
		roleID = *r.RoleID
	}

	return User{
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		RoleID:    roleID,
	}
}

// LoginRequest carries user credentials for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserUpdate describes a partial update of a user. Only non-nil fields are
// applied.
type UserUpdate struct {
	// ID is never applied; its presence in the payload is rejected.
	ID *int64 `json:"id,omitempty"`

	Username  *string `json:"username,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	RoleID    *int64  `json:"roleId,omitempty"`
}

// IsEmpty reports whether no updatable field is set.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil &&
		u.FirstName == nil &&
		u.LastName == nil &&
		u.Email == nil &&
		u.Password == nil &&
		u.RoleID == nil
}

// ProfileOnly returns a copy of the update restricted to the fields a user
// may change on their own profile.
func (u UserUpdate) ProfileOnly() UserUpdate {
	return UserUpdate{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.Password,
	}
}
