// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-doc-keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API.
package app

// Authentication.
const (
	// MsgNoTokenProvided is returned when a protected route is called
	// without a bearer token.
	MsgNoTokenProvided = "Authentication is required. No token provided."

	// MsgInvalidToken is returned when the token signature, issuer or
	// expiry cannot be verified.
	MsgInvalidToken = "Invalid token. Please log in again."

	// MsgSessionExpired is returned when a valid token is no longer the
	// active session of its user (logged out, replaced or user deleted).
	MsgSessionExpired = "Your session has expired. Please log in again."

	// MsgInvalidLoginPassword is returned when the supplied username and
	// password do not match.
	MsgInvalidLoginPassword = "Incorrect username and password combination!"

	MsgSignedUp    = "You have successfully signed up!"
	MsgSignedIn    = "You have successfully signed in!"
	MsgLoggedOut   = "You have successfully logged out"
	MsgUserCreated = "User created successfully."
)

// Authorization.
const (
	MsgDocumentReadDenied  = "You are unauthorized."
	MsgActionRestricted    = "You are restricted from performing this action."
	MsgOwnerChange         = "You cannot update ownerId."
	MsgNotAuthorized       = "You are not authorized!"
	MsgUserIDChange        = "You cannot update user id."
	MsgRoleChangeDenied    = "Only an admin can change a user's role."
	MsgAdminUserDelete     = "You can not delete an admin!"
	MsgAdminDocumentDelete = "You can not delete an admin's document!"
	MsgReservedRole        = "You cannot perform any action on admin or regular role."
	MsgSignupWithID        = "Sorry, You can't pass an id."
	MsgSignupAsAdmin       = "You can't sign up as an admin."
	MsgRoleIDRequired      = "No role id provided."
)

// Request parameters.
const (
	MsgInvalidLimit    = "Enter a valid number for limit within the range 1 - 10."
	MsgInvalidOffset   = "Enter a valid number for offset starting from 0."
	MsgEmptySearchTerm = "Enter a search term."

	// MsgNoResultsFound is a format string taking the search term.
	MsgNoResultsFound = "No results found for %s."

	// MsgInvalidID is returned when a path id is not a positive integer.
	MsgInvalidID = "Enter a valid id."

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "Invalid data provided."
)

// Resources.
const (
	MsgUserNotFound     = "User not found."
	MsgDocumentNotFound = "Document Not found."

	MsgRoleNotFound    = "Role not found."
	MsgUsernameExists  = "Sorry, username already exists."
	MsgEmailExists     = "Sorry, email already exists."
	MsgRoleTitleExists = "Role title already exists."
	MsgUnknownRole     = "Role does not exist."
	MsgRoleInUse       = "Role is assigned to users."
	MsgUserDeleted     = "User deleted successfully."
	MsgDocumentDeleted = "Document successfully deleted!"
	MsgRoleDeleted     = "Role deleted successfully."
	MsgNothingToUpdate = "No fields provided for update."
	MsgRouteNotFound   = "Route not found."
)

// MsgInternalServerError is returned when an unexpected server-side failure
// occurs that the client cannot resolve.
const MsgInternalServerError = "Internal server error."
