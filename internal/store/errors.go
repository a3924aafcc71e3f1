// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the requested id or
	// username.
	ErrUserNotFound = errors.New("user was not found")

	// ErrRoleNotFound is returned when no role matches the requested id.
	ErrRoleNotFound = errors.New("role was not found")

	// ErrDocumentNotFound is returned when no document matches the requested id.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrUsernameExists is returned when a write violates the unique
	// constraint on users.username.
	ErrUsernameExists = errors.New("username already exists")

	// ErrEmailExists is returned when a write violates the unique
	// constraint on users.email.
	ErrEmailExists = errors.New("email already exists")

	// ErrRoleTitleExists is returned when a write violates the unique
	// constraint on roles.title.
	ErrRoleTitleExists = errors.New("role title already exists")

	// ErrUnknownRole is returned when a user references a role that does
	// not exist.
	ErrUnknownRole = errors.New("role does not exist")

	// ErrRoleInUse is returned when a role that is still assigned to users
	// is deleted.
	ErrRoleInUse = errors.New("role is assigned to users")

	// ErrNothingToUpdate is returned when an update carries no column to set.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an unknown filter field).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned when the configured driver is neither
	// postgres nor sqlite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
