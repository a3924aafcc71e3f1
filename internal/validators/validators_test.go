// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptrString(s string) *string { return &s }
func ptrInt64(v int64) *int64    { return &v }
func ptrAccess(a models.Access) *models.Access {
	return &a
}

func validUser() models.User {
	return models.User{
		Username:  "jdoe",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "jdoe@example.com",
		Password:  "secret1",
		RoleID:    models.RoleRegularID,
	}
}

func requireValidationMessage(t *testing.T, err error, message string) {
	t.Helper()
	validationErr, ok := AsValidationError(err)
	require.True(t, ok, "expected *ValidationError, got %v", err)
	assert.Equal(t, message, validationErr.Message)
}

// ---------------------------------------------------------------------------
// UserValidator
// ---------------------------------------------------------------------------

func TestUserValidator_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	})

	t.Run("User value and pointer", func(t *testing.T) {
		u := validUser()
		require.NoError(t, v.Validate(ctx, u))
		require.NoError(t, v.Validate(ctx, &u))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validUser(), "nickname"), ErrUnknownField)
	})
}

func TestUserValidator_User(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(u *models.User)
		message string
	}{
		{"short username", func(u *models.User) { u.Username = "jd" }, msgInvalidUsername},
		{"long username", func(u *models.User) { u.Username = "abcdefghijklmnopqrstu" }, msgInvalidUsername},
		{"short first name", func(u *models.User) { u.FirstName = "J" }, msgInvalidFirstName},
		{"long last name", func(u *models.User) { u.LastName = "abcdefghijklmnopqrstu" }, msgInvalidLastName},
		{"missing email", func(u *models.User) { u.Email = "" }, msgInvalidEmail},
		{"malformed email", func(u *models.User) { u.Email = "not-an-email" }, msgInvalidEmail},
		{"display name email", func(u *models.User) { u.Email = "John <john@example.com>" }, msgInvalidEmail},
		{"email without domain dot", func(u *models.User) { u.Email = "john@localhost" }, msgInvalidEmail},
		{"short password", func(u *models.User) { u.Password = "12345" }, msgInvalidPassword},
		{"zero role", func(u *models.User) { u.RoleID = 0 }, msgInvalidRoleID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)
			requireValidationMessage(t, v.Validate(ctx, u), tt.message)
		})
	}

	t.Run("boundaries accepted", func(t *testing.T) {
		u := validUser()
		u.Username = "abc"
		u.FirstName = "Jo"
		u.LastName = "abcdefghijklmnopqrst"
		u.Password = "123456"
		require.NoError(t, v.Validate(ctx, u))
	})

	t.Run("multibyte names counted in runes", func(t *testing.T) {
		u := validUser()
		u.FirstName = "Юля"
		require.NoError(t, v.Validate(ctx, u))
	})

	t.Run("scoped to a single field", func(t *testing.T) {
		u := validUser()
		u.Password = ""
		require.NoError(t, v.Validate(ctx, u, FieldUsername, FieldEmail))
	})
}

func TestUserValidator_UserUpdate(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("empty update", func(t *testing.T) {
		requireValidationMessage(t, v.Validate(ctx, models.UserUpdate{}), msgEmptyUserUpdate)
	})

	t.Run("only present fields checked", func(t *testing.T) {
		err := v.Validate(ctx, models.UserUpdate{FirstName: ptrString("Jane")})
		require.NoError(t, err)
	})

	t.Run("present invalid field", func(t *testing.T) {
		err := v.Validate(ctx, &models.UserUpdate{Email: ptrString("broken")})
		requireValidationMessage(t, err, msgInvalidEmail)
	})

	t.Run("invalid role id", func(t *testing.T) {
		err := v.Validate(ctx, models.UserUpdate{RoleID: ptrInt64(-3)})
		requireValidationMessage(t, err, msgInvalidRoleID)
	})

	t.Run("short password", func(t *testing.T) {
		err := v.Validate(ctx, models.UserUpdate{Password: ptrString("123")})
		requireValidationMessage(t, err, msgInvalidPassword)
	})
}

func TestUserValidator_LoginRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.LoginRequest{Username: "jdoe", Password: "x"}))
	requireValidationMessage(t, v.Validate(ctx, models.LoginRequest{Password: "x"}), msgInvalidUsername)
	requireValidationMessage(t, v.Validate(ctx, &models.LoginRequest{Username: "jdoe"}), msgInvalidPassword)
}

// ---------------------------------------------------------------------------
// DocumentValidator
// ---------------------------------------------------------------------------

func TestDocumentValidator_Create(t *testing.T) {
	v := NewDocumentValidator()
	ctx := context.Background()

	valid := models.DocumentCreate{Title: "Title", Content: "Body", Access: models.AccessRole}
	require.NoError(t, v.Validate(ctx, valid))
	require.NoError(t, v.Validate(ctx, &valid))

	tests := []struct {
		name    string
		doc     models.DocumentCreate
		message string
	}{
		{"blank title", models.DocumentCreate{Title: "  ", Content: "Body", Access: models.AccessPublic}, msgEmptyTitle},
		{"empty content", models.DocumentCreate{Title: "T", Access: models.AccessPublic}, msgEmptyContent},
		{"unknown access", models.DocumentCreate{Title: "T", Content: "B", Access: "everyone"}, msgInvalidAccess},
		{"empty access", models.DocumentCreate{Title: "T", Content: "B"}, msgInvalidAccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireValidationMessage(t, v.Validate(ctx, tt.doc), tt.message)
		})
	}
}

func TestDocumentValidator_Update(t *testing.T) {
	v := NewDocumentValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.DocumentUpdate{Access: ptrAccess(models.AccessPrivate)}))

	requireValidationMessage(t, v.Validate(ctx, models.DocumentUpdate{}), msgEmptyDocumentUpdate)
	requireValidationMessage(t, v.Validate(ctx, models.DocumentUpdate{OwnerID: ptrInt64(3)}), msgEmptyDocumentUpdate)
	requireValidationMessage(t, v.Validate(ctx, models.DocumentUpdate{Title: ptrString("")}), msgEmptyTitle)
	requireValidationMessage(t, v.Validate(ctx, &models.DocumentUpdate{Content: ptrString(" ")}), msgEmptyContent)
	requireValidationMessage(t, v.Validate(ctx, models.DocumentUpdate{Access: ptrAccess("shared")}), msgInvalidAccess)
	require.ErrorIs(t, v.Validate(ctx, models.Document{}), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// RoleValidator
// ---------------------------------------------------------------------------

func TestRoleValidator(t *testing.T) {
	v := NewRoleValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Role{Title: "editor"}))
	requireValidationMessage(t, v.Validate(ctx, &models.Role{Title: " "}), msgEmptyRoleTitle)
	requireValidationMessage(t, v.Validate(ctx, models.Role{Title: strings.Repeat("a", 51)}), msgLongRoleTitle)
	require.ErrorIs(t, v.Validate(ctx, "editor"), ErrUnsupportedType)
}

func TestValidationError(t *testing.T) {
	err := newValidationError(FieldEmail, msgInvalidEmail)
	assert.EqualError(t, err, msgInvalidEmail)

	_, ok := AsValidationError(ErrUnknownField)
	assert.False(t, ok)
}
