// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-doc-keeper/models"
)

const (
	FieldUsername  = "username"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRoleID    = "roleId"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 20
	nameMinLen     = 2
	nameMaxLen     = 20
	passwordMinLen = 6
)

const (
	msgInvalidUsername  = "Sorry, username must be between 3 to 20 characters."
	msgInvalidFirstName = "Sorry, first name must be between 2 to 20 characters."
	msgInvalidLastName  = "Sorry, last name must be between 2 to 20 characters."
	msgInvalidEmail     = "Invalid email."
	msgInvalidPassword  = "Password must be at least 6 characters."
	msgInvalidRoleID    = "Invalid role id."
	msgEmptyUserUpdate  = "No fields provided for update."
)

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(ctx, value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldFirstName, FieldLastName, FieldEmail, FieldPassword, FieldRoleID}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if !lengthBetween(user.Username, usernameMinLen, usernameMaxLen) {
				return newValidationError(f, msgInvalidUsername)
			}
		case FieldFirstName:
			if !lengthBetween(user.FirstName, nameMinLen, nameMaxLen) {
				return newValidationError(f, msgInvalidFirstName)
			}
		case FieldLastName:
			if !lengthBetween(user.LastName, nameMinLen, nameMaxLen) {
				return newValidationError(f, msgInvalidLastName)
			}
		case FieldEmail:
			if !isValidEmail(user.Email) {
				return newValidationError(f, msgInvalidEmail)
			}
		case FieldPassword:
			if utf8.RuneCountInString(user.Password) < passwordMinLen {
				return newValidationError(f, msgInvalidPassword)
			}
		case FieldRoleID:
			if user.RoleID <= 0 {
				return newValidationError(f, msgInvalidRoleID)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUserUpdate checks only the fields present in the update.
func (v *UserValidator) validateUserUpdate(ctx context.Context, update models.UserUpdate, fields ...string) error {
	if update.IsEmpty() {
		return newValidationError("", msgEmptyUserUpdate)
	}

	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldFirstName, FieldLastName, FieldEmail, FieldPassword, FieldRoleID}
	}

	user := models.User{}
	present := make([]string, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if update.Username != nil {
				user.Username = *update.Username
				present = append(present, f)
			}
		case FieldFirstName:
			if update.FirstName != nil {
				user.FirstName = *update.FirstName
				present = append(present, f)
			}
		case FieldLastName:
			if update.LastName != nil {
				user.LastName = *update.LastName
				present = append(present, f)
			}
		case FieldEmail:
			if update.Email != nil {
				user.Email = *update.Email
				present = append(present, f)
			}
		case FieldPassword:
			if update.Password != nil {
				user.Password = *update.Password
				present = append(present, f)
			}
		case FieldRoleID:
			if update.RoleID != nil {
				user.RoleID = *update.RoleID
				present = append(present, f)
			}
		default:
			return ErrUnknownField
		}
	}

	if len(present) == 0 {
		return nil
	}
	return v.validateUser(ctx, user, present...)
}

func (v *UserValidator) validateLoginRequest(ctx context.Context, request models.LoginRequest) error {
	if strings.TrimSpace(request.Username) == "" {
		return newValidationError(FieldUsername, msgInvalidUsername)
	}
	if request.Password == "" {
		return newValidationError(FieldPassword, msgInvalidPassword)
	}
	return nil
}

func lengthBetween(s string, minLen, maxLen int) bool {
	n := utf8.RuneCountInString(s)
	return n >= minLen && n <= maxLen
}

// isValidEmail accepts a bare address only, without a display name.
func isValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	if addr.Address != email {
		return false
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	return strings.Contains(domain, ".")
}
