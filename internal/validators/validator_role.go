// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-doc-keeper/models"
)

const (
	roleTitleMaxLen = 50

	msgEmptyRoleTitle = "Role title cannot be empty."
	msgLongRoleTitle  = "Role title must be at most 50 characters."
)

type RoleValidator struct {
}

func NewRoleValidator() Validator {
	return &RoleValidator{}
}

func (v *RoleValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Role:
		return v.validateRole(value)
	case *models.Role:
		return v.validateRole(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *RoleValidator) validateRole(role models.Role) error {
	title := strings.TrimSpace(role.Title)
	if title == "" {
		return newValidationError(FieldTitle, msgEmptyRoleTitle)
	}
	if utf8.RuneCountInString(title) > roleTitleMaxLen {
		return newValidationError(FieldTitle, msgLongRoleTitle)
	}
	return nil
}
