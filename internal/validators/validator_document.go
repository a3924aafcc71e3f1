// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-doc-keeper/models"
)

const (
	FieldTitle   = "title"
	FieldContent = "content"
	FieldAccess  = "access"
)

const (
	msgEmptyTitle          = "title cannot be empty."
	msgEmptyContent        = "content cannot be empty."
	msgInvalidAccess       = "access can only be public, private or role."
	msgEmptyDocumentUpdate = "No fields provided for update."
)

type DocumentValidator struct {
}

func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DocumentCreate:
		return v.validateDocumentCreate(ctx, value, fields...)
	case *models.DocumentCreate:
		return v.validateDocumentCreate(ctx, *value, fields...)

	case models.DocumentUpdate:
		return v.validateDocumentUpdate(ctx, value)
	case *models.DocumentUpdate:
		return v.validateDocumentUpdate(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

// validateDocumentCreate expects Access to be defaulted by the caller;
// an empty access is rejected.
func (v *DocumentValidator) validateDocumentCreate(ctx context.Context, doc models.DocumentCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldAccess}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(doc.Title) == "" {
				return newValidationError(f, msgEmptyTitle)
			}
		case FieldContent:
			if strings.TrimSpace(doc.Content) == "" {
				return newValidationError(f, msgEmptyContent)
			}
		case FieldAccess:
			if !doc.Access.IsValid() {
				return newValidationError(f, msgInvalidAccess)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateDocumentUpdate(ctx context.Context, update models.DocumentUpdate) error {
	if update.IsEmpty() {
		return newValidationError("", msgEmptyDocumentUpdate)
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return newValidationError(FieldTitle, msgEmptyTitle)
	}
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		return newValidationError(FieldContent, msgEmptyContent)
	}
	if update.Access != nil && !update.Access.IsValid() {
		return newValidationError(FieldAccess, msgInvalidAccess)
	}
	return nil
}
