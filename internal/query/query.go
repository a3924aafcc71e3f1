// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-doc-keeper/models"
)

const (
	MinLimit     int64 = 1
	MaxLimit     int64 = 10
	DefaultLimit       = MaxLimit
)

// DocumentQuery is a filtered, ordered and paginated document query.
type DocumentQuery struct {
	Filter  Filter
	OrderBy []Order
	Page    models.Page
}

// Visibility returns the filter restricting documents to those caller may
// read: everything for admins, otherwise own documents, public documents
// and role-scoped documents of owners sharing the caller's role.
func Visibility(caller models.Caller) Filter {
	if caller.IsAdmin() {
		return All{}
	}

	return Or{
		Eq{Field: FieldOwnerID, Value: caller.UserID},
		Eq{Field: FieldAccess, Value: string(models.AccessPublic)},
		And{
			Eq{Field: FieldAccess, Value: string(models.AccessRole)},
			Eq{Field: FieldOwnerRoleID, Value: caller.RoleID},
		},
	}
}

// ForDocumentList builds the query of the document collection listing.
func ForDocumentList(caller models.Caller, page models.Page) DocumentQuery {
	return DocumentQuery{
		Filter:  Visibility(caller),
		OrderBy: NewestFirst,
		Page:    page,
	}
}

// ForUserDocuments builds the query listing documents owned by ownerID.
// The owner and admins see all of them, everybody else only public ones.
func ForUserDocuments(ownerID int64, caller models.Caller, page models.Page) DocumentQuery {
	var filter Filter = Eq{Field: FieldOwnerID, Value: ownerID}
	if caller.UserID != ownerID && !caller.IsAdmin() {
		filter = And{
			filter,
			Eq{Field: FieldAccess, Value: string(models.AccessPublic)},
		}
	}

	return DocumentQuery{
		Filter:  filter,
		OrderBy: NewestFirst,
		Page:    page,
	}
}

// ForSearch builds a case-insensitive substring search over title and
// content, restricted to documents visible to caller. The term is trimmed
// and must not be empty. LIKE wildcards in term are not escaped.
func ForSearch(term string, caller models.Caller, page models.Page) (DocumentQuery, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return DocumentQuery{}, ErrEmptySearchTerm
	}

	pattern := ContainsPattern(term)
	var filter Filter = Or{
		ILike{Field: FieldTitle, Pattern: pattern},
		ILike{Field: FieldContent, Pattern: pattern},
	}
	if !caller.IsAdmin() {
		filter = And{filter, Visibility(caller)}
	}

	return DocumentQuery{
		Filter:  filter,
		OrderBy: NewestFirst,
		Page:    page,
	}, nil
}

// ContainsPattern wraps term into a LIKE pattern matching any value that
// contains it.
func ContainsPattern(term string) string {
	return "%" + term + "%"
}

// ParseLimitOffset validates raw limit and offset query parameters.
// An empty limit defaults to [DefaultLimit], an empty offset to 0.
func ParseLimitOffset(rawLimit, rawOffset string) (models.Page, error) {
	page := models.Page{Limit: DefaultLimit}

	if rawLimit = strings.TrimSpace(rawLimit); rawLimit != "" {
		limit, err := strconv.ParseInt(rawLimit, 10, 64)
		if err != nil || limit < MinLimit || limit > MaxLimit {
			return models.Page{}, ErrInvalidLimit
		}
		page.Limit = limit
	}

	if rawOffset = strings.TrimSpace(rawOffset); rawOffset != "" {
		offset, err := strconv.ParseInt(rawOffset, 10, 64)
		if err != nil || offset < 0 {
			return models.Page{}, ErrInvalidOffset
		}
		page.Offset = offset
	}

	return page, nil
}
