// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/query"
)

// documentFieldColumns maps filterable document fields to the columns of
// the documents/users join.
var documentFieldColumns = map[query.Field]string{
	query.FieldID:          "d.id",
	query.FieldOwnerID:     "d.owner_id",
	query.FieldOwnerRoleID: "u.role_id",
	query.FieldAccess:      "d.access",
	query.FieldTitle:       "d.title",
	query.FieldContent:     "d.content",
	query.FieldCreatedAt:   "d.created_at",
}

func documentColumn(field query.Field) (string, error) {
	column, ok := documentFieldColumns[field]
	if !ok {
		return "", fmt.Errorf("%w: unknown field %q", ErrBuildingSQLQuery, field)
	}
	return column, nil
}

// compileFilter translates f into a squirrel predicate. A nil predicate
// with a nil error means f matches every row.
func (db *DB) compileFilter(f query.Filter) (sq.Sqlizer, error) {
	switch f := f.(type) {
	case nil, query.All:
		return nil, nil

	case query.Eq:
		column, err := documentColumn(f.Field)
		if err != nil {
			return nil, err
		}
		return sq.Eq{column: f.Value}, nil

	case query.In:
		column, err := documentColumn(f.Field)
		if err != nil {
			return nil, err
		}
		// squirrel renders an empty slice as a false predicate
		return sq.Eq{column: f.Values}, nil

	case query.ILike:
		column, err := documentColumn(f.Field)
		if err != nil {
			return nil, err
		}
		// SQLite LIKE is already case-insensitive for ASCII and has no ILIKE
		if db.dialect == config.DriverSQLite {
			return sq.Like{column: f.Pattern}, nil
		}
		return sq.ILike{column: f.Pattern}, nil

	case query.And:
		parts, err := db.compileFilters(f)
		if err != nil {
			return nil, err
		}
		return sq.And(parts), nil

	case query.Or:
		parts, err := db.compileFilters(f)
		if err != nil {
			return nil, err
		}
		return sq.Or(parts), nil
	}

	return nil, fmt.Errorf("%w: unsupported filter %T", ErrBuildingSQLQuery, f)
}

func (db *DB) compileFilters(filters []query.Filter) ([]sq.Sqlizer, error) {
	parts := make([]sq.Sqlizer, 0, len(filters))
	for _, f := range filters {
		part, err := db.compileFilter(f)
		if err != nil {
			return nil, err
		}
		if part == nil {
			part = sq.Expr("1=1")
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func (db *DB) compileOrder(orders []query.Order) ([]string, error) {
	clauses := make([]string, 0, len(orders))
	for _, o := range orders {
		column, err := documentColumn(o.Field)
		if err != nil {
			return nil, err
		}
		if o.Desc {
			column += " DESC"
		} else {
			column += " ASC"
		}
		clauses = append(clauses, column)
	}
	return clauses, nil
}
