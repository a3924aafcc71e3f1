// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClass is the kind of integrity violation reported by the database.
type ErrorClass int

const (
	// Unclassified covers every error that is not an integrity violation,
	// including connection failures and syntax errors.
	Unclassified ErrorClass = iota
	UniqueViolation
	ForeignKeyViolation
	CheckViolation
	NotNullViolation
)

// Violation is the result of [ErrorClassificator.Classify].
type Violation struct {
	Class ErrorClass

	// Constraint identifies the violated constraint. PostgreSQL reports the
	// constraint name (users_username_key), SQLite the failing columns
	// (users.username). It may be empty.
	Constraint string
}

// Is reports whether v is of class c.
func (v Violation) Is(c ErrorClass) bool {
	return v.Class == c
}

// On reports whether the violated constraint mentions column.
func (v Violation) On(column string) bool {
	return v.Constraint != "" && strings.Contains(v.Constraint, column)
}

// ErrorClassificator turns driver-specific errors into a [Violation].
type ErrorClassificator interface {
	Classify(err error) Violation
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError].
func (c *PostgresErrorClassifier) Classify(err error) Violation {
	if err == nil {
		return Violation{}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Violation{}
}

// ClassifyPgError maps a *pgconn.PgError to a [Violation] based on the
// PostgreSQL error code (class 23, integrity constraint violations).
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) Violation {
	v := Violation{Constraint: pgErr.ConstraintName}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		v.Class = UniqueViolation
	case pgerrcode.ForeignKeyViolation,
		pgerrcode.RestrictViolation:
		v.Class = ForeignKeyViolation
	case pgerrcode.CheckViolation:
		v.Class = CheckViolation
	case pgerrcode.NotNullViolation,
		pgerrcode.NullValueNotAllowedDataException:
		v.Class = NotNullViolation
	default:
		v.Class = Unclassified
	}

	return v
}

// sqliteForeignKeyMessage is the text SQLite reports for every foreign key
// failure, whatever the extended code.
const sqliteForeignKeyMessage = "FOREIGN KEY constraint failed"

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite using the
// extended result codes of mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) Violation {
	if err == nil {
		return Violation{}
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Violation{}
	}

	// "UNIQUE constraint failed: users.username"
	v := Violation{}
	if _, columns, ok := strings.Cut(sqliteErr.Error(), ": "); ok {
		v.Constraint = columns
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique,
		sqlite3.ErrConstraintPrimaryKey:
		v.Class = UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		v.Class = ForeignKeyViolation
	case sqlite3.ErrConstraintTrigger:
		// ON DELETE RESTRICT is enforced as a trigger action
		if strings.Contains(sqliteErr.Error(), sqliteForeignKeyMessage) {
			v.Class = ForeignKeyViolation
		}
	case sqlite3.ErrConstraintCheck:
		v.Class = CheckViolation
	case sqlite3.ErrConstraintNotNull:
		v.Class = NotNullViolation
	}

	return v
}
