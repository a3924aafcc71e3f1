// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want Violation
	}{
		{name: "nil", err: nil, want: Violation{}},
		{name: "not a pg error", err: errors.New("boom"), want: Violation{}},
		{
			name: "wrapped unique",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}),
			want: Violation{Class: UniqueViolation, Constraint: "users_email_key"},
		},
		{
			name: "restrict",
			err:  &pgconn.PgError{Code: pgerrcode.RestrictViolation},
			want: Violation{Class: ForeignKeyViolation},
		},
		{
			name: "check",
			err:  &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "documents_access_check"},
			want: Violation{Class: CheckViolation, Constraint: "documents_access_check"},
		},
		{
			name: "syntax",
			err:  &pgconn.PgError{Code: pgerrcode.SyntaxError},
			want: Violation{Class: Unclassified},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Violation{}, c.Classify(errors.New("boom")))

	v := c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey})
	assert.True(t, v.Is(ForeignKeyViolation))

	v = c.Classify(fmt.Errorf("wrapped: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.True(t, v.Is(UniqueViolation))
}

func TestSQLiteErrorClassifier_RestrictAndTrigger(t *testing.T) {
	ctx := context.Background()
	conn, err := sql.Open("sqlite3", sqliteDSN("file::memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetMaxOpenConns(1)

	for _, stmt := range []string{
		"CREATE TABLE teams (id INTEGER PRIMARY KEY)",
		"CREATE TABLE members (id INTEGER PRIMARY KEY, team_id INTEGER NOT NULL REFERENCES teams (id) ON DELETE RESTRICT)",
		"CREATE TABLE notes (id INTEGER PRIMARY KEY)",
		"CREATE TRIGGER notes_readonly BEFORE DELETE ON notes BEGIN SELECT RAISE(ABORT, 'notes are read-only'); END",
		"INSERT INTO teams (id) VALUES (1)",
		"INSERT INTO members (id, team_id) VALUES (1, 1)",
		"INSERT INTO notes (id) VALUES (1)",
	} {
		_, err = conn.ExecContext(ctx, stmt)
		require.NoError(t, err, stmt)
	}

	c := NewSQLiteErrorClassifier()

	_, err = conn.ExecContext(ctx, "DELETE FROM teams WHERE id = 1")
	var restrictErr sqlite3.Error
	require.ErrorAs(t, err, &restrictErr)
	assert.Equal(t, sqlite3.ErrConstraintTrigger, restrictErr.ExtendedCode)
	assert.True(t, c.Classify(fmt.Errorf("delete: %w", err)).Is(ForeignKeyViolation))

	_, err = conn.ExecContext(ctx, "DELETE FROM notes WHERE id = 1")
	var triggerErr sqlite3.Error
	require.ErrorAs(t, err, &triggerErr)
	assert.Equal(t, sqlite3.ErrConstraintTrigger, triggerErr.ExtendedCode)
	assert.True(t, c.Classify(err).Is(Unclassified))
}

func TestViolation_On(t *testing.T) {
	assert.True(t, Violation{Constraint: "users_username_key"}.On("username"))
	assert.True(t, Violation{Constraint: "users.username"}.On("username"))
	assert.False(t, Violation{Constraint: "users.username"}.On("email"))
	assert.False(t, Violation{}.On("email"))
}
