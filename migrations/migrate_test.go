// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: goose's first statement fails
	err = Migrate(db, DialectPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil, DialectPostgres)
	assert.ErrorIs(t, err, ErrNilDB)
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assert.ErrorIs(t, Migrate(db, "oracle"), ErrUnsupportedDialect)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=1")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	require.NoError(t, Migrate(db, DialectSQLite))
	// idempotent
	require.NoError(t, Migrate(db, DialectSQLite))

	rows, err := db.Query("SELECT id, title FROM roles ORDER BY id")
	require.NoError(t, err)
	defer rows.Close()

	titles := map[int64]string{}
	for rows.Next() {
		var id int64
		var title string
		require.NoError(t, rows.Scan(&id, &title))
		titles[id] = title
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, map[int64]string{1: "admin", 2: "regular"}, titles)

	_, err = db.Exec(`INSERT INTO users (username, first_name, last_name, email, password, role_id)
		VALUES ('u1', 'Fi', 'La', 'u1@example.com', 'hash', 99)`)
	assert.Error(t, err, "foreign key on role_id must be enforced")

	_, err = db.Exec(`INSERT INTO users (username, first_name, last_name, email, password)
		VALUES ('u1', 'Fi', 'La', 'u1@example.com', 'hash')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO documents (title, content, access, owner_id) VALUES ('t', 'c', 'secret', 1)`)
	assert.Error(t, err, "access check constraint must be enforced")
}
