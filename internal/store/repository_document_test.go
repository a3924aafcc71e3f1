// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/query"
	"github.com/MKhiriev/go-doc-keeper/models"
)

var documentResultColumns = []string{"id", "title", "content", "access", "owner_id", "role_id", "created_at", "updated_at"}

func TestDocumentRepository_FindDocumentByID(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM documents d JOIN users u ON u.id = d.owner_id WHERE d.id = \\$1").
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(documentResultColumns).
			AddRow(int64(8), "Title", "Body", "role", int64(4), int64(3), now, now))
	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(documentResultColumns))

	repo := NewDocumentRepository(db)

	got, err := repo.FindDocumentByID(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, models.AccessRole, got.Access)
	assert.Equal(t, int64(4), got.OwnerID)
	assert.Equal(t, int64(3), got.OwnerRoleID)

	_, err = repo.FindDocumentByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_ListDocuments(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)
	now := time.Now()
	caller := models.Caller{UserID: 4, RoleID: 2}

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM documents d JOIN users u ON u.id = d.owner_id WHERE").
		WithArgs(int64(4), "public", "role", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(6)))
	mock.ExpectQuery("SELECT (.+) ORDER BY d.created_at DESC, d.id DESC LIMIT 2 OFFSET 2").
		WithArgs(int64(4), "public", "role", int64(2)).
		WillReturnRows(sqlmock.NewRows(documentResultColumns).
			AddRow(int64(3), "a", "b", "public", int64(1), int64(2), now, now).
			AddRow(int64(2), "c", "d", "private", int64(4), int64(2), now, now))

	got, err := NewDocumentRepository(db).ListDocuments(context.Background(),
		query.ForDocumentList(caller, models.Page{Limit: 2, Offset: 2}))
	require.NoError(t, err)
	assert.Equal(t, int64(6), got.Count)
	assert.Len(t, got.Rows, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_ListDocuments_CountFails(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)
	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("boom"))

	_, err := NewDocumentRepository(db).ListDocuments(context.Background(),
		query.ForDocumentList(models.Caller{UserID: 1, RoleID: 1}, models.Page{Limit: 10}))
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_UpdateAndDelete(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)
	title := "New"

	mock.ExpectExec("UPDATE documents SET title = \\$1, updated_at = CURRENT_TIMESTAMP WHERE id = \\$2").
		WithArgs("New", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM documents WHERE id = \\$1").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewDocumentRepository(db)

	_, err := repo.UpdateDocument(context.Background(), 5, models.DocumentUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	assert.NoError(t, repo.DeleteDocument(context.Background(), 5))

	assert.NoError(t, mock.ExpectationsWereMet())
}
