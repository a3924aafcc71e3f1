// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/mock"
	"github.com/MKhiriev/go-doc-keeper/internal/policy"
	"github.com/MKhiriev/go-doc-keeper/internal/query"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/MKhiriev/go-doc-keeper/models"
)

func newTestDocumentService(t *testing.T) (DocumentService, *mock.MockDocumentRepository, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	docs := mock.NewMockDocumentRepository(ctrl)
	users := mock.NewMockUserRepository(ctrl)
	return NewDocumentService(docs, users, logger.Nop()), docs, users
}

func TestDocumentService_CreateDocument(t *testing.T) {
	t.Run("owner forced and access defaulted", func(t *testing.T) {
		svc, docs, _ := newTestDocumentService(t)
		docs.EXPECT().CreateDocument(gomock.Any(), models.Document{
			Title: "T", Content: "C", Access: models.AccessPublic, OwnerID: 4,
		}).Return(models.Document{ID: 1, OwnerID: 4, Access: models.AccessPublic}, nil)

		got, err := svc.CreateDocument(ctxWithCaller(4, 2), models.DocumentCreate{Title: "T", Content: "C"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("invalid access", func(t *testing.T) {
		svc, _, _ := newTestDocumentService(t)
		_, err := svc.CreateDocument(ctxWithCaller(4, 2), models.DocumentCreate{Title: "T", Content: "C", Access: "secret"})
		_, ok := validators.AsValidationError(err)
		assert.True(t, ok)
	})
}

func TestDocumentService_GetDocument_PrivateScenario(t *testing.T) {
	private := models.Document{ID: 3, OwnerID: 10, OwnerRoleID: 2, Access: models.AccessPrivate}

	svc, docs, _ := newTestDocumentService(t)
	docs.EXPECT().FindDocumentByID(gomock.Any(), int64(3)).Return(private, nil).Times(2)

	_, err := svc.GetDocument(ctxWithCaller(11, 2), 3)
	assert.ErrorIs(t, err, policy.ErrDocumentReadDenied)

	got, err := svc.GetDocument(ctxWithCaller(1, models.RoleAdminID), 3)
	require.NoError(t, err)
	assert.Equal(t, private, got)
}

func TestDocumentService_GetDocument_NotFound(t *testing.T) {
	svc, docs, _ := newTestDocumentService(t)
	docs.EXPECT().FindDocumentByID(gomock.Any(), int64(3)).Return(models.Document{}, store.ErrDocumentNotFound)

	_, err := svc.GetDocument(ctxWithCaller(11, 2), 3)
	assert.ErrorIs(t, err, store.ErrDocumentNotFound)
}

func TestDocumentService_ListDocuments_UsesVisibility(t *testing.T) {
	svc, docs, _ := newTestDocumentService(t)
	caller := models.Caller{UserID: 4, RoleID: 3}
	page := models.Page{Limit: 5}

	docs.EXPECT().ListDocuments(gomock.Any(), query.ForDocumentList(caller, page)).
		Return(models.DocumentsPage{Count: 1, Rows: []models.Document{{ID: 1}}}, nil)

	got, err := svc.ListDocuments(ctxWithCaller(caller.UserID, caller.RoleID), page)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Count)
}

func TestDocumentService_ListUserDocuments(t *testing.T) {
	svc, docs, users := newTestDocumentService(t)
	page := models.Page{Limit: 10}
	caller := models.Caller{UserID: 5, RoleID: 2}

	users.EXPECT().FindUserByID(gomock.Any(), int64(4)).Return(models.User{ID: 4}, nil)
	docs.EXPECT().ListDocuments(gomock.Any(), query.ForUserDocuments(4, caller, page)).Return(models.DocumentsPage{}, nil)
	users.EXPECT().FindUserByID(gomock.Any(), int64(8)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.ListUserDocuments(ctxWithCaller(5, 2), 4, page)
	require.NoError(t, err)

	_, err = svc.ListUserDocuments(ctxWithCaller(5, 2), 8, page)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestDocumentService_SearchDocuments(t *testing.T) {
	t.Run("no results", func(t *testing.T) {
		svc, docs, _ := newTestDocumentService(t)
		docs.EXPECT().ListDocuments(gomock.Any(), gomock.Any()).Return(models.DocumentsPage{Rows: []models.Document{}}, nil)

		_, err := svc.SearchDocuments(ctxWithCaller(4, 2), models.SearchRequest{Term: "  zebra ", Page: models.Page{Limit: 10}})
		var noResults *NoResultsError
		require.True(t, errors.As(err, &noResults))
		assert.Equal(t, "zebra", noResults.Term)
	})

	t.Run("empty term", func(t *testing.T) {
		svc, _, _ := newTestDocumentService(t)
		_, err := svc.SearchDocuments(ctxWithCaller(4, 2), models.SearchRequest{Term: "   "})
		assert.ErrorIs(t, err, query.ErrEmptySearchTerm)
	})

	t.Run("found", func(t *testing.T) {
		svc, docs, _ := newTestDocumentService(t)
		docs.EXPECT().ListDocuments(gomock.Any(), gomock.Any()).
			Return(models.DocumentsPage{Count: 1, Rows: []models.Document{{ID: 2}}}, nil)

		got, err := svc.SearchDocuments(ctxWithCaller(4, 2), models.SearchRequest{Term: "go", Page: models.Page{Limit: 10}})
		require.NoError(t, err)
		assert.Len(t, got.Rows, 1)
	})
}

func TestDocumentService_UpdateDocument(t *testing.T) {
	doc := models.Document{ID: 3, OwnerID: 4, OwnerRoleID: 2, Access: models.AccessPublic}
	title := "New"

	t.Run("owner", func(t *testing.T) {
		svc, docs, _ := newTestDocumentService(t)
		docs.EXPECT().FindDocumentByID(gomock.Any(), int64(3)).Return(doc, nil)
		docs.EXPECT().UpdateDocument(gomock.Any(), int64(3), models.DocumentUpdate{Title: &title}).
			Return(models.Document{ID: 3, Title: title}, nil)

		got, err := svc.UpdateDocument(ctxWithCaller(4, 2), 3, models.DocumentUpdate{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "New", got.Title)
	})

	t.Run("owner change rejected for admin too", func(t *testing.T) {
		svc, docs, _ := newTestDocumentService(t)
		docs.EXPECT().FindDocumentByID(gomock.Any(), int64(3)).Return(doc, nil)
		owner := int64(1)

		_, err := svc.UpdateDocument(ctxWithCaller(1, models.RoleAdminID), 3, models.DocumentUpdate{OwnerID: &owner})
		assert.ErrorIs(t, err, policy.ErrOwnerChange)
	})

	t.Run("stranger", func(t *testing.T) {
		svc, docs, _ := newTestDocumentService(t)
		docs.EXPECT().FindDocumentByID(gomock.Any(), int64(3)).Return(doc, nil)

		_, err := svc.UpdateDocument(ctxWithCaller(9, 2), 3, models.DocumentUpdate{Title: &title})
		assert.ErrorIs(t, err, policy.ErrDocumentWriteDenied)
	})
}

func TestDocumentService_DeleteDocument_AdminOwned(t *testing.T) {
	adminDoc := models.Document{ID: 3, OwnerID: 1, OwnerRoleID: models.RoleAdminID}

	svc, docs, _ := newTestDocumentService(t)
	docs.EXPECT().FindDocumentByID(gomock.Any(), int64(3)).Return(adminDoc, nil).Times(2)
	docs.EXPECT().DeleteDocument(gomock.Any(), int64(3)).Return(nil)

	err := svc.DeleteDocument(ctxWithCaller(2, models.RoleAdminID), 3)
	assert.ErrorIs(t, err, policy.ErrAdminDocumentDelete)

	assert.NoError(t, svc.DeleteDocument(ctxWithCaller(1, models.RoleAdminID), 3))
}
