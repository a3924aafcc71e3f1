// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/policy"
	"github.com/MKhiriev/go-doc-keeper/internal/query"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/MKhiriev/go-doc-keeper/models"
)

type documentService struct {
	documentRepository store.DocumentRepository
	userRepository     store.UserRepository
	validator          validators.Validator
	logger             *logger.Logger
}

func NewDocumentService(documentRepository store.DocumentRepository, userRepository store.UserRepository, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		userRepository:     userRepository,
		validator:          validators.NewDocumentValidator(),
		logger:             logger,
	}
}

// CreateDocument stores a document owned by the caller. A missing access
// defaults to public.
func (s *documentService) CreateDocument(ctx context.Context, request models.DocumentCreate) (models.Document, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.Document{}, err
	}

	if request.Access == "" {
		request.Access = models.AccessPublic
	}
	if err = s.validator.Validate(ctx, request); err != nil {
		return models.Document{}, err
	}

	doc, err := s.documentRepository.CreateDocument(ctx, models.Document{
		Title:   request.Title,
		Content: request.Content,
		Access:  request.Access,
		OwnerID: caller.UserID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "documentService.CreateDocument").Msg("error creating document")
		return models.Document{}, fmt.Errorf("error creating document: %w", err)
	}

	return doc, nil
}

func (s *documentService) GetDocument(ctx context.Context, id int64) (models.Document, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.Document{}, err
	}

	doc, err := s.documentRepository.FindDocumentByID(ctx, id)
	if err != nil {
		return models.Document{}, err
	}

	if err = policy.CanReadDocument(doc, caller); err != nil {
		return models.Document{}, err
	}
	return doc, nil
}

func (s *documentService) ListDocuments(ctx context.Context, page models.Page) (models.DocumentsPage, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.DocumentsPage{}, err
	}

	return s.list(ctx, query.ForDocumentList(caller, page))
}

// ListUserDocuments lists the documents of ownerID visible to the caller.
// An unknown owner is reported as store.ErrUserNotFound.
func (s *documentService) ListUserDocuments(ctx context.Context, ownerID int64, page models.Page) (models.DocumentsPage, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.DocumentsPage{}, err
	}

	if _, err = s.userRepository.FindUserByID(ctx, ownerID); err != nil {
		return models.DocumentsPage{}, err
	}

	return s.list(ctx, query.ForUserDocuments(ownerID, caller, page))
}

// SearchDocuments matches the trimmed term against title and content of
// the documents visible to the caller. No match yields a *NoResultsError.
func (s *documentService) SearchDocuments(ctx context.Context, request models.SearchRequest) (models.DocumentsPage, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.DocumentsPage{}, err
	}

	q, err := query.ForSearch(request.Term, caller, request.Page)
	if err != nil {
		return models.DocumentsPage{}, err
	}

	docs, err := s.list(ctx, q)
	if err != nil {
		return models.DocumentsPage{}, err
	}
	if docs.Count == 0 {
		return models.DocumentsPage{}, &NoResultsError{Term: strings.TrimSpace(request.Term)}
	}
	return docs, nil
}

func (s *documentService) list(ctx context.Context, q query.DocumentQuery) (models.DocumentsPage, error) {
	docs, err := s.documentRepository.ListDocuments(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "documentService.list").Msg("error listing documents")
		return models.DocumentsPage{}, fmt.Errorf("error listing documents: %w", err)
	}
	return docs, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, id int64, update models.DocumentUpdate) (models.Document, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.Document{}, err
	}

	doc, err := s.documentRepository.FindDocumentByID(ctx, id)
	if err != nil {
		return models.Document{}, err
	}

	if err = policy.CanWriteDocument(doc, caller); err != nil {
		return models.Document{}, err
	}
	if err = policy.CheckOwnerUnchanged(update); err != nil {
		return models.Document{}, err
	}
	if err = s.validator.Validate(ctx, update); err != nil {
		return models.Document{}, err
	}

	updated, err := s.documentRepository.UpdateDocument(ctx, id, update)
	if err != nil {
		return models.Document{}, fmt.Errorf("error updating document: %w", err)
	}
	return updated, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, id int64) error {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return err
	}

	doc, err := s.documentRepository.FindDocumentByID(ctx, id)
	if err != nil {
		return err
	}

	if err = policy.CanDeleteDocument(doc, caller); err != nil {
		return err
	}

	if err = s.documentRepository.DeleteDocument(ctx, id); err != nil {
		return fmt.Errorf("error deleting document: %w", err)
	}
	return nil
}
