// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/query"
	"github.com/MKhiriev/go-doc-keeper/models"
)

type documentRepository struct {
	*DB
}

// NewDocumentRepository returns a [DocumentRepository] backed by db.
func NewDocumentRepository(db *DB) DocumentRepository {
	return &documentRepository{DB: db}
}

func (d *documentRepository) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx).With().Str("func", "documentRepository.CreateDocument").Logger()

	q, args, err := d.buildInsertDocumentQuery(doc)
	if err != nil {
		log.Err(err).Msg("error building insert document query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = d.QueryRowContext(ctx, q, args...).Scan(&id); err != nil {
		// owner deleted between authentication and insert
		if d.errorClassificator.Classify(err).Is(ForeignKeyViolation) {
			return models.Document{}, ErrUserNotFound
		}
		log.Err(err).Msg("error inserting document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return d.FindDocumentByID(ctx, id)
}

func (d *documentRepository) FindDocumentByID(ctx context.Context, id int64) (models.Document, error) {
	log := logger.FromContext(ctx).With().Str("func", "documentRepository.FindDocumentByID").Logger()

	q, args, err := d.buildSelectDocumentQuery(id)
	if err != nil {
		log.Err(err).Msg("error building select document query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	doc, err := scanDocument(d.QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, ErrDocumentNotFound
	}
	if err != nil {
		log.Err(err).Msg("error scanning document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doc, nil
}

// ListDocuments returns the page of documents selected by dq together with
// the number of documents matching its filter.
func (d *documentRepository) ListDocuments(ctx context.Context, dq query.DocumentQuery) (models.DocumentsPage, error) {
	log := logger.FromContext(ctx).With().Str("func", "documentRepository.ListDocuments").Logger()

	countQuery, countArgs, err := d.buildCountDocumentsQuery(dq.Filter)
	if err != nil {
		log.Err(err).Msg("error building count documents query")
		return models.DocumentsPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = d.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		log.Err(err).Msg("error counting documents")
		return models.DocumentsPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	q, args, err := d.buildSelectDocumentsQuery(dq)
	if err != nil {
		log.Err(err).Msg("error building select documents query")
		return models.DocumentsPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := d.QueryContext(ctx, q, args...)
	if err != nil {
		log.Err(err).Msg("error selecting documents")
		return models.DocumentsPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0, dq.Page.Limit)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			log.Err(err).Msg("error scanning documents")
			return models.DocumentsPage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		docs = append(docs, doc)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Msg("error iterating documents")
		return models.DocumentsPage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return models.DocumentsPage{Rows: docs, Count: count}, nil
}

func (d *documentRepository) UpdateDocument(ctx context.Context, id int64, update models.DocumentUpdate) (models.Document, error) {
	log := logger.FromContext(ctx).With().Str("func", "documentRepository.UpdateDocument").Logger()

	q, args, err := d.buildUpdateDocumentQuery(id, update)
	if errors.Is(err, ErrNothingToUpdate) {
		return models.Document{}, err
	}
	if err != nil {
		log.Err(err).Msg("error building update document query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := d.ExecContext(ctx, q, args...)
	if err != nil {
		log.Err(err).Msg("error updating document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if err = requireAffected(result, ErrDocumentNotFound); err != nil {
		return models.Document{}, err
	}

	return d.FindDocumentByID(ctx, id)
}

func (d *documentRepository) DeleteDocument(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).With().Str("func", "documentRepository.DeleteDocument").Logger()

	q, args, err := d.buildDeleteQuery(models.Document{}.TableName(), id)
	if err != nil {
		log.Err(err).Msg("error building delete document query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := d.ExecContext(ctx, q, args...)
	if err != nil {
		log.Err(err).Msg("error deleting document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrDocumentNotFound)
}

func scanDocument(row rowScanner) (models.Document, error) {
	var (
		doc    models.Document
		access string
	)

	err := row.Scan(
		&doc.ID,
		&doc.Title,
		&doc.Content,
		&access,
		&doc.OwnerID,
		&doc.OwnerRoleID,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	doc.Access = models.Access(access)

	return doc, err
}
