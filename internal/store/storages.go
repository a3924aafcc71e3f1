// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
)

// Storages groups every repository over a single database handle.
type Storages struct {
	UserRepository     UserRepository
	RoleRepository     RoleRepository
	DocumentRepository DocumentRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db), nil
}

// NewStoragesFromDB builds the repositories over an already opened db.
func NewStoragesFromDB(db *DB) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db),
		RoleRepository:     NewRoleRepository(db),
		DocumentRepository: NewDocumentRepository(db),
		db:                 db,
	}
}

// Close closes the underlying database handle.
func (s *Storages) Close() error {
	return s.db.Close()
}
