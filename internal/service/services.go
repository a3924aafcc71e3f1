// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	DocumentService DocumentService
	RoleService     RoleService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	roleService, err := NewRoleService(storages.RoleRepository, cfg.Storage.Cache, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:     NewUserService(storages.UserRepository, cfg.App, logger),
		DocumentService: NewDocumentService(storages.DocumentRepository, storages.UserRepository, logger),
		RoleService:     roleService,
		AppInfoService:  appInfoService,
	}, nil
}

// callerFromContext returns the identity stored by the auth middleware.
func callerFromContext(ctx context.Context) (models.Caller, error) {
	caller, ok := utils.CallerFromContext(ctx)
	if !ok {
		return models.Caller{}, ErrNoCaller
	}
	return caller, nil
}

// hashPassword is the prepare-for-write step of every user write carrying a
// plain-text password.
func hashPassword(password string, cost int) (string, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return hash, nil
}
