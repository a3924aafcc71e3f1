// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/policy"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/MKhiriev/go-doc-keeper/models"
)

// roleService serves roles through a read-through LRU cache keyed by id.
// Every write to a role updates or evicts its cache entry.
type roleService struct {
	roleRepository store.RoleRepository
	cache          *lru.Cache[int64, models.Role]
	validator      validators.Validator
	logger         *logger.Logger
}

func NewRoleService(roleRepository store.RoleRepository, cfg config.Cache, logger *logger.Logger) (RoleService, error) {
	size := cfg.RoleCacheSize
	if size <= 0 {
		size = config.DefaultRoleCacheSize
	}

	cache, err := lru.New[int64, models.Role](size)
	if err != nil {
		return nil, fmt.Errorf("error creating role cache: %w", err)
	}

	return &roleService{
		roleRepository: roleRepository,
		cache:          cache,
		validator:      validators.NewRoleValidator(),
		logger:         logger,
	}, nil
}

func (s *roleService) CreateRole(ctx context.Context, role models.Role) (models.Role, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return models.Role{}, err
	}
	if err := s.validator.Validate(ctx, role); err != nil {
		return models.Role{}, err
	}

	created, err := s.roleRepository.CreateRole(ctx, models.Role{Title: role.Title})
	if err != nil {
		return models.Role{}, fmt.Errorf("error creating role: %w", err)
	}

	s.cache.Add(created.ID, created)
	return created, nil
}

func (s *roleService) GetRole(ctx context.Context, id int64) (models.Role, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return models.Role{}, err
	}
	return s.findRole(ctx, id)
}

func (s *roleService) ListRoles(ctx context.Context) ([]models.Role, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	roles, err := s.roleRepository.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing roles: %w", err)
	}
	return roles, nil
}

// UpdateRole renames a role. Neither the reserved roles nor a rename to a
// reserved title are allowed.
func (s *roleService) UpdateRole(ctx context.Context, role models.Role) (models.Role, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return models.Role{}, err
	}

	existing, err := s.findRole(ctx, role.ID)
	if err != nil {
		return models.Role{}, err
	}
	if err = policy.CanMutateRole(existing); err != nil {
		return models.Role{}, err
	}
	if err = policy.CanMutateRole(models.Role{Title: role.Title}); err != nil {
		return models.Role{}, err
	}
	if err = s.validator.Validate(ctx, role); err != nil {
		return models.Role{}, err
	}

	updated, err := s.roleRepository.UpdateRole(ctx, models.Role{ID: existing.ID, Title: role.Title})
	if err != nil {
		s.cache.Remove(role.ID)
		return models.Role{}, fmt.Errorf("error updating role: %w", err)
	}

	s.cache.Add(updated.ID, updated)
	return updated, nil
}

func (s *roleService) DeleteRole(ctx context.Context, id int64) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}

	existing, err := s.findRole(ctx, id)
	if err != nil {
		return err
	}
	if err = policy.CanMutateRole(existing); err != nil {
		return err
	}

	err = s.roleRepository.DeleteRole(ctx, id)
	s.cache.Remove(id)
	if err != nil {
		return fmt.Errorf("error deleting role: %w", err)
	}
	return nil
}

func (s *roleService) findRole(ctx context.Context, id int64) (models.Role, error) {
	if role, ok := s.cache.Get(id); ok {
		return role, nil
	}

	role, err := s.roleRepository.FindRoleByID(ctx, id)
	if err != nil {
		return models.Role{}, err
	}

	s.cache.Add(id, role)
	return role, nil
}

func (s *roleService) requireAdmin(ctx context.Context) error {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return err
	}
	return policy.RequireAdmin(caller)
}
