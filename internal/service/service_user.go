// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/policy"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/MKhiriev/go-doc-keeper/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	hashCost       int
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		hashCost:       cfg.PasswordHashCost,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context, page models.Page) (models.UsersPage, error) {
	if _, err := callerFromContext(ctx); err != nil {
		return models.UsersPage{}, err
	}

	users, err := s.userRepository.ListUsers(ctx, page)
	if err != nil {
		return models.UsersPage{}, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	if _, err := callerFromContext(ctx); err != nil {
		return models.User{}, err
	}

	return s.userRepository.FindUserByID(ctx, id)
}

// UpdateUser applies the part of update the caller is entitled to. The
// target must exist before any permission is evaluated.
func (s *userService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "userService.UpdateUser").Logger()

	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.User{}, err
	}

	if _, err = s.userRepository.FindUserByID(ctx, id); err != nil {
		return models.User{}, err
	}

	scoped, err := policy.ScopeUserUpdate(id, update, caller)
	if err != nil {
		log.Debug().Err(err).Int64("target_id", id).Int64("caller_id", caller.UserID).Msg("user update denied")
		return models.User{}, err
	}

	if err = s.validator.Validate(ctx, scoped); err != nil {
		return models.User{}, err
	}

	if scoped.Password != nil {
		hash, err := hashPassword(*scoped.Password, s.hashCost)
		if err != nil {
			log.Err(err).Msg("error hashing password")
			return models.User{}, err
		}
		scoped.Password = &hash
	}

	updated, err := s.userRepository.UpdateUser(ctx, id, scoped)
	if err != nil {
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}
	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return err
	}

	target, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return err
	}

	if err = policy.CanDeleteUser(target, caller); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "userService.DeleteUser").
			Int64("target_id", id).Int64("caller_id", caller.UserID).Msg("user deletion denied")
		return err
	}

	if err = s.userRepository.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
