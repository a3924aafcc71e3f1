// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/MKhiriev/go-doc-keeper/models"
)

// SeedAdmin creates the configured administrator account unless a user with
// the same username already exists. An empty admin username disables
// seeding.
func SeedAdmin(ctx context.Context, userRepository store.UserRepository, cfg config.App, log *logger.Logger) error {
	admin := cfg.Admin
	if admin.Username == "" {
		return nil
	}

	_, err := userRepository.FindUserByUsername(ctx, admin.Username)
	if err == nil {
		log.Debug().Str("func", "SeedAdmin").Str("username", admin.Username).Msg("admin already exists")
		return nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("error looking up admin: %w", err)
	}

	user := models.User{
		Username:  admin.Username,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Email:     admin.Email,
		Password:  admin.Password,
		RoleID:    models.RoleAdminID,
	}
	if user.FirstName == "" {
		user.FirstName = "Admin"
	}
	if user.LastName == "" {
		user.LastName = "Admin"
	}

	if err = validators.NewUserValidator().Validate(ctx, user); err != nil {
		return fmt.Errorf("invalid admin account: %w", err)
	}

	hash, err := hashPassword(user.Password, cfg.PasswordHashCost)
	if err != nil {
		return err
	}
	user.Password = hash

	created, err := userRepository.CreateUser(ctx, user)
	if err != nil {
		return fmt.Errorf("error creating admin: %w", err)
	}

	log.Info().Str("func", "SeedAdmin").Int64("user_id", created.ID).Msg("admin account created")
	return nil
}
