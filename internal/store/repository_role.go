// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/models"
)

type roleRepository struct {
	*DB
}

// NewRoleRepository returns a [RoleRepository] backed by db.
func NewRoleRepository(db *DB) RoleRepository {
	return &roleRepository{DB: db}
}

func (r *roleRepository) CreateRole(ctx context.Context, role models.Role) (models.Role, error) {
	log := logger.FromContext(ctx).With().Str("func", "roleRepository.CreateRole").Logger()

	query, args, err := r.buildInsertRoleQuery(role)
	if err != nil {
		log.Err(err).Msg("error building insert role query")
		return models.Role{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if r.errorClassificator.Classify(err).Is(UniqueViolation) {
			return models.Role{}, ErrRoleTitleExists
		}
		log.Err(err).Msg("error inserting role")
		return models.Role{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.FindRoleByID(ctx, id)
}

func (r *roleRepository) FindRoleByID(ctx context.Context, id int64) (models.Role, error) {
	log := logger.FromContext(ctx).With().Str("func", "roleRepository.FindRoleByID").Logger()

	query, args, err := r.buildSelectRoleQuery(id)
	if err != nil {
		log.Err(err).Msg("error building select role query")
		return models.Role{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	role, err := scanRole(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Role{}, ErrRoleNotFound
	}
	if err != nil {
		log.Err(err).Msg("error scanning role")
		return models.Role{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return role, nil
}

func (r *roleRepository) ListRoles(ctx context.Context) ([]models.Role, error) {
	log := logger.FromContext(ctx).With().Str("func", "roleRepository.ListRoles").Logger()

	query, args, err := r.buildSelectRolesQuery()
	if err != nil {
		log.Err(err).Msg("error building select roles query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error selecting roles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	roles := make([]models.Role, 0)
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			log.Err(err).Msg("error scanning roles")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		roles = append(roles, role)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Msg("error iterating roles")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return roles, nil
}

func (r *roleRepository) UpdateRole(ctx context.Context, role models.Role) (models.Role, error) {
	log := logger.FromContext(ctx).With().Str("func", "roleRepository.UpdateRole").Logger()

	query, args, err := r.buildUpdateRoleQuery(role)
	if err != nil {
		log.Err(err).Msg("error building update role query")
		return models.Role{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		if r.errorClassificator.Classify(err).Is(UniqueViolation) {
			return models.Role{}, ErrRoleTitleExists
		}
		log.Err(err).Msg("error updating role")
		return models.Role{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if err = requireAffected(result, ErrRoleNotFound); err != nil {
		return models.Role{}, err
	}

	return r.FindRoleByID(ctx, role.ID)
}

func (r *roleRepository) DeleteRole(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).With().Str("func", "roleRepository.DeleteRole").Logger()

	query, args, err := r.buildDeleteQuery(models.Role{}.TableName(), id)
	if err != nil {
		log.Err(err).Msg("error building delete role query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		if r.errorClassificator.Classify(err).Is(ForeignKeyViolation) {
			return ErrRoleInUse
		}
		log.Err(err).Msg("error deleting role")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrRoleNotFound)
}

func scanRole(row rowScanner) (models.Role, error) {
	var role models.Role
	err := row.Scan(&role.ID, &role.Title, &role.CreatedAt, &role.UpdatedAt)
	return role, err
}
