// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/models"
)

type userRepository struct {
	*DB
}

// NewUserRepository returns a [UserRepository] backed by db.
func NewUserRepository(db *DB) UserRepository {
	return &userRepository{DB: db}
}

func (u *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "userRepository.CreateUser").Logger()

	query, args, err := u.buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Msg("error building insert user query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = u.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if mapped := u.userWriteError(err); mapped != nil {
			log.Debug().Err(err).Msg("user violates a constraint")
			return models.User{}, mapped
		}
		log.Err(err).Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return u.FindUserByID(ctx, id)
}

func (u *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return u.findUser(ctx, sq.Eq{"id": id})
}

func (u *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return u.findUser(ctx, sq.Eq{"username": username})
}

func (u *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "userRepository.findUser").Logger()

	query, args, err := u.buildSelectUserQuery(where)
	if err != nil {
		log.Err(err).Msg("error building select user query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(u.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (u *userRepository) ListUsers(ctx context.Context, page models.Page) (models.UsersPage, error) {
	log := logger.FromContext(ctx).With().Str("func", "userRepository.ListUsers").Logger()

	countQuery, countArgs, err := u.buildCountUsersQuery()
	if err != nil {
		log.Err(err).Msg("error building count users query")
		return models.UsersPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = u.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		log.Err(err).Msg("error counting users")
		return models.UsersPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := u.buildSelectUsersQuery(page)
	if err != nil {
		log.Err(err).Msg("error building select users query")
		return models.UsersPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := u.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error selecting users")
		return models.UsersPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, page.Limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Msg("error scanning users")
			return models.UsersPage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Msg("error iterating users")
		return models.UsersPage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return models.UsersPage{Rows: users, Count: count}, nil
}

func (u *userRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "userRepository.UpdateUser").Logger()

	query, args, err := u.buildUpdateUserQuery(id, update)
	if errors.Is(err, ErrNothingToUpdate) {
		return models.User{}, err
	}
	if err != nil {
		log.Err(err).Msg("error building update user query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := u.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := u.userWriteError(err); mapped != nil {
			log.Debug().Err(err).Msg("user update violates a constraint")
			return models.User{}, mapped
		}
		log.Err(err).Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if err = requireAffected(result, ErrUserNotFound); err != nil {
		return models.User{}, err
	}

	return u.FindUserByID(ctx, id)
}

func (u *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).With().Str("func", "userRepository.DeleteUser").Logger()

	query, args, err := u.buildDeleteQuery(models.User{}.TableName(), id)
	if err != nil {
		log.Err(err).Msg("error building delete user query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := u.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrUserNotFound)
}

func (u *userRepository) SetToken(ctx context.Context, id int64, token string) error {
	log := logger.FromContext(ctx).With().Str("func", "userRepository.SetToken").Logger()

	var value *string
	if token != "" {
		value = &token
	}

	query, args, err := u.buildUpdateUserTokenQuery(id, value)
	if err != nil {
		log.Err(err).Msg("error building update token query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := u.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error updating user token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrUserNotFound)
}

// userWriteError maps constraint violations of users writes to domain
// errors. It returns nil for any other error.
func (u *userRepository) userWriteError(err error) error {
	v := u.errorClassificator.Classify(err)
	switch {
	case v.Is(UniqueViolation) && v.On("username"):
		return ErrUsernameExists
	case v.Is(UniqueViolation) && v.On("email"):
		return ErrEmailExists
	case v.Is(ForeignKeyViolation):
		return ErrUnknownRole
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user  models.User
		token sql.NullString
	)

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Password,
		&user.RoleID,
		&token,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	user.Token = token.String

	return user, err
}

// requireAffected returns notFound when result reports no affected rows.
func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
