// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/policy"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/MKhiriev/go-doc-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT
// session lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// users and to store their session tokens.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// hashCost is the bcrypt cost used when hashing passwords.
	hashCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		hashCost:       cfg.PasswordHashCost,
		logger:         logger,
	}
}

// Signup creates a regular (or any non-admin) user and opens its session.
//
// Returns the persisted user and its token or:
//   - policy.ErrSignupWithID / policy.ErrSignupAsAdmin for forbidden payloads.
//   - a *validators.ValidationError for invalid fields.
//   - store.ErrUsernameExists, store.ErrEmailExists or store.ErrUnknownRole.
func (a *authService) Signup(ctx context.Context, request models.SignupRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx).With().Str("func", "authService.Signup").Logger()

	if err := policy.CheckSignup(request); err != nil {
		return models.User{}, models.Token{}, err
	}

	user, err := a.createUser(ctx, request.ToUser())
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	token, err := a.openSession(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("error opening session for new user")
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

func (a *authService) CreateUser(ctx context.Context, request models.SignupRequest) (models.User, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.User{}, err
	}
	if err = policy.RequireAdmin(caller); err != nil {
		return models.User{}, err
	}
	if err = policy.CheckUserCreate(request); err != nil {
		return models.User{}, err
	}

	return a.createUser(ctx, request.ToUser())
}

func (a *authService) createUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "authService.createUser").Logger()

	if err := a.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}

	hash, err := hashPassword(user.Password, a.hashCost)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, err
	}
	user.Password = hash

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Debug().Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// Login verifies the credentials and opens a new session, replacing any
// previous one.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx).With().Str("func", "authService.Login").Logger()

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, models.Token{}, err
	}

	user, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by username failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = utils.CheckPassword(user.Password, request.Password); err != nil {
		log.Debug().Int64("user_id", user.ID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.openSession(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("error opening session")
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

func (a *authService) Logout(ctx context.Context) error {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return err
	}

	if err = a.userRepository.SetToken(ctx, caller.UserID, ""); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.Logout").Msg("error clearing session token")
		return fmt.Errorf("error clearing session token: %w", err)
	}

	return nil
}

// Authenticate checks the token signature, issuer and expiry, then requires
// it to be the active session of its user. The returned identity carries
// the user's current role.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Caller, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.Authenticate").Msg("token rejected")
		return models.Caller{}, ErrInvalidToken
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Caller{}, ErrSessionExpired
	}
	if err != nil {
		return models.Caller{}, fmt.Errorf("error loading token owner: %w", err)
	}

	if user.Token == "" || user.Token != token.SignedString {
		return models.Caller{}, ErrSessionExpired
	}

	return user.Caller(), nil
}

// openSession issues a token for user and stores it as the active session.
func (a *authService) openSession(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.RoleID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.userRepository.SetToken(ctx, user.ID, token.SignedString); err != nil {
		return models.Token{}, fmt.Errorf("error storing session token: %w", err)
	}

	return token, nil
}
