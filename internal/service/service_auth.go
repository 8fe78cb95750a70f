// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/task-manager/internal/config"
	"github.com/MKhiriev/task-manager/internal/logger"
	"github.com/MKhiriev/task-manager/internal/store"
	"github.com/MKhiriev/task-manager/internal/utils"
	"github.com/MKhiriev/task-manager/internal/validators"
	"github.com/MKhiriev/task-manager/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes and sessions are HS256 JWTs that stay
// valid only while present in the owner's stored token set.
type authService struct {
	userRepository  store.UserRepository
	tokenRepository store.TokenRepository

	notifier  Notifier
	validator validators.Validator
	ids       IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration sets the "exp" claim when positive. Zero issues tokens
	// that live until revoked.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users store.UserRepository, tokens store.TokenRepository, notifier Notifier, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  users,
		tokenRepository: tokens,
		notifier:        notifier,
		validator:       validators.NewUserValidator(),
		ids:             utils.NewUUIDGenerator(),
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// Signup creates a new account and opens its first session.
//
// Name and email are trimmed, email is lower-cased, the password is trimmed
// and stored as a bcrypt hash. A welcome mail is queued on success.
//
// When the first token cannot be stored the new user is removed again.
//
// Returns:
//   - ErrValidation wrapping the failed rule on invalid input.
//   - store.ErrEmailAlreadyExists when the email is taken.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	req = normalizeSignup(req)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("error hashing password")
		return models.AuthResponse{}, err
	}

	createdAt := now()
	user := models.User{
		UserID:       a.ids.Generate(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	if req.Age != nil {
		user.Age = *req.Age
	}

	user, err = a.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.issueToken(ctx, user.UserID)
	if err != nil {
		// a retry with the same email must not hit ErrEmailAlreadyExists
		if delErr := a.userRepository.DeleteUser(context.WithoutCancel(ctx), user.UserID); delErr != nil {
			log.Err(delErr).Str("user_id", user.UserID).Msg("error removing user after failed signup")
		}
		return models.AuthResponse{}, err
	}

	notify(a.notifier, welcomeMail(user))

	log.Info().Str("user_id", user.UserID).Msg("user signed up")
	return models.AuthResponse{User: user, Token: token}, nil
}

// Login checks the credentials and appends a new token to the user's set,
// so every device keeps its own session.
//
// Unknown email and wrong password both return ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, store.ErrUserNotFound) {
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(user.PasswordHash, normalizePassword(req.Password)); err != nil {
		if !errors.Is(err, utils.ErrPasswordMismatch) {
			log.Err(err).Str("user_id", user.UserID).Msg("stored password hash is unusable")
		}
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := a.issueToken(ctx, user.UserID)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{User: user, Token: token}, nil
}

func (a *authService) Logout(ctx context.Context, userID, token string) error {
	err := a.tokenRepository.DeleteToken(ctx, userID, token)
	if err != nil && !errors.Is(err, store.ErrTokenNotFound) {
		return fmt.Errorf("error revoking token: %w", err)
	}
	return nil
}

func (a *authService) LogoutAll(ctx context.Context, userID string) error {
	if err := a.tokenRepository.DeleteAllTokens(ctx, userID); err != nil {
		return fmt.Errorf("error revoking all tokens: %w", err)
	}
	return nil
}

// Authenticate never mutates the store.
//
// Returns ErrTokenIsInvalid for a malformed, foreign or expired token and
// ErrUnauthorized for a revoked token or a deleted user.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}

	exists, err := a.tokenRepository.TokenExists(ctx, token.UserID, tokenString)
	if err != nil {
		return models.User{}, fmt.Errorf("error looking up token: %w", err)
	}
	if !exists {
		return models.User{}, ErrUnauthorized
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUnauthorized
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error looking up token owner: %w", err)
	}

	return user, nil
}

// issueToken signs a token for userID and adds it to the stored set.
func (a *authService) issueToken(ctx context.Context, userID string) (string, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	err = a.tokenRepository.AddToken(ctx, models.StoredToken{
		Token:     token.SignedString,
		UserID:    userID,
		CreatedAt: now(),
	})
	if err != nil {
		return "", fmt.Errorf("error storing token: %w", err)
	}

	return token.SignedString, nil
}
