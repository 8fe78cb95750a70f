// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/task-manager/internal/logger"
	"github.com/MKhiriev/task-manager/models"
)

// tokenRepository stores the active session tokens in "user_tokens".
type tokenRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{db: db, logger: logger}
}

func (r *tokenRepository) AddToken(ctx context.Context, token models.StoredToken) error {
	query, args, err := r.db.buildInsertTokenQuery(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*tokenRepository.AddToken").
			Str("user_id", token.UserID).
			Msg("error saving token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *tokenRepository) TokenExists(ctx context.Context, userID, token string) (bool, error) {
	query, args, err := r.db.buildTokenExistsQuery(userID, token)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *tokenRepository) DeleteToken(ctx context.Context, userID, token string) error {
	query, args, err := r.db.buildDeleteTokenQuery(userID, token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrTokenNotFound)
}

// DeleteAllTokens succeeds even when the set is already empty.
func (r *tokenRepository) DeleteAllTokens(ctx context.Context, userID string) error {
	query, args, err := r.db.buildDeleteQuery(tokensTable, "user_id", userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*tokenRepository.DeleteAllTokens").
			Str("user_id", userID).
			Msg("error deleting tokens")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
