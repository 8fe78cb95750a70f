// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/task-manager/internal/logger"
	"github.com/MKhiriev/task-manager/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByEmail returns the user with the given (already normalized) email
// or [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"email": email})
}

// FindUserByID returns the user with the given id or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"user_id": userID})
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	return findUserWith(ctx, r.db, r.db, where)
}

// UpdateUser applies update and returns the stored result.
func (r *userRepository) UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	var updated models.User
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.db.buildUpdateUserQuery(userID, update, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			if r.db.isUniqueViolation(err) {
				return ErrEmailAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if err = expectAffected(res, ErrUserNotFound); err != nil {
			return err
		}

		updated, err = findUserWith(ctx, r.db, tx, sq.Eq{"user_id": userID})
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("user_id", userID).Msg("error updating user")
		return models.User{}, err
	}

	return updated, nil
}

// DeleteUser removes the user's tasks, tokens and the user row in one
// transaction. Foreign keys cascade as well; the explicit statements keep the
// behaviour identical on databases where cascades are disabled.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		for _, target := range []struct{ table, column string }{
			{tasksTable, "owner_id"},
			{tokensTable, "user_id"},
			{usersTable, "user_id"},
		} {
			query, args, err := r.db.buildDeleteQuery(target.table, target.column, userID)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if target.table == usersTable {
				return expectAffected(res, ErrUserNotFound)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("user_id", userID).Msg("error deleting user")
		return err
	}

	return nil
}

// SetAvatar replaces the user's avatar; a nil avatar clears it.
func (r *userRepository) SetAvatar(ctx context.Context, userID string, avatar []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSetAvatarQuery(userID, avatar, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetAvatar").Str("user_id", userID).Msg("error saving avatar")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrUserNotFound)
}

// GetAvatar returns the user's avatar. Returns [ErrUserNotFound] for an
// unknown user and [ErrImageNotFound] when no avatar is set.
func (r *userRepository) GetAvatar(ctx context.Context, userID string) ([]byte, error) {
	query, args, err := r.db.buildSelectAvatarQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return selectImage(ctx, r.db, query, args, ErrUserNotFound)
}

// queryer is satisfied by both *DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func findUserWith(ctx context.Context, db *DB, q queryer, where sq.Eq) (models.User, error) {
	query, args, err := db.buildSelectUserQuery(where)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = q.QueryRowContext(ctx, query, args...).Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Age,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "findUserWith").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func selectImage(ctx context.Context, db *DB, query string, args []any, notFound error) ([]byte, error) {
	var image []byte
	err := db.QueryRowContext(ctx, query, args...).Scan(&image)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, notFound
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	case len(image) == 0:
		return nil, ErrImageNotFound
	}

	return image, nil
}

// expectAffected returns notFound when res reports zero affected rows.
func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
