// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence of users, their session tokens and
// their tasks on top of database/sql. PostgreSQL (pgx) is the primary
// backend; SQLite is supported for local runs and tests.
//
// Every task operation is scoped to an owner: there is no method that reads
// or modifies a task without the owner's id in its predicate.
package store

import (
	"context"

	"github.com/MKhiriev/task-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new user. Returns ErrEmailAlreadyExists on a
	// duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdateUser applies the non-nil fields of update and returns the
	// resulting user.
	UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the user together with their tasks and tokens
	// in a single transaction.
	DeleteUser(ctx context.Context, userID string) error

	// SetAvatar stores avatar for the user; nil clears it.
	SetAvatar(ctx context.Context, userID string, avatar []byte) error
	GetAvatar(ctx context.Context, userID string) ([]byte, error)
}

// TokenRepository persists the active session token set of every user.
type TokenRepository interface {
	AddToken(ctx context.Context, token models.StoredToken) error

	// TokenExists reports whether token belongs to userID's active set.
	TokenExists(ctx context.Context, userID, token string) (bool, error)

	// DeleteToken removes a single token. Returns ErrTokenNotFound when
	// nothing was removed.
	DeleteToken(ctx context.Context, userID, token string) error

	// DeleteAllTokens empties userID's active set.
	DeleteAllTokens(ctx context.Context, userID string) error
}

// TaskRepository persists tasks. Every method is owner scoped.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	ListTasks(ctx context.Context, query models.TaskQuery) ([]models.Task, error)
	GetTask(ctx context.Context, ownerID, taskID string) (models.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID string, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID string) (models.Task, error)

	// SetTaskImage stores image for the task; nil clears it.
	SetTaskImage(ctx context.Context, ownerID, taskID string, image []byte) error
	GetTaskImage(ctx context.Context, ownerID, taskID string) ([]byte, error)
}
