// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/task-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns the session lifecycle: account creation, credential
// checks and the stored token set.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Logout revokes a single token. Revoking an unknown token is not an error.
	Logout(ctx context.Context, userID, token string) error
	LogoutAll(ctx context.Context, userID string) error

	// Authenticate resolves a raw bearer token to its user. The token must
	// carry a valid signature and still be present in the user's token set.
	Authenticate(ctx context.Context, token string) (models.User, error)
}

type UserService interface {
	UpdateProfile(ctx context.Context, userID string, update models.UserUpdate) (models.User, error)

	// DeleteAccount removes user with all tasks and tokens and returns the
	// deleted profile.
	DeleteAccount(ctx context.Context, user models.User) (models.User, error)

	SetAvatar(ctx context.Context, userID string, upload models.Upload) error
	DeleteAvatar(ctx context.Context, userID string) error
	GetAvatar(ctx context.Context, userID string) ([]byte, error)
}

// TaskService manages tasks of a single owner. Tasks of other owners are
// reported as not found.
type TaskService interface {
	CreateTask(ctx context.Context, ownerID string, req models.TaskCreateRequest) (models.Task, error)
	ListTasks(ctx context.Context, query models.TaskQuery) ([]models.Task, error)
	GetTask(ctx context.Context, ownerID, taskID string) (models.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID string, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID string) (models.Task, error)

	SetTaskImage(ctx context.Context, ownerID, taskID string, upload models.Upload) error
	DeleteTaskImage(ctx context.Context, ownerID, taskID string) error
	GetTaskImage(ctx context.Context, ownerID, taskID string) ([]byte, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Notifier hands a mail over for background delivery. Enqueue never blocks;
// it reports false when the mail was dropped.
type Notifier interface {
	Enqueue(mail models.Mail) bool
}

// ImageNormalizer checks an uploaded image and converts it to the stored
// PNG representation.
type ImageNormalizer interface {
	Normalize(upload models.Upload) ([]byte, error)
}

// IDGenerator produces identifiers for new users and tasks.
type IDGenerator interface {
	Generate() string
}
