// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/task-manager/internal/logger"
	"github.com/MKhiriev/task-manager/internal/store"
	"github.com/MKhiriev/task-manager/internal/utils"
	"github.com/MKhiriev/task-manager/internal/validators"
	"github.com/MKhiriev/task-manager/models"
)

type userService struct {
	userRepository store.UserRepository

	notifier  Notifier
	images    ImageNormalizer
	validator validators.Validator

	logger *logger.Logger
}

func NewUserService(users store.UserRepository, notifier Notifier, images ImageNormalizer, logger *logger.Logger) UserService {
	return &userService{
		userRepository: users,
		notifier:       notifier,
		images:         images,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

// UpdateProfile applies the provided fields with the same rules as signup.
// A new password replaces the stored hash; existing sessions stay open.
func (u *userService) UpdateProfile(ctx context.Context, userID string, update models.UserUpdate) (models.User, error) {
	update = normalizeUserUpdate(update)
	if err := u.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if update.Password != nil {
		hash, err := utils.HashPassword(*update.Password)
		if err != nil {
			return models.User{}, err
		}
		update.PasswordHash = &hash
		update.Password = nil
	}

	user, err := u.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		return models.User{}, fmt.Errorf("error updating profile: %w", err)
	}

	return user, nil
}

func (u *userService) DeleteAccount(ctx context.Context, user models.User) (models.User, error) {
	if err := u.userRepository.DeleteUser(ctx, user.UserID); err != nil {
		return models.User{}, fmt.Errorf("error deleting account: %w", err)
	}

	notify(u.notifier, cancellationMail(user))

	logger.FromContext(ctx).Info().Str("user_id", user.UserID).Msg("account deleted")
	return user, nil
}

// SetAvatar leaves the stored avatar untouched when the upload is rejected.
func (u *userService) SetAvatar(ctx context.Context, userID string, upload models.Upload) error {
	avatar, err := u.images.Normalize(upload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUpload, err)
	}

	if err = u.userRepository.SetAvatar(ctx, userID, avatar); err != nil {
		return fmt.Errorf("error saving avatar: %w", err)
	}
	return nil
}

func (u *userService) DeleteAvatar(ctx context.Context, userID string) error {
	if err := u.userRepository.SetAvatar(ctx, userID, nil); err != nil {
		return fmt.Errorf("error deleting avatar: %w", err)
	}
	return nil
}

// GetAvatar is public: userID comes from the URL. Malformed ids are reported
// as a missing user.
func (u *userService) GetAvatar(ctx context.Context, userID string) ([]byte, error) {
	if !utils.IsValidID(userID) {
		return nil, store.ErrUserNotFound
	}

	avatar, err := u.userRepository.GetAvatar(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading avatar: %w", err)
	}
	return avatar, nil
}
