// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/task-manager/internal/config"
	"github.com/MKhiriev/task-manager/internal/imaging"
	"github.com/MKhiriev/task-manager/internal/logger"
	"github.com/MKhiriev/task-manager/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	TaskService    TaskService
	AppInfoService AppInfoService
}

// NewServices wires every service to storages. Mails are handed to notifier.
func NewServices(storages *store.Storages, notifier Notifier, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	images := imaging.NewNormalizer(cfg.Storage.Uploads)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.TokenRepository, notifier, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, notifier, images, logger),
		TaskService:    NewTaskValidationService().Wrap(NewTaskService(storages.TaskRepository, images, logger)),
		AppInfoService: appInfoService,
	}, nil
}
