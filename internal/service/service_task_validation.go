// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/task-manager/internal/validators"
	"github.com/MKhiriev/task-manager/models"
)

// TaskServiceWrapper defines middleware composition for TaskService.
// Implementations wrap an existing TaskService to add behavior such as
// validation.
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService
}

// TaskValidationService normalizes and validates task input before handing
// it to the wrapped TaskService.
type TaskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService() TaskServiceWrapper {
	return &TaskValidationService{
		validator: validators.NewTaskValidator(),
	}
}

func (v *TaskValidationService) Wrap(inner TaskService) TaskService {
	v.inner = inner
	return v
}

func (v *TaskValidationService) CreateTask(ctx context.Context, ownerID string, req models.TaskCreateRequest) (models.Task, error) {
	req.Description = strings.TrimSpace(req.Description)
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.CreateTask(ctx, ownerID, req)
}

// ListTasks refuses to run without an owner; there is no unscoped listing.
func (v *TaskValidationService) ListTasks(ctx context.Context, query models.TaskQuery) ([]models.Task, error) {
	if query.OwnerID == "" {
		return nil, ErrUnauthorized
	}
	return v.inner.ListTasks(ctx, query)
}

func (v *TaskValidationService) GetTask(ctx context.Context, ownerID, taskID string) (models.Task, error) {
	return v.inner.GetTask(ctx, ownerID, taskID)
}

func (v *TaskValidationService) UpdateTask(ctx context.Context, ownerID, taskID string, update models.TaskUpdate) (models.Task, error) {
	if update.Description != nil {
		description := strings.TrimSpace(*update.Description)
		update.Description = &description
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.UpdateTask(ctx, ownerID, taskID, update)
}

func (v *TaskValidationService) DeleteTask(ctx context.Context, ownerID, taskID string) (models.Task, error) {
	return v.inner.DeleteTask(ctx, ownerID, taskID)
}

func (v *TaskValidationService) SetTaskImage(ctx context.Context, ownerID, taskID string, upload models.Upload) error {
	if len(upload.Data) == 0 {
		return fmt.Errorf("%w: please upload an image", ErrInvalidUpload)
	}
	return v.inner.SetTaskImage(ctx, ownerID, taskID, upload)
}

func (v *TaskValidationService) DeleteTaskImage(ctx context.Context, ownerID, taskID string) error {
	return v.inner.DeleteTaskImage(ctx, ownerID, taskID)
}

func (v *TaskValidationService) GetTaskImage(ctx context.Context, ownerID, taskID string) ([]byte, error) {
	return v.inner.GetTaskImage(ctx, ownerID, taskID)
}
