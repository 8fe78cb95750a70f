// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/task-manager/internal/logger"
	"github.com/MKhiriev/task-manager/internal/store"
	"github.com/MKhiriev/task-manager/internal/utils"
	"github.com/MKhiriev/task-manager/models"
)

// taskService persists tasks. Input rules are enforced by the validation
// wrapper (see NewTaskValidationService); taskService only checks ids.
type taskService struct {
	taskRepository store.TaskRepository

	images ImageNormalizer
	ids    IDGenerator

	logger *logger.Logger
}

func NewTaskService(tasks store.TaskRepository, images ImageNormalizer, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: tasks,
		images:         images,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreateTask always assigns ownerID, whatever the request carries.
func (t *taskService) CreateTask(ctx context.Context, ownerID string, req models.TaskCreateRequest) (models.Task, error) {
	createdAt := now()
	task := models.Task{
		TaskID:      t.ids.Generate(),
		Description: req.Description,
		OwnerID:     ownerID,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	task, err := t.taskRepository.CreateTask(ctx, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("error creating task: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("task_id", task.TaskID).Msg("task created")
	return task, nil
}

func (t *taskService) ListTasks(ctx context.Context, query models.TaskQuery) ([]models.Task, error) {
	if query.Sort != nil && !store.IsTaskSortColumn(query.Sort.Column) {
		query.Sort = nil
	}

	tasks, err := t.taskRepository.ListTasks(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return tasks, nil
}

func (t *taskService) GetTask(ctx context.Context, ownerID, taskID string) (models.Task, error) {
	if !utils.IsValidID(taskID) {
		return models.Task{}, store.ErrTaskNotFound
	}

	task, err := t.taskRepository.GetTask(ctx, ownerID, taskID)
	if err != nil {
		return models.Task{}, fmt.Errorf("error loading task: %w", err)
	}
	return task, nil
}

func (t *taskService) UpdateTask(ctx context.Context, ownerID, taskID string, update models.TaskUpdate) (models.Task, error) {
	if !utils.IsValidID(taskID) {
		return models.Task{}, store.ErrTaskNotFound
	}

	task, err := t.taskRepository.UpdateTask(ctx, ownerID, taskID, update)
	if err != nil {
		return models.Task{}, fmt.Errorf("error updating task: %w", err)
	}
	return task, nil
}

func (t *taskService) DeleteTask(ctx context.Context, ownerID, taskID string) (models.Task, error) {
	if !utils.IsValidID(taskID) {
		return models.Task{}, store.ErrTaskNotFound
	}

	task, err := t.taskRepository.DeleteTask(ctx, ownerID, taskID)
	if err != nil {
		return models.Task{}, fmt.Errorf("error deleting task: %w", err)
	}
	return task, nil
}

func (t *taskService) SetTaskImage(ctx context.Context, ownerID, taskID string, upload models.Upload) error {
	if !utils.IsValidID(taskID) {
		return store.ErrTaskNotFound
	}

	image, err := t.images.Normalize(upload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUpload, err)
	}

	if err = t.taskRepository.SetTaskImage(ctx, ownerID, taskID, image); err != nil {
		return fmt.Errorf("error saving task image: %w", err)
	}
	return nil
}

func (t *taskService) DeleteTaskImage(ctx context.Context, ownerID, taskID string) error {
	if !utils.IsValidID(taskID) {
		return store.ErrTaskNotFound
	}

	if err := t.taskRepository.SetTaskImage(ctx, ownerID, taskID, nil); err != nil {
		return fmt.Errorf("error deleting task image: %w", err)
	}
	return nil
}

func (t *taskService) GetTaskImage(ctx context.Context, ownerID, taskID string) ([]byte, error) {
	if !utils.IsValidID(taskID) {
		return nil, store.ErrTaskNotFound
	}

	image, err := t.taskRepository.GetTaskImage(ctx, ownerID, taskID)
	if err != nil {
		return nil, fmt.Errorf("error loading task image: %w", err)
	}
	return image, nil
}
