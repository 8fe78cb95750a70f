// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/task-manager/internal/logger"
	"github.com/MKhiriev/task-manager/models"
)

// taskRepository is the SQL implementation of [TaskRepository] over the
// "tasks" table. Every statement it issues carries the owner predicate.
type taskRepository struct {
	*DB
	logger *logger.Logger
}

func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{DB: db, logger: logger}
}

func (t *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	query, args, err := t.buildInsertTaskQuery(task)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = t.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*taskRepository.CreateTask").
			Str("owner_id", task.OwnerID).
			Msg("error inserting task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return task, nil
}

// ListTasks returns an empty, non-nil slice when nothing matches.
func (t *taskRepository) ListTasks(ctx context.Context, taskQuery models.TaskQuery) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := t.buildListTasksQuery(taskQuery)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.ListTasks").
			Str("owner_id", taskQuery.OwnerID).
			Msg("failed to execute query for listing tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 16)
	for rows.Next() {
		var task models.Task
		if err = rows.Scan(
			&task.TaskID,
			&task.OwnerID,
			&task.Description,
			&task.Completed,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// GetTask returns [ErrTaskNotFound] when the task does not exist or is
// owned by another user.
func (t *taskRepository) GetTask(ctx context.Context, ownerID, taskID string) (models.Task, error) {
	return t.getTask(ctx, t.DB, ownerID, taskID)
}

func (t *taskRepository) getTask(ctx context.Context, q queryer, ownerID, taskID string) (models.Task, error) {
	query, args, err := t.buildSelectTaskQuery(ownerID, taskID)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var task models.Task
	err = q.QueryRowContext(ctx, query, args...).Scan(
		&task.TaskID,
		&task.OwnerID,
		&task.Description,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Task{}, ErrTaskNotFound
	case err != nil:
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

func (t *taskRepository) UpdateTask(ctx context.Context, ownerID, taskID string, update models.TaskUpdate) (models.Task, error) {
	var updated models.Task
	err := t.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := t.buildUpdateTaskQuery(ownerID, taskID, update, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if err = expectAffected(res, ErrTaskNotFound); err != nil {
			return err
		}

		updated, err = t.getTask(ctx, tx, ownerID, taskID)
		return err
	})
	if err != nil {
		return models.Task{}, err
	}

	return updated, nil
}

// DeleteTask removes the task and returns it as it was before deletion.
func (t *taskRepository) DeleteTask(ctx context.Context, ownerID, taskID string) (models.Task, error) {
	var deleted models.Task
	err := t.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		if deleted, err = t.getTask(ctx, tx, ownerID, taskID); err != nil {
			return err
		}

		query, args, err := t.buildDeleteTaskQuery(ownerID, taskID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return expectAffected(res, ErrTaskNotFound)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*taskRepository.DeleteTask").
			Str("task_id", taskID).
			Msg("error deleting task")
		return models.Task{}, err
	}

	return deleted, nil
}

func (t *taskRepository) SetTaskImage(ctx context.Context, ownerID, taskID string, image []byte) error {
	query, args, err := t.buildSetTaskImageQuery(ownerID, taskID, image, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := t.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrTaskNotFound)
}

func (t *taskRepository) GetTaskImage(ctx context.Context, ownerID, taskID string) ([]byte, error) {
	query, args, err := t.buildSelectTaskImageQuery(ownerID, taskID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return selectImage(ctx, t.DB, query, args, ErrTaskNotFound)
}
