// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/task-manager/models"
)

// FieldDescription targets the task description.
const FieldDescription = "description"

// TaskValidator implements Validator for models.TaskCreateRequest and
// models.TaskUpdate.
type TaskValidator struct {
}

func NewTaskValidator() Validator {
	return &TaskValidator{}
}

func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TaskCreateRequest:
		return v.validateCreate(value, fields...)
	case *models.TaskCreateRequest:
		return v.validateCreate(*value, fields...)

	case models.TaskUpdate:
		return v.validateUpdate(value)
	case *models.TaskUpdate:
		return v.validateUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *TaskValidator) validateCreate(req models.TaskCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldDescription:
			if req.Description == "" {
				return ErrDescriptionRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TaskValidator) validateUpdate(update models.TaskUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if update.Description != nil && *update.Description == "" {
		return ErrDescriptionRequired
	}
	return nil
}
