// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Task is a single to-do item owned by exactly one user.
type Task struct {
	// TaskID is the unique identifier of the task (UUIDv7 string).
	TaskID string `json:"id"`

	// Description is the non-empty, trimmed text of the task.
	Description string `json:"description"`

	// Completed reports whether the task is done. Defaults to false.
	Completed bool `json:"completed"`

	// OwnerID references the user the task belongs to.
	OwnerID string `json:"owner"`

	// Image holds the normalized PNG attached to the task, nil when not set.
	Image []byte `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskCreateRequest is the body of POST /tasks.
// Any owner sent by the client is ignored: the owner is always the caller.
type TaskCreateRequest struct {
	Description string `json:"description"`
	Completed   *bool  `json:"completed,omitempty"`
}

// TaskUpdate is a partial task update. Only non-nil fields are applied.
type TaskUpdate struct {
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// IsEmpty reports whether the update carries no field.
func (u TaskUpdate) IsEmpty() bool {
	return u.Description == nil && u.Completed == nil
}

// TaskQuery describes a listing of one owner's tasks.
//
// OwnerID is mandatory. Completed, when non-nil, filters by completion state.
// Limit and Skip equal to zero mean "no limit" and "no offset".
type TaskQuery struct {
	OwnerID   string
	Completed *bool
	Limit     uint64
	Skip      uint64
	Sort      *TaskSort
}

// TaskSort is an ordering over a whitelisted task column.
type TaskSort struct {
	Column     string
	Descending bool
}
