// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/task-manager/internal/config"
	"github.com/MKhiriev/task-manager/models"
)

const (
	usersTable  = "users"
	tokensTable = "user_tokens"
	tasksTable  = "tasks"
)

var (
	userColumns = []string{"user_id", "name", "email", "password_hash", "age", "created_at", "updated_at"}
	taskColumns = []string{"task_id", "owner_id", "description", "completed", "created_at", "updated_at"}
)

// taskSortColumns whitelists the columns a task listing may be ordered by.
// ORDER BY is not parameterised, so nothing outside this set reaches SQL.
var taskSortColumns = map[string]struct{}{
	"created_at":  {},
	"updated_at":  {},
	"description": {},
	"completed":   {},
}

// IsTaskSortColumn reports whether column may be used in TaskSort.
func IsTaskSortColumn(column string) bool {
	_, ok := taskSortColumns[column]
	return ok
}

func (db *DB) buildInsertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Name, user.Email, user.PasswordHash, user.Age, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func (db *DB) buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

// buildUpdateUserQuery sets every non-nil field of update plus updated_at.
func (db *DB) buildUpdateUserQuery(userID string, update models.UserUpdate, now time.Time) (string, []any, error) {
	qb := db.builder.
		Update(usersTable).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": userID})

	if update.Name != nil {
		qb = qb.Set("name", *update.Name)
	}
	if update.Email != nil {
		qb = qb.Set("email", *update.Email)
	}
	if update.PasswordHash != nil {
		qb = qb.Set("password_hash", *update.PasswordHash)
	}
	if update.Age != nil {
		qb = qb.Set("age", *update.Age)
	}

	return qb.ToSql()
}

func (db *DB) buildDeleteQuery(table, column, value string) (string, []any, error) {
	return db.builder.
		Delete(table).
		Where(sq.Eq{column: value}).
		ToSql()
}

func (db *DB) buildSetAvatarQuery(userID string, avatar []byte, now time.Time) (string, []any, error) {
	return db.builder.
		Update(usersTable).
		Set("avatar", avatar).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) buildSelectAvatarQuery(userID string) (string, []any, error) {
	return db.builder.
		Select("avatar").
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) buildInsertTokenQuery(token models.StoredToken) (string, []any, error) {
	return db.builder.
		Insert(tokensTable).
		Columns("token", "user_id", "created_at").
		Values(token.Token, token.UserID, token.CreatedAt).
		ToSql()
}

func (db *DB) buildTokenExistsQuery(userID, token string) (string, []any, error) {
	return db.builder.
		Select("COUNT(*)").
		From(tokensTable).
		Where(sq.Eq{"user_id": userID, "token": token}).
		ToSql()
}

func (db *DB) buildDeleteTokenQuery(userID, token string) (string, []any, error) {
	return db.builder.
		Delete(tokensTable).
		Where(sq.Eq{"user_id": userID, "token": token}).
		ToSql()
}

func (db *DB) buildInsertTaskQuery(task models.Task) (string, []any, error) {
	return db.builder.
		Insert(tasksTable).
		Columns(taskColumns...).
		Values(task.TaskID, task.OwnerID, task.Description, task.Completed, task.CreatedAt, task.UpdatedAt).
		ToSql()
}

// ownedTask is the predicate every single-task statement is built with.
func ownedTask(ownerID, taskID string) sq.Eq {
	return sq.Eq{"owner_id": ownerID, "task_id": taskID}
}

func (db *DB) buildSelectTaskQuery(ownerID, taskID string) (string, []any, error) {
	return db.builder.
		Select(taskColumns...).
		From(tasksTable).
		Where(ownedTask(ownerID, taskID)).
		ToSql()
}

// buildListTasksQuery builds the listing of query.OwnerID's tasks. Unknown
// sort columns are ignored; task_id is always the last ordering key so that
// pagination is stable.
func (db *DB) buildListTasksQuery(query models.TaskQuery) (string, []any, error) {
	if query.OwnerID == "" {
		return "", nil, fmt.Errorf("%w: owner is required", ErrBuildingSQLQuery)
	}

	qb := db.builder.
		Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"owner_id": query.OwnerID})

	if query.Completed != nil {
		qb = qb.Where(sq.Eq{"completed": *query.Completed})
	}

	orderBy := make([]string, 0, 2)
	if query.Sort != nil && IsTaskSortColumn(query.Sort.Column) {
		direction := "ASC"
		if query.Sort.Descending {
			direction = "DESC"
		}
		orderBy = append(orderBy, query.Sort.Column+" "+direction)
	} else {
		orderBy = append(orderBy, "created_at ASC")
	}
	orderBy = append(orderBy, "task_id ASC")
	qb = qb.OrderBy(orderBy...)

	switch {
	case query.Limit > 0:
		qb = qb.Limit(query.Limit)
		if query.Skip > 0 {
			qb = qb.Offset(query.Skip)
		}
	case query.Skip > 0 && db.driver == config.DriverSQLite:
		// SQLite accepts OFFSET only after a LIMIT clause
		qb = qb.Suffix("LIMIT -1 OFFSET ?", query.Skip)
	case query.Skip > 0:
		qb = qb.Offset(query.Skip)
	}

	return qb.ToSql()
}

func (db *DB) buildUpdateTaskQuery(ownerID, taskID string, update models.TaskUpdate, now time.Time) (string, []any, error) {
	qb := db.builder.
		Update(tasksTable).
		Set("updated_at", now).
		Where(ownedTask(ownerID, taskID))

	if update.Description != nil {
		qb = qb.Set("description", *update.Description)
	}
	if update.Completed != nil {
		qb = qb.Set("completed", *update.Completed)
	}

	return qb.ToSql()
}

func (db *DB) buildDeleteTaskQuery(ownerID, taskID string) (string, []any, error) {
	return db.builder.
		Delete(tasksTable).
		Where(ownedTask(ownerID, taskID)).
		ToSql()
}

func (db *DB) buildSetTaskImageQuery(ownerID, taskID string, image []byte, now time.Time) (string, []any, error) {
	return db.builder.
		Update(tasksTable).
		Set("image", image).
		Set("updated_at", now).
		Where(ownedTask(ownerID, taskID)).
		ToSql()
}

func (db *DB) buildSelectTaskImageQuery(ownerID, taskID string) (string, []any, error) {
	return db.builder.
		Select("image").
		From(tasksTable).
		Where(ownedTask(ownerID, taskID)).
		ToSql()
}
