// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/task-manager/internal/service"
	"github.com/MKhiriev/task-manager/models"
)

const maxJSONBodySize = 1 << 20

var (
	userUpdateFields = []string{"name", "email", "password", "age"}
	taskUpdateFields = []string{"description", "completed"}
)

// taskSortFields maps the accepted sortBy spellings to task columns.
var taskSortFields = map[string]string{
	"createdAt":   "created_at",
	"created_at":  "created_at",
	"updatedAt":   "updated_at",
	"updated_at":  "updated_at",
	"description": "description",
	"completed":   "completed",
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// decodeUpdate decodes a PATCH body into v. Any key outside allowed rejects
// the whole update with service.ErrInvalidUpdates before anything is applied.
func decodeUpdate(w http.ResponseWriter, r *http.Request, v any, allowed []string) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBodySize))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	var fields map[string]json.RawMessage
	if err = json.Unmarshal(body, &fields); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	for key := range fields {
		if !slices.Contains(allowed, key) {
			return service.ErrInvalidUpdates
		}
	}

	if err = json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// parseTaskQuery reads the listing parameters of GET /tasks. Malformed
// values are ignored rather than rejected.
//
//	completed=true|false   any other non-empty value means false
//	limit=N, skip=N        non-negative integers
//	sortBy=field:desc      any direction other than desc is ascending
func parseTaskQuery(r *http.Request, ownerID string) models.TaskQuery {
	params := r.URL.Query()
	query := models.TaskQuery{OwnerID: ownerID}

	if completed := params.Get("completed"); completed != "" {
		value := completed == "true"
		query.Completed = &value
	}

	if limit, err := strconv.ParseUint(params.Get("limit"), 10, 64); err == nil {
		query.Limit = limit
	}
	if skip, err := strconv.ParseUint(params.Get("skip"), 10, 64); err == nil {
		query.Skip = skip
	}

	if sortBy := params.Get("sortBy"); sortBy != "" {
		field, direction, _ := strings.Cut(sortBy, ":")
		if column, ok := taskSortFields[field]; ok {
			query.Sort = &models.TaskSort{Column: column, Descending: direction == "desc"}
		}
	}

	return query
}
