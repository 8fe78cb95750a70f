// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/task-manager/internal/store"
	"github.com/MKhiriev/task-manager/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestParseTaskQuery(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name  string
		query string
		want  models.TaskQuery
	}{
		{name: "empty", want: models.TaskQuery{OwnerID: testUserID}},
		{name: "completed true", query: "completed=true", want: models.TaskQuery{OwnerID: testUserID, Completed: &yes}},
		{name: "completed anything else", query: "completed=yes", want: models.TaskQuery{OwnerID: testUserID, Completed: &no}},
		{name: "paging", query: "limit=10&skip=20", want: models.TaskQuery{OwnerID: testUserID, Limit: 10, Skip: 20}},
		{name: "bad paging ignored", query: "limit=-1&skip=abc", want: models.TaskQuery{OwnerID: testUserID}},
		{
			name:  "camel case sort desc",
			query: "sortBy=createdAt:desc",
			want:  models.TaskQuery{OwnerID: testUserID, Sort: &models.TaskSort{Column: "created_at", Descending: true}},
		},
		{
			name:  "sort without direction",
			query: "sortBy=description",
			want:  models.TaskQuery{OwnerID: testUserID, Sort: &models.TaskSort{Column: "description"}},
		},
		{name: "unknown sort field ignored", query: "sortBy=owner:desc", want: models.TaskQuery{OwnerID: testUserID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/tasks?"+tt.query, nil)
			assert.Equal(t, tt.want, parseTaskQuery(req, testUserID))
		})
	}
}

func TestCreateTask_OwnerIsCaller(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.expectAuthenticated()

	created := models.Task{TaskID: testTaskID, Description: "Buy milk", OwnerID: testUserID}
	ts.tasks.EXPECT().
		CreateTask(gomock.Any(), testUserID, models.TaskCreateRequest{Description: "Buy milk"}).
		Return(created, nil)

	rec := serve(router, withToken(newJSONRequest(t, http.MethodPost, "/tasks",
		`{"description":"Buy milk","owner":"someone-else"}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, testUserID, decodeBody[models.Task](t, rec).OwnerID)
}

func TestListTasks_EmptyIsArray(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.expectAuthenticated()
	ts.tasks.EXPECT().ListTasks(gomock.Any(), models.TaskQuery{OwnerID: testUserID, Limit: 2}).Return(nil, nil)

	rec := serve(router, withToken(newJSONRequest(t, http.MethodGet, "/tasks?limit=2", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetTask_NotFound(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.expectAuthenticated()
	ts.tasks.EXPECT().GetTask(gomock.Any(), testUserID, testTaskID).Return(models.Task{}, store.ErrTaskNotFound)

	rec := serve(router, withToken(newJSONRequest(t, http.MethodGet, "/tasks/"+testTaskID, nil)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateTask(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.expectAuthenticated()

		done := true
		ts.tasks.EXPECT().
			UpdateTask(gomock.Any(), testUserID, testTaskID, models.TaskUpdate{Completed: &done}).
			Return(models.Task{TaskID: testTaskID, Completed: true}, nil)

		rec := serve(router, withToken(newJSONRequest(t, http.MethodPatch, "/tasks/"+testTaskID, `{"completed":true}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeBody[models.Task](t, rec).Completed)
	})

	t.Run("owner cannot be changed", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.expectAuthenticated()

		rec := serve(router, withToken(newJSONRequest(t, http.MethodPatch, "/tasks/"+testTaskID, `{"owner":"x"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid updates", errorMessage(t, rec))
	})
}

func TestDeleteTask(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.expectAuthenticated()
	ts.tasks.EXPECT().DeleteTask(gomock.Any(), testUserID, testTaskID).
		Return(models.Task{TaskID: testTaskID, Description: "Buy milk"}, nil)

	rec := serve(router, withToken(newJSONRequest(t, http.MethodDelete, "/tasks/"+testTaskID, nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testTaskID, decodeBody[models.Task](t, rec).TaskID)
}
