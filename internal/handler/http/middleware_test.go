// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/task-manager/internal/service"
	"github.com/MKhiriev/task-manager/internal/store"
	"github.com/MKhiriev/task-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTraceID(t *testing.T) {
	t.Run("client id echoed", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.info.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

		req := httptest.NewRequest(http.MethodGet, "/version", nil)
		req.Header.Set(traceIDHeader, "abc-123")
		rec := serve(router, req)

		assert.Equal(t, "abc-123", rec.Header().Get(traceIDHeader))
	})

	t.Run("unsafe id replaced", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.info.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

		req := httptest.NewRequest(http.MethodGet, "/version", nil)
		req.Header.Set(traceIDHeader, "bad id\n")
		rec := serve(router, req)

		got := rec.Header().Get(traceIDHeader)
		assert.NotEmpty(t, got)
		assert.NotEqual(t, "bad id\n", got)
	})
}

func TestValidTraceID(t *testing.T) {
	assert.True(t, validTraceID("0190b6f2-7a3c"))
	assert.False(t, validTraceID(""))
	assert.False(t, validTraceID("has space"))
	assert.False(t, validTraceID(strings.Repeat("a", maxTraceIDLength+1)))
}

func TestVersion(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.info.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestUnknownRoutes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown path", method: http.MethodGet, target: "/nope"},
		{name: "known path wrong method", method: http.MethodPut, target: "/tasks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := newTestRouter(t)

			rec := serve(router, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "not found", errorMessage(t, rec))
		})
	}
}

func TestGZip(t *testing.T) {
	t.Run("JSON response compressed", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.expectAuthenticated()

		req := withToken(httptest.NewRequest(http.MethodGet, "/users/me", nil))
		req.Header.Set("Accept-Encoding", "gzip")
		rec := serve(router, req)

		require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
		zr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Contains(t, string(body), testUser.Email)
	})

	t.Run("gzip request body", func(t *testing.T) {
		ts, router := newTestRouter(t)
		login := models.LoginRequest{Email: "jen@example.com", Password: "Red12345!"}
		ts.auth.EXPECT().Login(gomock.Any(), login).Return(models.AuthResponse{User: testUser, Token: testToken}, nil)

		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte(`{"email":"jen@example.com","password":"Red12345!"}`))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		req := httptest.NewRequest(http.MethodPost, "/users/login", &buf)
		req.Header.Set("Content-Encoding", "gzip")
		rec := serve(router, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("broken gzip body", func(t *testing.T) {
		_, router := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		rec := serve(router, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation keeps details",
			err:        fmt.Errorf("%w: name is required", service.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "validation failed: name is required",
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("get task: %w", store.ErrTaskNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    store.ErrTaskNotFound.Error(),
		},
		{
			name:       "empty header is a uniform 401",
			err:        ErrEmptyAuthorizationHeader,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "please authenticate",
		},
		{
			name:       "internal errors are hidden",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestResponseWriter_RecordsOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK)
	n, err := rw.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusTeapot, rw.status)
	assert.Equal(t, 5, rw.size)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
