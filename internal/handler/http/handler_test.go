// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/task-manager/internal/config"
	"github.com/MKhiriev/task-manager/internal/logger"
	"github.com/MKhiriev/task-manager/internal/mock"
	"github.com/MKhiriev/task-manager/internal/service"
	"github.com/MKhiriev/task-manager/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testToken  = "test-token"
	testUserID = "0190b6f2-7a3c-7d2e-9f10-3c4b5a6d7e8f"
	testTaskID = "0190b6f2-8b4d-7e3f-a021-4d5c6b7e8f90"
)

var testUser = models.User{UserID: testUserID, Name: "Jen", Email: "jen@example.com", Age: 27}

type testServices struct {
	auth  *mock.MockAuthService
	users *mock.MockUserService
	tasks *mock.MockTaskService
	info  *mock.MockAppInfoService
}

// newTestRouter returns the full router backed by service mocks.
func newTestRouter(t *testing.T) (*testServices, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	ts := &testServices{
		auth:  mock.NewMockAuthService(ctrl),
		users: mock.NewMockUserService(ctrl),
		tasks: mock.NewMockTaskService(ctrl),
		info:  mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:    ts.auth,
		UserService:    ts.users,
		TaskService:    ts.tasks,
		AppInfoService: ts.info,
	}
	cfg := &config.StructuredConfig{
		Storage: config.Storage{Uploads: config.Uploads{MaxSize: 1 << 20, ImageSize: 250}},
	}

	return ts, NewHandler(services, cfg, logger.Nop()).Init()
}

// expectAuthenticated makes testToken resolve to testUser.
func (ts *testServices) expectAuthenticated() {
	ts.auth.EXPECT().Authenticate(gomock.Any(), testToken).Return(testUser, nil)
}

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withToken(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[models.ErrorResponse](t, rec).Error
}
