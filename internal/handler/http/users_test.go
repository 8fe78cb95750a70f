// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/task-manager/internal/service"
	"github.com/MKhiriev/task-manager/internal/store"
	"github.com/MKhiriev/task-manager/internal/validators"
	"github.com/MKhiriev/task-manager/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSignup(t *testing.T) {
	req := models.SignupRequest{Name: "Jen", Email: "jen@example.com", Password: "Red12345!"}

	t.Run("created", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.auth.EXPECT().Signup(gomock.Any(), req).
			Return(models.AuthResponse{User: testUser, Token: testToken}, nil)

		rec := serve(router, newJSONRequest(t, http.MethodPost, "/users", req))

		assert.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeBody[models.AuthResponse](t, rec)
		assert.Equal(t, testToken, resp.Token)
		assert.Equal(t, testUserID, resp.User.UserID)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("validation error carries the rule", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.auth.EXPECT().Signup(gomock.Any(), gomock.Any()).
			Return(models.AuthResponse{}, fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrPasswordTooShort))

		rec := serve(router, newJSONRequest(t, http.MethodPost, "/users", req))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorMessage(t, rec), validators.ErrPasswordTooShort.Error())
	})

	t.Run("duplicate email", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.auth.EXPECT().Signup(gomock.Any(), gomock.Any()).
			Return(models.AuthResponse{}, fmt.Errorf("create user: %w", store.ErrEmailAlreadyExists))

		rec := serve(router, newJSONRequest(t, http.MethodPost, "/users", req))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, store.ErrEmailAlreadyExists.Error(), errorMessage(t, rec))
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, router := newTestRouter(t)

		rec := serve(router, newJSONRequest(t, http.MethodPost, "/users", `{"name":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, ErrInvalidJSON.Error(), errorMessage(t, rec))
	})
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "jen@example.com", Password: "nope"}).
		Return(models.AuthResponse{}, service.ErrInvalidCredentials)

	rec := serve(router, newJSONRequest(t, http.MethodPost, "/users/login",
		models.LoginRequest{Email: "jen@example.com", Password: "nope"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unable to login", errorMessage(t, rec))
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(ts *testServices)
	}{
		{name: "no header"},
		{name: "not a bearer", header: "Basic abc"},
		{
			name:   "revoked token",
			header: "Bearer " + testToken,
			setup: func(ts *testServices) {
				ts.auth.EXPECT().Authenticate(gomock.Any(), testToken).Return(models.User{}, service.ErrUnauthorized)
			},
		},
		{
			name:   "bad signature",
			header: "Bearer " + testToken,
			setup: func(ts *testServices) {
				ts.auth.EXPECT().Authenticate(gomock.Any(), testToken).
					Return(models.User{}, fmt.Errorf("%w: signature is invalid", service.ErrTokenIsInvalid))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, router := newTestRouter(t)
			if tt.setup != nil {
				tt.setup(ts)
			}

			req := newJSONRequest(t, http.MethodGet, "/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := serve(router, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "please authenticate", errorMessage(t, rec))
		})
	}
}

func TestGetProfile(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.expectAuthenticated()

	rec := serve(router, withToken(newJSONRequest(t, http.MethodGet, "/users/me", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testUser.Email, decodeBody[models.User](t, rec).Email)
}

func TestLogout_RevokesPresentedToken(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.expectAuthenticated()
	ts.auth.EXPECT().Logout(gomock.Any(), testUserID, testToken).Return(nil)

	rec := serve(router, withToken(newJSONRequest(t, http.MethodPost, "/users/logout", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogoutAll(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.expectAuthenticated()
	ts.auth.EXPECT().LogoutAll(gomock.Any(), testUserID).Return(nil)

	rec := serve(router, withToken(newJSONRequest(t, http.MethodPost, "/users/logoutAll", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateProfile(t *testing.T) {
	t.Run("applies allowed fields", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.expectAuthenticated()

		name := "Jennifer"
		updated := testUser
		updated.Name = name
		ts.users.EXPECT().UpdateProfile(gomock.Any(), testUserID, models.UserUpdate{Name: &name}).Return(updated, nil)

		rec := serve(router, withToken(newJSONRequest(t, http.MethodPatch, "/users/me", `{"name":"Jennifer"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, name, decodeBody[models.User](t, rec).Name)
	})

	t.Run("unknown field rejects the whole update", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.expectAuthenticated()

		rec := serve(router, withToken(newJSONRequest(t, http.MethodPatch, "/users/me", `{"name":"Jen","id":"x"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid updates", errorMessage(t, rec))
	})
}

func TestDeleteAccount(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.expectAuthenticated()
	ts.users.EXPECT().DeleteAccount(gomock.Any(), testUser).Return(testUser, nil)

	rec := serve(router, withToken(newJSONRequest(t, http.MethodDelete, "/users/me", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testUserID, decodeBody[models.User](t, rec).UserID)
}
