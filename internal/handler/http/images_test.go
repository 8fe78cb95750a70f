// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/task-manager/internal/imaging"
	"github.com/MKhiriev/task-manager/internal/service"
	"github.com/MKhiriev/task-manager/internal/store"
	"github.com/MKhiriev/task-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUploadRequest(t *testing.T, target, field, filename string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return withToken(req)
}

func TestUploadAvatar(t *testing.T) {
	data := []byte("raw image bytes")

	t.Run("stored", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.expectAuthenticated()
		ts.users.EXPECT().
			SetAvatar(gomock.Any(), testUserID, models.Upload{Filename: "me.jpg", Data: data}).
			Return(nil)

		rec := serve(router, newUploadRequest(t, "/users/me/avatar", "avatar", "me.jpg", data))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong field name", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.expectAuthenticated()

		rec := serve(router, newUploadRequest(t, "/users/me/avatar", "image", "me.jpg", data))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorMessage(t, rec), "please upload an image")
	})

	t.Run("too large", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.expectAuthenticated()

		rec := serve(router, newUploadRequest(t, "/users/me/avatar", "avatar", "me.jpg", make([]byte, 2<<20)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorMessage(t, rec), "file is too large")
	})

	t.Run("rejected by normalizer", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.expectAuthenticated()
		ts.users.EXPECT().SetAvatar(gomock.Any(), testUserID, gomock.Any()).
			Return(fmt.Errorf("%w: %w", service.ErrInvalidUpload, imaging.ErrUnsupportedExtension))

		rec := serve(router, newUploadRequest(t, "/users/me/avatar", "avatar", "me.gif", data))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorMessage(t, rec), imaging.ErrUnsupportedExtension.Error())
	})
}

func TestGetAvatar_Public(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nfake")

	t.Run("found", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.users.EXPECT().GetAvatar(gomock.Any(), testUserID).Return(png, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/"+testUserID+"/avatar", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := serve(router, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("missing", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.users.EXPECT().GetAvatar(gomock.Any(), testUserID).Return(nil, store.ErrImageNotFound)

		rec := serve(router, httptest.NewRequest(http.MethodGet, "/users/"+testUserID+"/avatar", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteAvatar(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.expectAuthenticated()
	ts.users.EXPECT().DeleteAvatar(gomock.Any(), testUserID).Return(nil)

	rec := serve(router, withToken(httptest.NewRequest(http.MethodDelete, "/users/me/avatar", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTaskImage(t *testing.T) {
	target := "/tasks/" + testTaskID + "/image"

	t.Run("upload", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.expectAuthenticated()
		ts.tasks.EXPECT().
			SetTaskImage(gomock.Any(), testUserID, testTaskID, models.Upload{Filename: "a.png", Data: []byte("img")}).
			Return(nil)

		rec := serve(router, newUploadRequest(t, target, "image", "a.png", []byte("img")))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("get from a task of another user", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.expectAuthenticated()
		ts.tasks.EXPECT().GetTaskImage(gomock.Any(), testUserID, testTaskID).Return(nil, store.ErrTaskNotFound)

		rec := serve(router, withToken(httptest.NewRequest(http.MethodGet, target, nil)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.expectAuthenticated()
		ts.tasks.EXPECT().DeleteTaskImage(gomock.Any(), testUserID, testTaskID).Return(nil)

		rec := serve(router, withToken(httptest.NewRequest(http.MethodDelete, target, nil)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
