// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/task-manager/internal/utils"
	"github.com/MKhiriev/task-manager/models"
	"github.com/go-chi/chi/v5"
)

const (
	avatarFormField    = "avatar"
	taskImageFormField = "image"

	// multipartOverhead is the room left for multipart headers and
	// boundaries on top of the file size limit.
	multipartOverhead = 64 << 10
)

// readUpload reads the single file field of a multipart request. The body is
// capped before parsing, so an oversized upload fails without being buffered.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request, field string) (models.Upload, error) {
	limit := h.maxUploadSize + multipartOverhead
	if r.ContentLength > limit {
		return models.Upload{}, ErrUploadTooBig
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return models.Upload{}, ErrUploadTooBig
		}
		return models.Upload{}, ErrMissingUpload
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(field)
	if err != nil {
		return models.Upload{}, ErrMissingUpload
	}
	defer file.Close()

	if header.Size > h.maxUploadSize {
		return models.Upload{}, ErrUploadTooBig
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return models.Upload{}, err
	}

	return models.Upload{Filename: header.Filename, Data: data}, nil
}

func (h *Handler) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	upload, err := h.readUpload(w, r, avatarFormField)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.SetAvatar(r.Context(), user.UserID, upload); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteAvatar(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteAvatar(r.Context(), user.UserID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// getAvatar is public.
func (h *Handler) getAvatar(w http.ResponseWriter, r *http.Request) {
	avatar, err := h.services.UserService.GetAvatar(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteImage(w, avatar)
}

func (h *Handler) uploadTaskImage(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	upload, err := h.readUpload(w, r, taskImageFormField)
	if err != nil {
		writeError(w, r, err)
		return
	}

	err = h.services.TaskService.SetTaskImage(r.Context(), user.UserID, chi.URLParam(r, "taskID"), upload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) getTaskImage(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	image, err := h.services.TaskService.GetTaskImage(r.Context(), user.UserID, chi.URLParam(r, "taskID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteImage(w, image)
}

func (h *Handler) deleteTaskImage(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.TaskService.DeleteTaskImage(r.Context(), user.UserID, chi.URLParam(r, "taskID")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
