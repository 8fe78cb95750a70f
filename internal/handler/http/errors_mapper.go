// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/task-manager/internal/logger"
	"github.com/MKhiriev/task-manager/internal/service"
	"github.com/MKhiriev/task-manager/internal/store"
	"github.com/MKhiriev/task-manager/internal/utils"
)

// errorResponse describes how a sentinel is reported. A detailed response
// carries the whole error text (e.g. the failed validation rule); otherwise
// only the sentinel's own message is exposed.
type errorResponse struct {
	status   int
	detailed bool
}

var errorStatusMap = map[error]errorResponse{
	service.ErrValidation:         {status: http.StatusBadRequest, detailed: true},
	service.ErrInvalidUpload:      {status: http.StatusBadRequest, detailed: true},
	service.ErrInvalidUpdates:     {status: http.StatusBadRequest},
	service.ErrInvalidCredentials: {status: http.StatusBadRequest},
	store.ErrEmailAlreadyExists:   {status: http.StatusBadRequest},
	ErrInvalidJSON:                {status: http.StatusBadRequest},

	service.ErrUnauthorized:     {status: http.StatusUnauthorized},
	service.ErrTokenIsInvalid:   {status: http.StatusUnauthorized},
	ErrEmptyAuthorizationHeader: {status: http.StatusUnauthorized},

	store.ErrUserNotFound:  {status: http.StatusNotFound},
	store.ErrTaskNotFound:  {status: http.StatusNotFound},
	store.ErrImageNotFound: {status: http.StatusNotFound},
}

// statusFromError returns the HTTP status and public message for err.
// Unknown errors are internal: 500 with a generic message.
func statusFromError(err error) (int, string) {
	for target, resp := range errorStatusMap {
		if !errors.Is(err, target) {
			continue
		}

		msg := target.Error()
		if resp.detailed {
			msg = err.Error()
		}
		// 401 bodies are uniform whatever the cause
		if resp.status == http.StatusUnauthorized {
			msg = service.ErrUnauthorized.Error()
		}
		return resp.status, msg
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and writes the mapped JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteError(w, msg, status)
}
