// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/task-manager/internal/service"
)

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned for a body that is not valid JSON or does not
	// fit the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	ErrMissingUpload = fmt.Errorf("%w: please upload an image", service.ErrInvalidUpload)
	ErrUploadTooBig  = fmt.Errorf("%w: file is too large", service.ErrInvalidUpload)
)
