// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter delivers transactional mail to an external provider.
//
// The primary abstraction is [Mailer]. The package ships a SendGrid v3
// implementation ([NewSendGridMailer]) and a log-only implementation used when
// no API key is configured.
//
// Provider responses are mapped to the sentinel errors in errors.go by
// mapHTTPError, so callers can use [errors.Is] (e.g. [ErrUnauthorized] for a
// rejected API key).
package adapter

import (
	"context"

	"github.com/MKhiriev/task-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer sends a single rendered mail. Implementations must be safe for
// concurrent use by several dispatcher goroutines.
type Mailer interface {
	Send(ctx context.Context, mail models.Mail) error
}
