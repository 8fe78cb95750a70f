// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/task-manager/internal/logger"
	"github.com/MKhiriev/task-manager/models"
)

type logMailer struct {
	logger *logger.Logger
}

// NewLogMailer returns a [Mailer] that only logs what it would have sent.
func NewLogMailer(logger *logger.Logger) Mailer {
	return &logMailer{logger: logger}
}

func (l *logMailer) Send(ctx context.Context, mail models.Mail) error {
	if mail.To == "" {
		return ErrNoRecipient
	}

	l.logger.Info().
		Str("kind", string(mail.Kind)).
		Str("to", mail.To).
		Str("subject", mail.Subject).
		Msg("mail not sent: no provider configured")
	return nil
}
