// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/task-manager/internal/config"
	"github.com/MKhiriev/task-manager/internal/logger"
	"github.com/MKhiriev/task-manager/internal/utils"
	"github.com/MKhiriev/task-manager/models"
)

const sendGridSendPath = "/v3/mail/send"

type sendGridMailer struct {
	client *utils.HTTPClient

	apiKey string
	from   string

	logger *logger.Logger
}

// NewMailer returns a SendGrid mailer when cfg carries an API key and a
// log-only mailer otherwise.
func NewMailer(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		logger.Warn().Msg("mail api key is not set, mails will only be logged")
		return NewLogMailer(logger), nil
	}
	return NewSendGridMailer(cfg, logger)
}

// NewSendGridMailer constructs a [Mailer] speaking the SendGrid v3 API.
// It normalises and validates cfg.BaseURL.
func NewSendGridMailer(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mail base url: %w", err)
	}

	return &sendGridMailer{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		apiKey: cfg.APIKey,
		from:   cfg.From,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

type sendGridAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendGridPersonalization struct {
	To []sendGridAddress `json:"to"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridRequest struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendGridContent         `json:"content"`
}

func newSendGridRequest(from string, mail models.Mail) sendGridRequest {
	return sendGridRequest{
		Personalizations: []sendGridPersonalization{
			{To: []sendGridAddress{{Email: mail.To, Name: mail.Name}}},
		},
		From:    sendGridAddress{Email: from},
		Subject: mail.Subject,
		Content: []sendGridContent{{Type: "text/plain", Value: mail.Text}},
	}
}

// Send POSTs mail to /v3/mail/send. SendGrid answers 202 on acceptance.
func (s *sendGridMailer) Send(ctx context.Context, mail models.Mail) error {
	if mail.To == "" {
		return ErrNoRecipient
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(newSendGridRequest(s.from, mail)).
		Post(sendGridSendPath)
	if err != nil {
		return fmt.Errorf("send mail request: %w", err)
	}

	return mapHTTPError(resp)
}
