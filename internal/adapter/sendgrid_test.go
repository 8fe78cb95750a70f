// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/task-manager/internal/config"
	"github.com/MKhiriev/task-manager/internal/logger"
	"github.com/MKhiriev/task-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailer(t *testing.T, serverURL string) Mailer {
	t.Helper()
	m, err := NewSendGridMailer(config.Mail{
		APIKey:  "SG.test-key",
		BaseURL: serverURL,
		From:    "noreply@task-manager.local",
		Timeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return m
}

var welcome = models.Mail{
	Kind:    models.MailWelcome,
	To:      "mike@test.com",
	Name:    "Mike",
	Subject: "Thanks for joining in!",
	Text:    "Welcome to the app, Mike. Let me know how you get along with the app.",
}

func TestSendGridMailer_Send_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer SG.test-key", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var body sendGridRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Personalizations, 1)
		assert.Equal(t, []sendGridAddress{{Email: "mike@test.com", Name: "Mike"}}, body.Personalizations[0].To)
		assert.Equal(t, "noreply@task-manager.local", body.From.Email)
		assert.Equal(t, welcome.Subject, body.Subject)
		assert.Equal(t, []sendGridContent{{Type: "text/plain", Value: welcome.Text}}, body.Content)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	err := newTestMailer(t, srv.URL).Send(context.Background(), welcome)
	assert.NoError(t, err)
}

func TestSendGridMailer_Send_MapsErrors(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusRequestEntityTooLarge, ErrPayloadTooLarge},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusInternalServerError, ErrProviderUnavailable},
		{http.StatusServiceUnavailable, ErrProviderUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"errors":[{"message":"nope"}]}`))
			}))
			defer srv.Close()

			err := newTestMailer(t, srv.URL).Send(context.Background(), welcome)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSendGridMailer_Send_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestMailer(t, srv.URL).Send(context.Background(), welcome)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestSendGridMailer_Send_NoRecipient(t *testing.T) {
	err := newTestMailer(t, "http://127.0.0.1:1").Send(context.Background(), models.Mail{Subject: "x"})
	assert.ErrorIs(t, err, ErrNoRecipient)
}

func TestSendGridMailer_Send_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestMailer(t, url).Send(context.Background(), welcome)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send mail request")
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "https://api.sendgrid.com/", want: "https://api.sendgrid.com"},
		{raw: "  api.sendgrid.com ", want: "https://api.sendgrid.com"},
		{raw: "http://localhost:8025", want: "http://localhost:8025"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewMailer(t *testing.T) {
	m, err := NewMailer(config.Mail{}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &logMailer{}, m)
	assert.NoError(t, m.Send(context.Background(), welcome))
	assert.ErrorIs(t, m.Send(context.Background(), models.Mail{}), ErrNoRecipient)

	m, err = NewMailer(config.Mail{APIKey: "k", BaseURL: "https://api.sendgrid.com"}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &sendGridMailer{}, m)

	_, err = NewMailer(config.Mail{APIKey: "k"}, logger.Nop())
	assert.Error(t, err)
}
