// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"time"

	"github.com/MKhiriev/task-manager/models"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizePassword trims surrounding whitespace. Signup, profile update and
// login all apply it, so the stored hash always matches the login input.
func normalizePassword(password string) string {
	return strings.TrimSpace(password)
}

func normalizeSignup(req models.SignupRequest) models.SignupRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	req.Password = normalizePassword(req.Password)
	return req
}

func normalizeUserUpdate(update models.UserUpdate) models.UserUpdate {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}
	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		update.Email = &email
	}
	if update.Password != nil {
		password := normalizePassword(*update.Password)
		update.Password = &password
	}
	return update
}

// now is the timestamp source of every service. Stored timestamps keep
// microsecond precision, the finest both SQL dialects round-trip.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
