// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MailKind identifies a transactional email template.
type MailKind string

const (
	MailWelcome      MailKind = "welcome"
	MailCancellation MailKind = "cancellation"
)

// Mail is a rendered transactional email ready for delivery.
type Mail struct {
	Kind    MailKind
	To      string
	Name    string
	Subject string
	Text    string
}
