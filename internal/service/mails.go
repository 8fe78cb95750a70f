// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/task-manager/models"
)

func welcomeMail(user models.User) models.Mail {
	return models.Mail{
		Kind:    models.MailWelcome,
		To:      user.Email,
		Name:    user.Name,
		Subject: "Thanks for joining in!",
		Text:    fmt.Sprintf("Welcome to the app, %s. Let me know how you get along with the app.", user.Name),
	}
}

func cancellationMail(user models.User) models.Mail {
	return models.Mail{
		Kind:    models.MailCancellation,
		To:      user.Email,
		Name:    user.Name,
		Subject: "Task Manager Account Cancelation",
		Text:    fmt.Sprintf("Sorry to see you go %s... Please share your thoughts on how our service could have been better.", user.Name),
	}
}

// notify hands mail to n. A full queue drops the mail; the dispatcher logs
// it and the caller is never affected.
func notify(n Notifier, mail models.Mail) {
	if n == nil {
		return
	}
	_ = n.Enqueue(mail)
}
