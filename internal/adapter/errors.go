// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("mail provider rejected the request")
	ErrUnauthorized        = errors.New("mail provider rejected the api key")
	ErrForbidden           = errors.New("mail provider forbids sending")
	ErrPayloadTooLarge     = errors.New("mail is too large")
	ErrTooManyRequests     = errors.New("mail provider rate limit reached")
	ErrProviderUnavailable = errors.New("mail provider is unavailable")

	ErrNoRecipient = errors.New("mail has no recipient")
)
