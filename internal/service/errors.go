// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrValidation     = errors.New("validation failed")
	ErrInvalidUpdates = errors.New("invalid updates")
	ErrInvalidUpload  = errors.New("invalid upload")

	// ErrInvalidCredentials is shared by unknown email and wrong password.
	ErrInvalidCredentials = errors.New("unable to login")

	ErrUnauthorized        = errors.New("please authenticate")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
