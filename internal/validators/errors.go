// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameRequired             = errors.New("name is required")
	ErrInvalidEmail             = errors.New("email is invalid")
	ErrPasswordTooShort         = errors.New("password must be at least 7 characters")
	ErrPasswordTooLong          = errors.New("password must be at most 72 bytes")
	ErrPasswordContainsPassword = errors.New(`password cannot contain "password"`)
	ErrNegativeAge              = errors.New("age must be a positive number")
	ErrDescriptionRequired      = errors.New("description is required")
	ErrNoFieldsToUpdate         = errors.New("at least one field must be provided for update")
)
