// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/task-manager/models"
)

// Field names accepted by UserValidator.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldAge      = "age"
)

// Password length bounds. The upper one is bcrypt's input limit, in bytes.
const (
	MinPasswordLength = 7
	MaxPasswordLength = 72
)

// UserValidator implements Validator for models.SignupRequest and
// models.UserUpdate.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the dynamic type of obj. For a UserUpdate only the
// provided (non-nil) fields are checked.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.UserUpdate:
		return v.validateUpdate(value)
	case *models.UserUpdate:
		return v.validateUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldAge}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = validateName(req.Name)
		case FieldEmail:
			err = validateEmail(req.Email)
		case FieldPassword:
			err = validatePassword(req.Password)
		case FieldAge:
			if req.Age != nil {
				err = validateAge(*req.Age)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *UserValidator) validateUpdate(update models.UserUpdate) error {
	if update.Name == nil && update.Email == nil && update.Password == nil && update.Age == nil {
		return ErrNoFieldsToUpdate
	}

	if update.Name != nil {
		if err := validateName(*update.Name); err != nil {
			return err
		}
	}
	if update.Email != nil {
		if err := validateEmail(*update.Email); err != nil {
			return err
		}
	}
	if update.Password != nil {
		if err := validatePassword(*update.Password); err != nil {
			return err
		}
	}
	if update.Age != nil {
		return validateAge(*update.Age)
	}

	return nil
}

func validateName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	return nil
}

// validateEmail accepts a bare RFC 5322 address only, without a display name.
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(addr.Address, "@") {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	if strings.Contains(strings.ToLower(password), "password") {
		return ErrPasswordContainsPassword
	}
	return nil
}

func validateAge(age int) error {
	if age < 0 {
		return ErrNegativeAge
	}
	return nil
}
