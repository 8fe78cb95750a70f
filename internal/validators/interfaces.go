// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the field rules of users and tasks.
//
// Validators never mutate their input: callers normalize values (trim,
// lower-case) first and validate the normalized form.
package validators

import "context"

// Validator validates the provided input and optionally restricts validation
// to specific named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
