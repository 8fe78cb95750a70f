// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account of the task manager.
// Credential and binary fields never leave the server: they are excluded
// from JSON serialization.
type User struct {
	// UserID is the unique identifier of the user (UUIDv7 string).
	UserID string `json:"id"`

	// Name is the display name of the user, stored trimmed.
	Name string `json:"name"`

	// Email is the unique, lower-cased login of the user.
	Email string `json:"email"`

	// Age is an optional non-negative age of the user.
	Age int `json:"age"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored.
	PasswordHash string `json:"-"`

	// Avatar holds the normalized PNG avatar, nil when not set.
	Avatar []byte `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// SignupRequest is the body of POST /users.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      *int   `json:"age,omitempty"`
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate is a partial profile update. Only non-nil fields are applied.
type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Age      *int    `json:"age,omitempty"`

	// PasswordHash is filled by the service after Password was validated.
	PasswordHash *string `json:"-"`
}

// IsEmpty reports whether the update carries no persisted field.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.PasswordHash == nil && u.Age == nil
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
