// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("red12345!")
	require.NoError(t, err)

	assert.NotEqual(t, "red12345!", hash)
	assert.NoError(t, CheckPassword(hash, "red12345!"))
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("right-one")
	require.NoError(t, err)

	assert.ErrorIs(t, CheckPassword(hash, "wrong-one"), ErrPasswordMismatch)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	err := CheckPassword("not-a-bcrypt-hash", "whatever")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}
