// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			require.NoError(t, err)
			assert.Len(t, id, tt.wantLen)
			assert.Regexp(t, "^[0-9a-f]+$", id)
		})
	}

	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	assert.NotEqual(t, id1, id2, "GenerateID() produced duplicate IDs (extremely unlikely)")
}

func TestSignVerify(t *testing.T) {
	sig := Sign("payload", "secret")
	assert.NotEmpty(t, sig)
	assert.Equal(t, sig, Sign("payload", "secret"), "Sign() is not deterministic")
	assert.NotContains(t, sig, "=")

	assert.NoError(t, Verify("payload", sig, "secret"))
	assert.ErrorIs(t, Verify("payload", sig, "other-secret"), ErrInvalidSignature)
	assert.ErrorIs(t, Verify("payload2", sig, "secret"), ErrInvalidSignature)
}

func TestSealOpenFlash(t *testing.T) {
	messages := []string{"New item created", "Item with title a already exist. Title should be unique."}

	sealed, err := SealFlash(messages, "secret")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(sealed, "."))

	got, err := OpenFlash(sealed, "secret")
	require.NoError(t, err)
	assert.Equal(t, messages, got)
}

func TestOpenFlash_Rejects(t *testing.T) {
	sealed, err := SealFlash([]string{"hello"}, "secret")
	require.NoError(t, err)
	payload, sig, _ := strings.Cut(sealed, ".")

	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{"wrong secret", sealed, ErrInvalidSignature},
		{"tampered payload", payload + "x." + sig, ErrInvalidSignature},
		{"no separator", payload, ErrInvalidToken},
		{"empty", "", ErrInvalidToken},
		{"bad base64", "!!!." + Sign("!!!", "secret"), ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret := "secret"
			if tt.name == "wrong secret" {
				secret = "other"
			}
			_, err := OpenFlash(tt.value, secret)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
