// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidToken     = errors.New("invalid token format")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Sign returns the HMAC-SHA256 of value keyed by secret
// URL-safe base64 without padding so it fits in a cookie
func Sign(value, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(value))
	return strings.TrimRight(base64.URLEncoding.EncodeToString(h.Sum(nil)), "=")
}

// Verify checks a signature produced by Sign in constant time
func Verify(value, signature, secret string) error {
	expected := Sign(value, secret)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return ErrInvalidSignature
	}
	return nil
}

// SealFlash encodes console flash messages as "<payload>.<signature>"
func SealFlash(messages []string, secret string) (string, error) {
	raw, err := json.Marshal(messages)
	if err != nil {
		return "", fmt.Errorf("failed to encode flash: %w", err)
	}
	payload := strings.TrimRight(base64.URLEncoding.EncodeToString(raw), "=")
	return payload + "." + Sign(payload, secret), nil
}

// OpenFlash verifies and decodes a value produced by SealFlash
func OpenFlash(sealed, secret string) ([]string, error) {
	payload, signature, ok := strings.Cut(sealed, ".")
	if !ok || payload == "" || signature == "" {
		return nil, ErrInvalidToken
	}
	if err := Verify(payload, signature, secret); err != nil {
		return nil, err
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidToken
	}
	var messages []string
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, ErrInvalidToken
	}
	return messages, nil
}
