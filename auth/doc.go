// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides signing and random token utilities.

# Signatures

Values are signed with HMAC-SHA256 keyed by the server's secret key:

	sig := auth.Sign(value, secret)
	err := auth.Verify(value, sig, secret)

Signatures are URL-safe base64 encoded without padding.

# Flash Messages

The HTML console carries one-shot messages across a redirect in a signed
cookie:

	sealed, err := auth.SealFlash([]string{"New item created"}, secret)
	messages, err := auth.OpenFlash(sealed, secret)

A cookie that fails verification is rejected with ErrInvalidSignature.

# ID Generation

Random hex strings, used for per-process secret keys:

	id, err := auth.GenerateID(24)  // 48 hex characters
*/
package auth
