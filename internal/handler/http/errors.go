// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Kovalyov

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header is present
	// but holds no token value after stripping the optional "Bearer " prefix.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
