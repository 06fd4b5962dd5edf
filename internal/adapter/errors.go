// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrProviderRejected is returned when the OAuth2 provider cannot be
	// reached or answers with a non-2xx status.
	ErrProviderRejected = errors.New("oauth2 provider rejected the request")

	// ErrEmptyCode is returned when no authorization code is supplied.
	ErrEmptyCode = errors.New("empty authorization code")
)
