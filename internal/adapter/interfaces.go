// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound HTTP adapters of the server.
//
// The only adapter today is the Discord OAuth2 token exchange used by the
// login relay ([NewDiscordProvider]). Every transport failure and every
// non-2xx answer is reported as [ErrProviderRejected] so that the HTTP layer
// can answer 502 without looking at provider details.
package adapter

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// OAuthProvider exchanges an OAuth2 authorization code for the provider's
// token response.
type OAuthProvider interface {
	// ExchangeCode posts code to the provider token endpoint and returns the
	// provider JSON body untouched.
	ExchangeCode(ctx context.Context, code string) (json.RawMessage, error)
}
