// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/RPMTW/RPMTW-Server/internal/adapter"
	"github.com/RPMTW/RPMTW-Server/internal/logger"
)

type oauthService struct {
	discord adapter.OAuthProvider

	logger *logger.Logger
}

func NewOAuthService(discord adapter.OAuthProvider, logger *logger.Logger) OAuthService {
	return &oauthService{discord: discord, logger: logger}
}

// ExchangeDiscordCode relays code to Discord and returns the provider body.
// A missing code is ErrInvalidDataProvided; provider failures keep
// adapter.ErrProviderRejected in the chain.
func (o *oauthService) ExchangeDiscordCode(ctx context.Context, code string) (json.RawMessage, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrInvalidDataProvided
	}

	body, err := o.discord.ExchangeCode(ctx, code)
	if err != nil {
		if errors.Is(err, adapter.ErrEmptyCode) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		logger.FromContext(ctx).Err(err).Msg("discord code exchange failed")
		return nil, fmt.Errorf("discord code exchange failed: %w", err)
	}

	return body, nil
}
