// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/RPMTW/RPMTW-Server/internal/config"
	"github.com/RPMTW/RPMTW-Server/internal/logger"
	"github.com/RPMTW/RPMTW-Server/internal/utils"
)

const (
	grantTypeAuthorizationCode = "authorization_code"
	discordScope               = "identify"
)

type discordProvider struct {
	client   *utils.HTTPClient
	provider config.OAuthProvider

	logger *logger.Logger
}

// NewDiscordProvider builds the Discord implementation of [OAuthProvider].
// cfg.Timeout bounds every exchange; retries are never performed.
func NewDiscordProvider(cfg config.OAuth, log *logger.Logger) (OAuthProvider, error) {
	tokenURL := strings.TrimSpace(cfg.Discord.TokenURL)
	if tokenURL == "" {
		return nil, fmt.Errorf("discord token url is empty")
	}

	provider := cfg.Discord
	provider.TokenURL = tokenURL

	return &discordProvider{
		client:   utils.NewHTTPClient(cfg.Timeout),
		provider: provider,
		logger:   log,
	}, nil
}

// ExchangeCode implements [OAuthProvider].
func (d *discordProvider) ExchangeCode(ctx context.Context, code string) (json.RawMessage, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}

	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFormData(map[string]string{
			"client_id":     d.provider.ClientID,
			"client_secret": d.provider.ClientSecret,
			"grant_type":    grantTypeAuthorizationCode,
			"scope":         discordScope,
			"redirect_uri":  d.provider.RedirectURI,
			"code":          code,
		}).
		Post(d.provider.TokenURL)
	if err != nil {
		d.logger.Err(err).Msg("discord token request failed")
		return nil, fmt.Errorf("%w: %v", ErrProviderRejected, err)
	}

	if err = mapHTTPError(resp); err != nil {
		d.logger.Warn().Err(err).
			Int("status", resp.StatusCode()).Msg("discord rejected the code exchange")
		return nil, err
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: response is not valid json", ErrProviderRejected)
	}

	return json.RawMessage(body), nil
}
