// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RPMTW/RPMTW-Server/internal/config"
	"github.com/RPMTW/RPMTW-Server/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, tokenURL string) OAuthProvider {
	t.Helper()
	cfg := config.OAuth{
		Timeout: 2 * time.Second,
		Discord: config.OAuthProvider{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURI:  "https://example.com/oauth2/discord/callback",
			TokenURL:     tokenURL,
		},
	}
	p, err := NewDiscordProvider(cfg, logger.Nop())
	require.NoError(t, err)
	return p
}

func TestNewDiscordProvider_EmptyTokenURL(t *testing.T) {
	_, err := NewDiscordProvider(config.OAuth{}, logger.Nop())
	assert.Error(t, err)
}

func TestExchangeCode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "identify", r.PostForm.Get("scope"))
		assert.Equal(t, "https://example.com/oauth2/discord/callback", r.PostForm.Get("redirect_uri"))
		assert.Equal(t, "abc", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"Bearer"}`))
	}))
	defer srv.Close()

	body, err := newTestProvider(t, srv.URL).ExchangeCode(context.Background(), "abc")

	require.NoError(t, err)
	assert.JSONEq(t, `{"access_token":"tok","token_type":"Bearer"}`, string(body))
}

func TestExchangeCode_EmptyCode(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := newTestProvider(t, srv.URL).ExchangeCode(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrEmptyCode)
	assert.False(t, called)
}

func TestExchangeCode_ProviderErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"invalid_grant"}`},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"invalid_client"}`},
		{name: "server error without body", status: http.StatusInternalServerError},
		{name: "non json success", status: http.StatusOK, body: "<html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			body, err := newTestProvider(t, srv.URL).ExchangeCode(context.Background(), "abc")

			assert.ErrorIs(t, err, ErrProviderRejected)
			assert.Nil(t, body)
		})
	}
}

func TestExchangeCode_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestProvider(t, url).ExchangeCode(context.Background(), "abc")

	assert.ErrorIs(t, err, ErrProviderRejected)
}

func TestExchangeCode_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestProvider(t, srv.URL).ExchangeCode(ctx, "abc")

	assert.ErrorIs(t, err, ErrProviderRejected)
}
