// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RPMTW/RPMTW-Server/internal/logger"
	"github.com/RPMTW/RPMTW-Server/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenLimiterStore struct{}

func (brokenLimiterStore) Take(context.Context, string, time.Time, ratelimit.Policy) (ratelimit.Decision, error) {
	return ratelimit.Decision{}, errors.New("redis: connection refused")
}

func newLimitedHandler(t *testing.T, store ratelimit.Store, policy ratelimit.Policy, now func() time.Time) *Handler {
	t.Helper()
	limiter, err := ratelimit.NewLimiter(store, policy, ratelimit.WithClock(now))
	require.NoError(t, err)
	return &Handler{limiter: limiter, logger: logger.Nop()}
}

func requestFrom(ip string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.RemoteAddr = ip + ":5555"
	return req
}

func TestWithRateLimit_BlocksAfterQuota(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h := newLimitedHandler(t, ratelimit.NewMemoryStore(),
		ratelimit.Policy{Quota: 2, Window: time.Minute, BlockDuration: 90 * time.Second},
		func() time.Time { return now })

	calls := 0
	mw := h.withRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	assert.Equal(t, http.StatusOK, serve(mw, requestFrom("10.0.0.1")).Code)
	assert.Equal(t, http.StatusOK, serve(mw, requestFrom("10.0.0.1")).Code)

	rr := serve(mw, requestFrom("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "Too Many Requests", decodeMessage(t, rr.Body))
	assert.Equal(t, "90", rr.Header().Get("Retry-After"))
	assert.Equal(t, 2, calls)

	// another client is unaffected
	assert.Equal(t, http.StatusOK, serve(mw, requestFrom("10.0.0.2")).Code)
}

func TestWithRateLimit_UsesForwardedFor(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h := newLimitedHandler(t, ratelimit.NewMemoryStore(),
		ratelimit.Policy{Quota: 1, Window: time.Minute},
		func() time.Time { return now })
	mw := h.withRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := requestFrom("10.0.0.1")
	first.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	second := requestFrom("10.0.0.1")
	second.Header.Set("X-Forwarded-For", "203.0.113.8")

	assert.Equal(t, http.StatusOK, serve(mw, first).Code)
	assert.Equal(t, http.StatusOK, serve(mw, second).Code)
}

func TestWithRateLimit_AllowsAfterBlock(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h := newLimitedHandler(t, ratelimit.NewMemoryStore(),
		ratelimit.Policy{Quota: 1, Window: time.Second, BlockDuration: 5 * time.Second},
		func() time.Time { return now })
	mw := h.withRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	assert.Equal(t, http.StatusOK, serve(mw, requestFrom("10.0.0.1")).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(mw, requestFrom("10.0.0.1")).Code)

	now = now.Add(6 * time.Second)
	assert.Equal(t, http.StatusOK, serve(mw, requestFrom("10.0.0.1")).Code)
}

func TestWithRateLimit_StoreFailure(t *testing.T) {
	h := newLimitedHandler(t, brokenLimiterStore{}, ratelimit.Policy{Quota: 1, Window: time.Second}, time.Now)

	called := false
	mw := h.withRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	rr := serve(mw, requestFrom("10.0.0.1"))

	assert.False(t, called)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Internal Server Error", decodeMessage(t, rr.Body))
}

func TestWithRateLimit_NilLimiterPassesThrough(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	rr := serve(h.withRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})), requestFrom("10.0.0.1"))

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, "1", retryAfterSeconds(0))
	assert.Equal(t, "1", retryAfterSeconds(200*time.Millisecond))
	assert.Equal(t, "2", retryAfterSeconds(1500*time.Millisecond))
	assert.Equal(t, "60", retryAfterSeconds(time.Minute))
}
