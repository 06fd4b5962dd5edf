// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type failingStore struct{}

func (failingStore) Take(context.Context, string, time.Time, Policy) (Decision, error) {
	return Decision{}, errors.New("connection refused")
}

func newTestLimiter(t *testing.T, policy Policy, c *clock) *Limiter {
	t.Helper()
	l, err := NewLimiter(NewMemoryStore(), policy, WithClock(c.Now))
	require.NoError(t, err)
	return l
}

func TestNewLimiter_InvalidPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
	}{
		{"zero quota", Policy{Quota: 0, Window: time.Second}},
		{"zero window", Policy{Quota: 1}},
		{"negative block", Policy{Quota: 1, Window: time.Second, BlockDuration: -time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLimiter(NewMemoryStore(), tt.policy)
			assert.ErrorIs(t, err, ErrInvalidPolicy)
		})
	}
}

func TestNewLimiter_NilStore(t *testing.T) {
	_, err := NewLimiter(nil, Policy{Quota: 1, Window: time.Second})
	assert.Error(t, err)
}

func TestLimiter_QuotaThenBlock(t *testing.T) {
	c := newClock()
	l := newTestLimiter(t, Policy{Quota: 3, Window: time.Second}, c)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d, err := l.Admit(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d", i+1)
		assert.Equal(t, 2-i, d.Remaining)
	}

	d, err := l.Admit(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, time.Second, d.RetryAfter)

	_, err = l.Check(ctx, "10.0.0.1")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	c := newClock()
	l := newTestLimiter(t, Policy{Quota: 1, Window: time.Second}, c)
	ctx := context.Background()

	d, _ := l.Admit(ctx, "a")
	assert.True(t, d.Allowed)
	d, _ = l.Admit(ctx, "a")
	assert.False(t, d.Allowed)

	d, _ = l.Admit(ctx, "b")
	assert.True(t, d.Allowed)
}

func TestLimiter_WindowResets(t *testing.T) {
	c := newClock()
	l := newTestLimiter(t, Policy{Quota: 2, Window: time.Second}, c)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		d, _ := l.Admit(ctx, "k")
		require.True(t, d.Allowed)
	}

	c.Advance(time.Second)

	d, err := l.Admit(ctx, "k")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.Remaining)
}

func TestLimiter_BlockOutlastsWindow(t *testing.T) {
	c := newClock()
	l := newTestLimiter(t, Policy{Quota: 1, Window: time.Second, BlockDuration: 10 * time.Second}, c)
	ctx := context.Background()

	d, _ := l.Admit(ctx, "k")
	require.True(t, d.Allowed)
	d, _ = l.Admit(ctx, "k")
	require.False(t, d.Allowed)
	assert.Equal(t, 10*time.Second, d.RetryAfter)

	c.Advance(5 * time.Second)
	d, _ = l.Admit(ctx, "k")
	assert.False(t, d.Allowed)
	assert.Equal(t, 5*time.Second, d.RetryAfter)

	c.Advance(5 * time.Second)
	d, _ = l.Admit(ctx, "k")
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
}

func TestLimiter_StoreError(t *testing.T) {
	l, err := NewLimiter(failingStore{}, Policy{Quota: 1, Window: time.Second})
	require.NoError(t, err)

	_, err = l.Admit(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
}

func TestLimiter_ConcurrentBurstIsCountedExactly(t *testing.T) {
	c := newClock()
	const quota = 50
	l := newTestLimiter(t, Policy{Quota: quota, Window: time.Minute}, c)

	var allowed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := l.Admit(context.Background(), "burst")
			if err == nil && d.Allowed {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(quota), allowed.Load())
}

func TestMemoryStore_Sweep(t *testing.T) {
	c := newClock()
	store := NewMemoryStore()
	policy := Policy{Quota: 1, Window: time.Second, BlockDuration: 5 * time.Second}
	ctx := context.Background()

	_, _ = store.Take(ctx, "idle", c.Now(), policy)
	_, _ = store.Take(ctx, "blocked", c.Now(), policy)
	_, _ = store.Take(ctx, "blocked", c.Now(), policy)
	require.Equal(t, 2, store.Len())

	c.Advance(2 * time.Second)
	assert.Equal(t, 1, store.Sweep(c.Now(), policy))
	assert.Equal(t, 1, store.Len())

	c.Advance(5 * time.Second)
	assert.Equal(t, 1, store.Sweep(c.Now(), policy))
	assert.Equal(t, 0, store.Len())
}

func TestConnectRedis_EmptyAddress(t *testing.T) {
	_, err := ConnectRedis(context.Background(), RedisConfig{})
	assert.Error(t, err)
}
