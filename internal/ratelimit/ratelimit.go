// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrRateLimited is returned by [Limiter.Check] for a blocked key.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrInvalidPolicy is returned by [NewLimiter] for a non-positive quota
	// or window.
	ErrInvalidPolicy = errors.New("invalid rate limit policy")
)

// Policy describes how many requests a single client key may make.
type Policy struct {
	// Quota is the number of requests admitted per window.
	Quota int
	// Window is the length of the fixed counting window.
	Window time.Duration
	// BlockDuration is how long a key is rejected after exceeding Quota.
	// Zero blocks until the end of the current window.
	BlockDuration time.Duration
}

func (p Policy) validate() error {
	if p.Quota <= 0 || p.Window <= 0 || p.BlockDuration < 0 {
		return fmt.Errorf("%w: quota=%d window=%s block=%s", ErrInvalidPolicy, p.Quota, p.Window, p.BlockDuration)
	}
	return nil
}

// blockUntil returns the moment a key exceeding the quota at now becomes
// admissible again.
func (p Policy) blockUntil(now, windowStart time.Time) time.Time {
	if p.BlockDuration > 0 {
		return now.Add(p.BlockDuration)
	}
	return windowStart.Add(p.Window)
}

// Decision is the outcome of one admission check.
type Decision struct {
	// Allowed reports whether the request may proceed.
	Allowed bool
	// Remaining is the number of requests still admitted in the current
	// window. Zero when the request was blocked.
	Remaining int
	// RetryAfter is how long the client should wait before retrying.
	// Zero when the request was allowed.
	RetryAfter time.Duration
}

// Store keeps per-key counters. Take must count the request and decide on
// it atomically with respect to concurrent calls for the same key.
type Store interface {
	Take(ctx context.Context, key string, now time.Time, policy Policy) (Decision, error)
}

// Limiter applies a [Policy] to client keys using a [Store].
type Limiter struct {
	store  Store
	policy Policy
	now    func() time.Time
}

// Option configures a [Limiter].
type Option func(*Limiter)

// WithClock replaces the wall clock used to timestamp requests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// NewLimiter builds a Limiter for policy on top of store.
func NewLimiter(store Store, policy Policy, opts ...Option) (*Limiter, error) {
	if store == nil {
		return nil, errors.New("rate limit store is nil")
	}
	if err := policy.validate(); err != nil {
		return nil, err
	}

	l := &Limiter{store: store, policy: policy, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Policy returns the policy the limiter enforces.
func (l *Limiter) Policy() Policy {
	return l.policy
}

// Admit counts a request from key and decides whether it may proceed.
// An error means the store could not be consulted; the request must not be
// treated as allowed or blocked.
func (l *Limiter) Admit(ctx context.Context, key string) (Decision, error) {
	decision, err := l.store.Take(ctx, key, l.now(), l.policy)
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit store failed for key %q: %w", key, err)
	}
	return decision, nil
}

// Check is Admit folded into a single error: nil when the request is
// allowed, [ErrRateLimited] when it is blocked.
func (l *Limiter) Check(ctx context.Context, key string) (Decision, error) {
	decision, err := l.Admit(ctx, key)
	if err != nil {
		return decision, err
	}
	if !decision.Allowed {
		return decision, ErrRateLimited
	}
	return decision, nil
}
