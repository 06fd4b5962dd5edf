// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	start        time.Time
	count        int
	blockedUntil time.Time
}

// MemoryStore is an in-process [Store]. All keys share one mutex, so a
// burst from one client is counted exactly.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string]*window)}
}

func (s *MemoryStore) Take(_ context.Context, key string, now time.Time, policy Policy) (Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok {
		w = &window{start: now}
		s.windows[key] = w
	}

	if !w.blockedUntil.IsZero() {
		if now.Before(w.blockedUntil) {
			return Decision{RetryAfter: w.blockedUntil.Sub(now)}, nil
		}
		*w = window{start: now}
	}

	if !now.Before(w.start.Add(policy.Window)) {
		*w = window{start: now}
	}

	w.count++
	if w.count > policy.Quota {
		w.blockedUntil = policy.blockUntil(now, w.start)
		return Decision{RetryAfter: w.blockedUntil.Sub(now)}, nil
	}

	return Decision{Allowed: true, Remaining: policy.Quota - w.count}, nil
}

// Sweep drops keys whose window and block both ended before now and
// returns how many were dropped.
func (s *MemoryStore) Sweep(now time.Time, policy Policy) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, w := range s.windows {
		if now.Before(w.blockedUntil) || now.Before(w.start.Add(policy.Window)) {
			continue
		}
		delete(s.windows, key)
		removed++
	}
	return removed
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}
