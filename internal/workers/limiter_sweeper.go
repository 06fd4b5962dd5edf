// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/RPMTW/RPMTW-Server/internal/logger"
	"github.com/RPMTW/RPMTW-Server/internal/metrics"
	"github.com/RPMTW/RPMTW-Server/internal/ratelimit"
)

// limiterStore is the part of the in-process limiter store the sweeper
// needs.
type limiterStore interface {
	Sweep(now time.Time, policy ratelimit.Policy) int
	Len() int
}

// LimiterSweeper periodically evicts idle client keys from an in-process
// rate limiter store so that its memory stays bounded by active clients.
type LimiterSweeper struct {
	store    limiterStore
	policy   ratelimit.Policy
	interval time.Duration
	logger   *logger.Logger
	now      func() time.Time
}

func NewLimiterSweeper(store limiterStore, policy ratelimit.Policy, interval time.Duration, log *logger.Logger) *LimiterSweeper {
	return &LimiterSweeper{
		store:    store,
		policy:   policy,
		interval: interval,
		logger:   log,
		now:      time.Now,
	}
}

func (s *LimiterSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.store.Sweep(s.now(), s.policy); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("swept idle rate limiter keys")
			}
			metrics.RateLimitTrackedKeys.Set(float64(s.store.Len()))
		}
	}
}
