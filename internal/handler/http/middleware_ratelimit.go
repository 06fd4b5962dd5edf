// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/RPMTW/RPMTW-Server/internal/logger"
	"github.com/RPMTW/RPMTW-Server/internal/metrics"
	"github.com/RPMTW/RPMTW-Server/internal/ratelimit"
	"github.com/RPMTW/RPMTW-Server/internal/utils"
)

// withRateLimit admits a request against the limiter under its client key
// (see utils.ClientIP). Blocked requests get 429 with Retry-After and never
// reach the next handler; a failing limiter store yields 500.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := utils.ClientIP(r)

		decision, err := h.limiter.Check(r.Context(), key)
		switch {
		case errors.Is(err, ratelimit.ErrRateLimited):
			metrics.RateLimitDecisionsTotal.WithLabelValues(metrics.ResultBlocked).Inc()
			logger.FromRequest(r).Warn().Str("key", key).Dur("retry_after", decision.RetryAfter).Msg("request rate limited")
			w.Header().Set("Retry-After", retryAfterSeconds(decision.RetryAfter))
			writeError(w, r, err)
			return
		case err != nil:
			metrics.RateLimitDecisionsTotal.WithLabelValues(metrics.ResultError).Inc()
			writeError(w, r, err)
			return
		}

		metrics.RateLimitDecisionsTotal.WithLabelValues(metrics.ResultAllowed).Inc()
		next.ServeHTTP(w, r)
	})
}

// retryAfterSeconds rounds d up to whole seconds, at least 1.
func retryAfterSeconds(d time.Duration) string {
	seconds := int(math.Ceil(d.Seconds()))
	if seconds < 1 {
		seconds = 1
	}
	return strconv.Itoa(seconds)
}
