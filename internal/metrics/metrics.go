// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics defines every Prometheus collector exported by the server.
// Collectors are registered with the default registry on package load and are
// exposed by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rpmtw"

// ── HTTP ─────────────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts answered requests.
// Labels:
//   - route: chi route pattern (e.g. "/api/v1/auth/user/{id}"), or "unmatched"
//   - method: HTTP method
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests answered, by route, method and status.",
	},
	[]string{"route", "method", "status"},
)

// HTTPRequestDuration measures request handling latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"route", "method"},
)

// ── Rate limiter ─────────────────────────────────────────────────────────────

// RateLimitDecisionsTotal counts limiter decisions.
// Label:
//   - result: "allowed", "blocked" or "error"
var RateLimitDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_decisions_total",
		Help:      "Total number of rate limiter decisions, by result.",
	},
	[]string{"result"},
)

// RateLimitTrackedKeys is the number of client keys held by the in-process
// limiter store after the last sweep.
var RateLimitTrackedKeys = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "rate_limit_tracked_keys",
		Help:      "Number of client keys tracked by the in-process rate limiter.",
	},
)

// ── Tokens ───────────────────────────────────────────────────────────────────

// TokensIssuedTotal counts bearer tokens issued.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued.",
	},
)

// TokenVerificationsTotal counts token verifications.
// Label:
//   - result: "valid", "expired" or "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// Label values shared by the collectors above.
const (
	ResultAllowed = "allowed"
	ResultBlocked = "blocked"
	ResultError   = "error"

	ResultValid   = "valid"
	ResultExpired = "expired"
	ResultInvalid = "invalid"

	RouteUnmatched = "unmatched"
)
