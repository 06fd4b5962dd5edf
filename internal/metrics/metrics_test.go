// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTokenVerificationsTotal_CountsByResult(t *testing.T) {
	before := testutil.ToFloat64(TokenVerificationsTotal.WithLabelValues(ResultExpired))

	TokenVerificationsTotal.WithLabelValues(ResultExpired).Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(TokenVerificationsTotal.WithLabelValues(ResultExpired)))
}

func TestRateLimitTrackedKeys_Set(t *testing.T) {
	RateLimitTrackedKeys.Set(7)

	assert.Equal(t, float64(7), testutil.ToFloat64(RateLimitTrackedKeys))
}

func TestHTTPRequestsTotal_Labels(t *testing.T) {
	c := HTTPRequestsTotal.WithLabelValues("/ip", "GET", "200")
	before := testutil.ToFloat64(c)

	c.Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
