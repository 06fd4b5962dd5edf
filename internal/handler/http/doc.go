// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the RPMTW server.
//
// Every request passes, in order, through panic recovery, trace-id
// propagation, access logging, Prometheus instrumentation, the rate limiter
// and gzip negotiation before reaching the chi router. Routes under
// /api/v1/auth additionally require a valid bearer token, except the
// account-creation endpoint. All error answers share the body
// {"message": "..."}; see errors_mapper.go for the status table.
package http
