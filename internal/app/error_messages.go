// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// RPMTW server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the {"message": ...} body of HTTP responses. Keeping them in one place
// ensures consistent wording throughout the API.
package app

const (
	// MsgParameterError is returned when the request body cannot be decoded,
	// fails validation, or references a record that does not exist.
	MsgParameterError = "Parameter Error"

	// MsgUnauthorized is returned when the bearer token is missing,
	// malformed, signed with another key, or names a user that no longer
	// exists.
	MsgUnauthorized = "Unauthorized"

	// MsgTokenExpired is returned when the bearer token is authentic but its
	// expiry time has passed.
	MsgTokenExpired = "Token Expired"

	// MsgNotFound is returned for unknown routes and missing records.
	MsgNotFound = "Not Found"

	// MsgTooManyRequests is returned by the rate-limiting gate.
	MsgTooManyRequests = "Too Many Requests"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"

	// MsgBadGateway is returned when the OAuth2 provider rejects the code
	// exchange or cannot be reached.
	MsgBadGateway = "Bad Gateway"
)

// Informational messages of the root routes.
const (
	MsgWelcomeAPI  = "welcome to RPMTW Wiki API"
	MsgOAuth2Page  = "RPMTW Wiki Oauth2 page"
	MsgWiki        = "wiki"
	APIVersionName = "v1"
)
