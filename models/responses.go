// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body of every error answered by the HTTP API.
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse is the body of the informational endpoints
// (API root, OAuth2 page).
type InfoResponse struct {
	Message string `json:"message,omitempty"`
	Version string `json:"version,omitempty"`
	Code    int    `json:"code"`
}

// IPResponse reports the client address as seen by the server.
type IPResponse struct {
	IP   string `json:"ip"`
	Code int    `json:"code"`
}

// VersionResponse describes the running server build.
type VersionResponse struct {
	Version      string `json:"version"`
	BuildVersion string `json:"buildVersion"`
	BuildDate    string `json:"buildDate"`
	BuildCommit  string `json:"buildCommit"`
}
