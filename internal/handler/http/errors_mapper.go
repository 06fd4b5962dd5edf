// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/RPMTW/RPMTW-Server/internal/adapter"
	"github.com/RPMTW/RPMTW-Server/internal/app"
	"github.com/RPMTW/RPMTW-Server/internal/logger"
	"github.com/RPMTW/RPMTW-Server/internal/ratelimit"
	"github.com/RPMTW/RPMTW-Server/internal/service"
	"github.com/RPMTW/RPMTW-Server/internal/store"
	"github.com/RPMTW/RPMTW-Server/internal/utils"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusTable is matched top to bottom; the first errors.Is hit wins.
var errorStatusTable = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgParameterError},
	{store.ErrAvatarStorageNotFound, http.StatusBadRequest, app.MsgParameterError},
	{service.ErrTokenIsExpired, http.StatusForbidden, app.MsgTokenExpired},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized, app.MsgUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgUnauthorized},
	{store.ErrNoUserWasFound, http.StatusNotFound, app.MsgNotFound},
	{store.ErrStorageNotFound, http.StatusNotFound, app.MsgNotFound},
	{ratelimit.ErrRateLimited, http.StatusTooManyRequests, app.MsgTooManyRequests},
	{adapter.ErrProviderRejected, http.StatusBadGateway, app.MsgBadGateway},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatusTable {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError answers with the status mapped from err. Server-side failures
// are logged; their details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("request failed")
	}
	utils.WriteError(w, status, message)
}
