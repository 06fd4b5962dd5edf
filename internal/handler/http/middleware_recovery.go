// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"runtime/debug"

	"github.com/RPMTW/RPMTW-Server/internal/app"
	"github.com/RPMTW/RPMTW-Server/internal/utils"
)

// withRecovery turns a handler panic into a logged 500 with the generic
// error body. http.ErrAbortHandler is re-raised so net/http can abort the
// connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			h.logger.Error().
				Any("panic", rec).
				Str("uri", r.RequestURI).
				Str("method", r.Method).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			utils.WriteError(w, http.StatusInternalServerError, app.MsgInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
