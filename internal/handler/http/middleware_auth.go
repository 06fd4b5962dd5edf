// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/RPMTW/RPMTW-Server/internal/app"
	"github.com/RPMTW/RPMTW-Server/internal/logger"
	"github.com/RPMTW/RPMTW-Server/internal/store"
	"github.com/RPMTW/RPMTW-Server/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The account-creation endpoint passes through untouched. For every other
// request the bearer token from the "Authorization" header is verified via
// [service.AuthService.ParseToken], the user it names is loaded, and the
// resolved [models.User] is stored in the request context with
// [utils.WithUser].
//
// Rejections:
//   - 401 when the header is missing or malformed, the token is invalid, or
//     the user no longer exists.
//   - 403 when the token is authentic but expired.
//   - 500 when the user lookup fails.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAuthExempt(r) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("rejected request without usable bearer token")
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("bearer token rejected")
			writeError(w, r, err)
			return
		}

		user, err := h.services.AuthService.GetUser(ctx, token.Claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				log.Warn().Str("userId", token.Claims.UserID).Msg("token names a user that does not exist")
				utils.WriteError(w, http.StatusUnauthorized, app.MsgUnauthorized)
				return
			}
			log.Err(err).Str("userId", token.Claims.UserID).Msg("resolving token user failed")
			utils.WriteError(w, http.StatusInternalServerError, app.MsgInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// isAuthExempt reports whether r is an account-creation call. Any other
// method on the same path still needs a token.
func isAuthExempt(r *http.Request) bool {
	return r.Method == http.MethodPost && strings.TrimSuffix(r.URL.Path, "/") == createUserPath
}

// getTokenFromAuthHeader extracts the credential from a raw
// "Authorization: Bearer <token>" header value.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if strings.TrimSpace(authHeader) == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
