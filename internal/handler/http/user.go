// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/RPMTW/RPMTW-Server/internal/app"
	"github.com/RPMTW/RPMTW-Server/internal/logger"
	"github.com/RPMTW/RPMTW-Server/internal/utils"
	"github.com/RPMTW/RPMTW-Server/models"
	"github.com/go-chi/chi/v5"
)

// maxUserBodySize bounds the JSON body of account creation.
const maxUserBodySize = 1 << 16

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUserBodySize)).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgParameterError)
		return
	}

	resp, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("id", resp.User.ID).Str("userName", resp.User.UserName).Msg("user created")
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

// getCurrentUser answers with the user resolved by the auth middleware.
func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}
