// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/RPMTW/RPMTW-Server/internal/app"
	"github.com/RPMTW/RPMTW-Server/internal/utils"
	"github.com/RPMTW/RPMTW-Server/models"
)

func (h *Handler) oauth2Index(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.InfoResponse{Message: app.MsgOAuth2Page, Code: http.StatusOK}, http.StatusOK)
}

// discordCallback relays the provider's token response for ?code=... as is.
func (h *Handler) discordCallback(w http.ResponseWriter, r *http.Request) {
	body, err := h.services.OAuthService.ExchangeDiscordCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
