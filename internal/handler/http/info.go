// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	_ "embed"
	"net/http"

	"github.com/RPMTW/RPMTW-Server/internal/app"
	"github.com/RPMTW/RPMTW-Server/internal/utils"
	"github.com/RPMTW/RPMTW-Server/models"
)

//go:embed static/index.html
var homepageHTML []byte

func (h *Handler) homepage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(homepageHTML)
}

func (h *Handler) getIP(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.IPResponse{IP: utils.ClientIP(r), Code: http.StatusOK}, http.StatusOK)
}

func (h *Handler) apiIndex(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.InfoResponse{Message: app.MsgWelcomeAPI, Code: http.StatusOK}, http.StatusOK)
}

func (h *Handler) apiV1Index(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.InfoResponse{Version: app.APIVersionName, Code: http.StatusOK}, http.StatusOK)
}

func (h *Handler) wikiIndex(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.InfoResponse{Message: app.MsgWiki, Code: http.StatusOK}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	build := h.services.AppInfoService.GetBuildInfo(ctx)

	_, _ = utils.WriteJSON(w, models.VersionResponse{
		Version:      h.services.AppInfoService.GetAppVersion(ctx),
		BuildVersion: build.BuildVersion(),
		BuildDate:    build.BuildDate(),
		BuildCommit:  build.BuildCommit(),
	}, http.StatusOK)
}
