// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/RPMTW/RPMTW-Server/internal/app"
	"github.com/RPMTW/RPMTW-Server/internal/utils"
)

// methodNotAllowed is the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path is known but the method is not. Here such
// requests get the same 404 {"message":"Not Found"} as unknown paths, so
// callers cannot probe which paths exist. It never re-enters the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(methodNotAllowed)
//	// ... register routes ...
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	notFound(w, r)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusNotFound, app.MsgNotFound)
}
