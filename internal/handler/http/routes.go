// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// createUserPath is the only route under /api/v1/auth reachable without a
// bearer token.
const createUserPath = "/api/v1/auth/user/create"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRecovery, h.withTraceID, h.withLogging, withMetrics, h.withRateLimit, withGZip)

	// must be set before any sub-router is mounted so that they inherit it
	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Get("/", h.homepage)
	router.Get("/ip", h.getIP)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/", h.apiIndex)
		r.Get("/version", h.getServerVersion)

		r.Route("/v1", func(r chi.Router) {
			r.Get("/", h.apiV1Index)

			r.Route("/wiki", func(r chi.Router) {
				r.Get("/", h.wikiIndex)
			})

			r.Route("/auth", func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/user/create", h.createUser)
				r.Get("/user", h.getCurrentUser)
				r.Get("/user/{id}", h.getUser)
			})
		})
	})

	router.Route("/storage", func(r chi.Router) {
		r.Post("/create", h.createStorage)
		r.Get("/download/{id}", h.downloadStorage)
		r.Get("/{id}", h.getStorage)
	})

	router.Route("/oauth2", func(r chi.Router) {
		r.Get("/", h.oauth2Index)
		r.Get("/discord/callback", h.discordCallback)
	})

	return router
}
