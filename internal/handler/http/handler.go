// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/RPMTW/RPMTW-Server/internal/config"
	"github.com/RPMTW/RPMTW-Server/internal/logger"
	"github.com/RPMTW/RPMTW-Server/internal/ratelimit"
	"github.com/RPMTW/RPMTW-Server/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  *ratelimit.Limiter

	maxUploadSize int64

	logger *logger.Logger
}

// NewHandler wires the HTTP layer. A nil limiter disables rate limiting.
func NewHandler(services *service.Services, limiter *ratelimit.Limiter, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		limiter:       limiter,
		maxUploadSize: cfg.MaxUploadSize,
		logger:        logger,
	}
}
