// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/RPMTW/RPMTW-Server/internal/config"
	"github.com/RPMTW/RPMTW-Server/internal/handler/grpc"
	"github.com/RPMTW/RPMTW-Server/internal/handler/http"
	"github.com/RPMTW/RPMTW-Server/internal/logger"
	"github.com/RPMTW/RPMTW-Server/internal/ratelimit"
	"github.com/RPMTW/RPMTW-Server/internal/service"
)

// Handlers groups the transport handlers enabled by the server config.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every transport that has an address
// configured. A nil limiter disables HTTP rate limiting.
func NewHandlers(services *service.Services, limiter *ratelimit.Limiter, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, limiter, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
