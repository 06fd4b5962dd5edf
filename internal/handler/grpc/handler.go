// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"github.com/RPMTW/RPMTW-Server/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name under which the server reports its own health
// in addition to the overall ("") status.
const ServiceName = "rpmtw.Server"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1 service so that orchestrators can
// probe the process without going through the HTTP stack.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health status starts as SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return h
}

// Register attaches every gRPC service of the handler to the registrar.
func (h *Handler) Register(registrar grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(registrar, h.health)
}

// Shutdown flips all statuses to NOT_SERVING. Statuses set afterwards are
// ignored.
func (h *Handler) Shutdown() {
	h.logger.Debug().Msg("gRPC health switched to NOT_SERVING")
	h.health.Shutdown()
}
