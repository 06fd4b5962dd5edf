// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"fmt"

	"github.com/RPMTW/RPMTW-Server/internal/logger"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServerOptions returns the interceptor chain every gRPC server of the
// application is built with: panic recovery first, then call logging.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	recoveryOpt := recovery.WithRecoveryHandler(h.recoverPanic)
	logOpts := []logging.Option{
		logging.WithLogOnEvents(logging.FinishCall),
	}

	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recoveryOpt),
			logging.UnaryServerInterceptor(interceptorLogger(h.logger), logOpts...),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpt),
			logging.StreamServerInterceptor(interceptorLogger(h.logger), logOpts...),
		),
	}
}

func (h *Handler) recoverPanic(p any) error {
	h.logger.Error().Str("panic", fmt.Sprint(p)).Msg("gRPC handler panicked")
	return status.Error(codes.Internal, "internal error")
}

// interceptorLogger adapts the application logger to the go-grpc-middleware
// logging interface.
func interceptorLogger(l *logger.Logger) logging.Logger {
	return logging.LoggerFunc(func(_ context.Context, lvl logging.Level, msg string, fields ...any) {
		var level zerolog.Level
		switch lvl {
		case logging.LevelDebug:
			level = zerolog.DebugLevel
		case logging.LevelInfo:
			level = zerolog.InfoLevel
		case logging.LevelWarn:
			level = zerolog.WarnLevel
		case logging.LevelError:
			level = zerolog.ErrorLevel
		default:
			level = zerolog.InfoLevel
		}

		l.WithLevel(level).Fields(fields).Msg(msg)
	})
}
