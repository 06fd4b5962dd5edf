// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/RPMTW/RPMTW-Server/internal/config"
	"github.com/RPMTW/RPMTW-Server/internal/handler"
	"github.com/RPMTW/RPMTW-Server/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func newTestServer(t *testing.T, cfg config.Server) *server {
	t.Helper()

	handlers, err := handler.NewHandlers(nil, nil, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	return srv.(*server)
}

// runInBackground starts s and returns a function that stops it and
// reports the error RunServer returned.
func runInBackground(t *testing.T, s *server) func() error {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	return func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop in time")
			return nil
		}
	}
}

func TestNewServer_NoTransports(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String()}
	handlers, err := handler.NewHandlers(nil, nil, cfg, logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, cfg, logger.Nop())

	assert.Error(t, err)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: busy.Addr().String()}
	handlers, err := handler.NewHandlers(nil, nil, cfg, logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, cfg, logger.Nop())

	assert.Error(t, err)
}

func TestServer_HTTPServesUntilCancelled(t *testing.T) {
	s := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second})
	stop := runInBackground(t, s)

	resp, err := http.Get("http://" + s.httpServer.listener.Addr().String() + "/ip")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, stop())

	_, err = net.DialTimeout("tcp", s.httpServer.listener.Addr().String(), time.Second)
	assert.Error(t, err, "listener must be closed after shutdown")
}

func TestServer_GRPCHealth(t *testing.T) {
	s := newTestServer(t, config.Server{GRPCAddress: "127.0.0.1:0"})
	stop := runInBackground(t, s)

	conn, err := grpc.NewClient(s.gRPCServer.listener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	require.NoError(t, stop())
}

func TestServer_ShutdownWithoutRun(t *testing.T) {
	s := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0"})
	defer s.httpServer.close()

	assert.NoError(t, s.Shutdown(context.Background()))
}
