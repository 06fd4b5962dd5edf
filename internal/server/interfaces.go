// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled,
	// a stop signal arrives, or one of the transports fails. All transports
	// are shut down before it returns.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server. Connections still open when ctx
	// expires are closed forcibly.
	Shutdown(ctx context.Context) error
}
