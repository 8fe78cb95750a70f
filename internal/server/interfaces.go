// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for the transports managed by this
// package.
type Server interface {
	// RunServer serves requests and blocks until the server stops. A server
	// stopped through Shutdown returns nil.
	RunServer() error

	// Shutdown gracefully stops the server within ctx.
	Shutdown(ctx context.Context) error
}

// BackgroundRunner is a set of workers living as long as the servers.
type BackgroundRunner interface {
	Run(ctx context.Context) error
}
