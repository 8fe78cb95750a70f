// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's transport servers.
//
// It runs the HTTP API, the optional gRPC health listener and the background
// workers together, and stops all of them on SIGINT, SIGTERM or SIGQUIT.
package server
