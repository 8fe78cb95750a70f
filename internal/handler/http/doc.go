// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the task manager.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as CORS, authentication, request tracing, access logging and
// response compression are handled in this package before requests are
// delegated to the service layer. Every error response is a JSON object
// {"error": "<message>"}.
package http
