// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned by NewServer when the configuration
// enables neither the HTTP API nor the gRPC health listener.
var errNoServersAreCreated = errors.New("no servers are created")
