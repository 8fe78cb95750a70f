// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/task-manager/internal/config"
	"github.com/MKhiriev/task-manager/internal/handler"
	"github.com/MKhiriev/task-manager/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingServer serves until Shutdown is called or fails right away when
// runErr is set.
type blockingServer struct {
	runErr   error
	stopped  chan struct{}
	shutdown atomic.Bool
}

func newBlockingServer(runErr error) *blockingServer {
	return &blockingServer{runErr: runErr, stopped: make(chan struct{})}
}

func (s *blockingServer) RunServer() error {
	if s.runErr != nil {
		return s.runErr
	}
	<-s.stopped
	return nil
}

func (s *blockingServer) Shutdown(context.Context) error {
	if s.shutdown.CompareAndSwap(false, true) {
		close(s.stopped)
	}
	return nil
}

type recordingWorkers struct {
	ran atomic.Bool
}

func (w *recordingWorkers) Run(ctx context.Context) error {
	w.ran.Store(true)
	<-ctx.Done()
	return nil
}

func TestApp_StopsOnContextCancel(t *testing.T) {
	srv := newBlockingServer(nil)
	workers := &recordingWorkers{}
	app := &App{servers: []Server{srv}, workers: workers, logger: logger.Nop()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
	assert.True(t, srv.shutdown.Load())
	assert.True(t, workers.ran.Load())
}

func TestApp_FailingServerStopsTheOthers(t *testing.T) {
	listenErr := errors.New("address already in use")
	healthy := newBlockingServer(nil)
	app := &App{
		servers: []Server{newBlockingServer(listenErr), healthy},
		logger:  logger.Nop(),
	}

	err := app.run(context.Background())

	require.ErrorIs(t, err, listenErr)
	assert.True(t, healthy.shutdown.Load())
}

func TestNewServer_NoAddresses(t *testing.T) {
	app, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, app)
}
