// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/task-manager/internal/config"
	"github.com/MKhiriev/task-manager/internal/handler"
	"github.com/MKhiriev/task-manager/internal/logger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// App runs every enabled server next to the background workers.
type App struct {
	servers []Server
	workers BackgroundRunner
	logger  *logger.Logger
}

// NewServer builds the servers enabled by cfg. workers may be nil.
func NewServer(handlers *handler.Handlers, workers BackgroundRunner, cfg config.Server, logger *logger.Logger) (*App, error) {
	logger.Info().Msg("creating new server...")
	app := &App{workers: workers, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		app.servers = append(app.servers, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		app.servers = append(app.servers, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(app.servers) == 0 {
		return nil, errNoServersAreCreated
	}

	return app, nil
}

// Run blocks until a stop signal arrives or one of the servers fails.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

// run starts everything and, once ctx is done, shuts the servers down before
// the workers get to drain their queues.
func (a *App) run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range a.servers {
		g.Go(srv.RunServer)
	}

	workersCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorkers()
	workersDone := make(chan error, 1)
	if a.workers != nil {
		go func() { workersDone <- a.workers.Run(workersCtx) }()
	} else {
		close(workersDone)
	}

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info().Msg("stopping servers...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range a.servers {
			errs = append(errs, srv.Shutdown(shutdownCtx))
		}
		return errors.Join(errs...)
	})

	err := g.Wait()

	stopWorkers()
	if workersErr := <-workersDone; workersErr != nil {
		err = errors.Join(err, workersErr)
	}

	if err != nil {
		return err
	}
	a.logger.Info().Msg("server shutdown gracefully")
	return nil
}
