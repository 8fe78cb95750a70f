// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/task-manager/internal/adapter"
	"github.com/MKhiriev/task-manager/internal/config"
	"github.com/MKhiriev/task-manager/internal/logger"
	"github.com/MKhiriev/task-manager/models"
	"golang.org/x/sync/errgroup"
)

// drainTimeout bounds the delivery of mails still queued at shutdown.
const drainTimeout = 5 * time.Second

// MailDispatcher delivers mails in the background. Producers hand mails over
// with Enqueue, which never blocks: a full queue drops the mail.
// Delivery is attempted once; failures are logged.
type MailDispatcher struct {
	queue       chan models.Mail
	mailer      adapter.Mailer
	concurrency int

	logger *logger.Logger
}

func NewMailDispatcher(mailer adapter.Mailer, cfg config.Workers, logger *logger.Logger) *MailDispatcher {
	concurrency := max(cfg.MailDispatchers, 1)
	size := max(cfg.MailQueueSize, 0)

	return &MailDispatcher{
		queue:       make(chan models.Mail, size),
		mailer:      mailer,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Enqueue reports whether mail was accepted.
func (d *MailDispatcher) Enqueue(mail models.Mail) bool {
	select {
	case d.queue <- mail:
		return true
	default:
		d.logger.Warn().
			Str("kind", string(mail.Kind)).
			Str("to", mail.To).
			Msg("mail queue is full, mail dropped")
		return false
	}
}

// Run delivers queued mails with the configured number of goroutines until
// ctx is cancelled, then sends what is still queued within drainTimeout.
func (d *MailDispatcher) Run(ctx context.Context) error {
	g := new(errgroup.Group)
	for range d.concurrency {
		g.Go(func() error {
			d.loop(ctx)
			return nil
		})
	}
	_ = g.Wait()

	d.drain(ctx)
	return nil
}

func (d *MailDispatcher) loop(ctx context.Context) {
	for {
		// select picks randomly among ready cases; cancellation wins here.
		if ctx.Err() != nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		case mail := <-d.queue:
			d.send(ctx, mail)
		}
	}
}

func (d *MailDispatcher) drain(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drainTimeout)
	defer cancel()

	for {
		select {
		case mail := <-d.queue:
			d.send(ctx, mail)
		default:
			return
		}
	}
}

func (d *MailDispatcher) send(ctx context.Context, mail models.Mail) {
	if err := d.mailer.Send(ctx, mail); err != nil {
		d.logger.Err(err).
			Str("kind", string(mail.Kind)).
			Str("to", mail.To).
			Msg("error sending mail")
		return
	}

	d.logger.Debug().Str("kind", string(mail.Kind)).Str("to", mail.To).Msg("mail sent")
}
