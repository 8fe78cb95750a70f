// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Defaults returns the values used for every field no source has set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer: "task-manager",
			Version:     "dev",
			LogLevel:    "info",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
			Uploads: Uploads{
				MaxSize:   1 << 20,
				ImageSize: 250,
				MaxPixels: 4096 * 4096,
			},
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Mail: Mail{
			BaseURL: "https://api.sendgrid.com",
			From:    "noreply@task-manager.local",
			Timeout: 10 * time.Second,
		},
		Workers: Workers{
			MailQueueSize:   100,
			MailDispatchers: 1,
		},
	}
}
