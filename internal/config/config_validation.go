// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// applyDefaults fills in the fields a scaffold deployment can reasonably run
// without: listen address, token lifecycle, queue naming and worker sizing.
// Secrets and connection strings never get a default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":8080"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = "go-api-scaffold"
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = time.Hour
	}
	if cfg.Kafka.Topic == "" {
		cfg.Kafka.Topic = "events"
	}
	if cfg.Queue.Subject == "" {
		cfg.Queue.Subject = "tasks"
	}
	if cfg.Queue.ResultTTL == 0 {
		cfg.Queue.ResultTTL = 24 * time.Hour
	}
	if cfg.Workers.Concurrency == 0 {
		cfg.Workers.Concurrency = 4
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error naming the
// offending configuration group otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
