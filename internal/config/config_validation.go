// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every binary. Binary-specific requirements are checked
// by the client and server views.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Local.Backend {
	case "", LocalBackendSQLite, LocalBackendFile:
	default:
		return fmt.Errorf("%w: unknown local backend %q", ErrInvalidStorageConfigs, cfg.Storage.Local.Backend)
	}

	switch cfg.Cloud.Backend {
	case "", CloudBackendREST, CloudBackendPostgres:
	default:
		return fmt.Errorf("%w: unknown cloud backend %q", ErrInvalidCloudConfigs, cfg.Cloud.Backend)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Local.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Cloud.Backend {
	case CloudBackendREST:
		if cfg.Adapter.RemoteURL == "" || cfg.Adapter.RequestTimeout <= 0 {
			return ErrInvalidAdapterConfigs
		}
	case CloudBackendPostgres:
		if cfg.Storage.RemoteDSN == "" {
			return ErrInvalidCloudConfigs
		}
	default:
		return ErrInvalidCloudConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
