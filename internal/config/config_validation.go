// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 || cfg.App.TokenClockSkew < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Minio.Endpoint == "" && cfg.Storage.Files.BinaryDataDir == "" {
		return fmt.Errorf("%w: either MinIO endpoint or binary data dir is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Minio.Endpoint != "" && cfg.Storage.Minio.Bucket == "" {
		return fmt.Errorf("%w: MinIO bucket is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: HTTP address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: max upload size must be positive", ErrInvalidServerConfigs)
	}

	if cfg.RateLimit.Quota <= 0 || cfg.RateLimit.Window <= 0 || cfg.RateLimit.BlockDuration < 0 {
		return ErrInvalidRateLimitConfigs
	}

	return nil
}
