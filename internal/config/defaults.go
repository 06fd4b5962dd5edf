// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultTokenIssuer     = "rpmtw-server"
	defaultTokenDuration   = 30 * 24 * time.Hour
	defaultTokenClockSkew  = 30 * time.Second
	defaultVersion         = "v1"
	defaultLogLevel        = "info"
	defaultHTTPAddress     = "0.0.0.0:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultMaxUploadSize   = 10_000_000
	defaultBinaryDataDir   = "data/storage"
	defaultMinioBucket     = "rpmtw-storage"
	defaultQuota           = 80
	defaultWindow          = time.Minute
	defaultBlockDuration   = time.Minute
	defaultCleanupInterval = time.Minute
	defaultOAuthTimeout    = 10 * time.Second
	defaultDiscordTokenURL = "https://discord.com/api/oauth2/token"
)

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:    defaultTokenIssuer,
			TokenDuration:  defaultTokenDuration,
			TokenClockSkew: defaultTokenClockSkew,
			Version:        defaultVersion,
			LogLevel:       defaultLogLevel,
		},
		Storage: Storage{
			Files: Files{BinaryDataDir: defaultBinaryDataDir},
			Minio: Minio{Bucket: defaultMinioBucket},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			MaxUploadSize:  defaultMaxUploadSize,
		},
		RateLimit: RateLimit{
			Quota:           defaultQuota,
			Window:          defaultWindow,
			BlockDuration:   defaultBlockDuration,
			CleanupInterval: defaultCleanupInterval,
		},
		OAuth: OAuth{
			Timeout: defaultOAuthTimeout,
			Discord: OAuthProvider{TokenURL: defaultDiscordTokenURL},
		},
	}
}
