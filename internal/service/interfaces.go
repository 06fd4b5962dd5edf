// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"io"

	"github.com/RPMTW/RPMTW-Server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns accounts and the bearer token contract.
type AuthService interface {
	// RegisterUser validates req, stores the account with a password digest
	// and returns it together with a freshly issued token.
	RegisterUser(ctx context.Context, req models.CreateUserRequest) (models.CreateUserResponse, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken verifies tokenString and returns its claims. It fails with
	// ErrTokenIsExpired only for authentic tokens past expiry; every other
	// failure is ErrTokenIsInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// StorageService stores and serves uploaded binary blobs.
type StorageService interface {
	CreateStorage(ctx context.Context, upload models.StorageUpload) (models.Storage, error)
	GetStorage(ctx context.Context, storageID string) (models.Storage, error)
	// DownloadStorage returns the record metadata and its payload. The caller
	// must close the payload.
	DownloadStorage(ctx context.Context, storageID string) (models.Storage, io.ReadCloser, error)
}

// OAuthService relays OAuth2 logins to external providers.
type OAuthService interface {
	ExchangeDiscordCode(ctx context.Context, code string) (json.RawMessage, error)
}

// AppInfoService reports what is running.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
