// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"

	"github.com/RPMTW/RPMTW-Server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// StorageRepository persists storage record metadata.
type StorageRepository interface {
	CreateStorage(ctx context.Context, storage models.Storage) (models.Storage, error)
	FindStorageByID(ctx context.Context, storageID string) (models.Storage, error)
}

// BlobStorage keeps the raw payload of storage records, keyed by record ID.
type BlobStorage interface {
	Upload(ctx context.Context, key string, data io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
