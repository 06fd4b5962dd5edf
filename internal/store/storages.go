// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/RPMTW/RPMTW-Server/internal/config"
	"github.com/RPMTW/RPMTW-Server/internal/logger"
)

// Storages groups every repository and the blob store so they can be passed
// to the service layer as one value.
type Storages struct {
	UserRepository    UserRepository
	StorageRepository StorageRepository
	BlobStorage       BlobStorage

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens the database selected by cfg.DB.DSN.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Opens MinIO when cfg.Minio.Endpoint is set, otherwise the local
//     directory cfg.Files.BinaryDataDir.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	var blobs BlobStorage
	if cfg.Minio.Endpoint != "" {
		blobs, err = NewMinioBlobStorage(ctx, cfg.Minio)
	} else {
		blobs, err = NewLocalBlobStorage(cfg.Files.BinaryDataDir)
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("blob storage error: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		StorageRepository: NewStorageRepository(db, logger),
		BlobStorage:       blobs,
		db:                db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
