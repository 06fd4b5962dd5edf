// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RPMTW/RPMTW-Server/internal/logger"
	"github.com/RPMTW/RPMTW-Server/models"
)

// storageRepository is the SQL implementation of [StorageRepository]. Rows
// are only ever inserted and read.
type storageRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewStorageRepository(db *DB, logger *logger.Logger) StorageRepository {
	logger.Debug().Msg("creating storage repository")
	return &storageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *storageRepository) CreateStorage(ctx context.Context, storage models.Storage) (models.Storage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertStorageQuery(r.db.builder, storage)
	if err != nil {
		return models.Storage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*storageRepository.CreateStorage").
			Stringer("class", r.db.errorClassificator.Classify(err)).
			Msg("error inserting storage")
		return models.Storage{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return storage, nil
}

func (r *storageRepository) FindStorageByID(ctx context.Context, storageID string) (models.Storage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectStorageByIDQuery(r.db.builder, storageID)
	if err != nil {
		return models.Storage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var storage models.Storage
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&storage.ID, &storage.MimeType, &storage.OriginalName, &storage.Size, &storage.Digest, &storage.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Storage{}, ErrStorageNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*storageRepository.FindStorageByID").Msg("error selecting storage")
		return models.Storage{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return storage, nil
}
