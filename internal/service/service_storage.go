// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/RPMTW/RPMTW-Server/internal/logger"
	"github.com/RPMTW/RPMTW-Server/internal/store"
	"github.com/RPMTW/RPMTW-Server/internal/utils"
	"github.com/RPMTW/RPMTW-Server/internal/validators"
	"github.com/RPMTW/RPMTW-Server/models"
)

type storageService struct {
	storageRepository store.StorageRepository
	blobStorage       store.BlobStorage

	validator   validators.Validator
	idGenerator IDGenerator

	// maxSize is the largest accepted payload in bytes; zero means unlimited.
	maxSize int64
	now     func() time.Time

	logger *logger.Logger
}

func NewStorageService(
	storageRepository store.StorageRepository,
	blobStorage store.BlobStorage,
	validator validators.Validator,
	idGenerator IDGenerator,
	maxSize int64,
	logger *logger.Logger,
) StorageService {
	return &storageService{
		storageRepository: storageRepository,
		blobStorage:       blobStorage,
		validator:         validator,
		idGenerator:       idGenerator,
		maxSize:           maxSize,
		now:               time.Now,
		logger:            logger,
	}
}

// CreateStorage reads the whole payload, stores it in the blob store under a
// new record ID and persists the metadata. Size and digest are computed from
// the bytes actually received.
func (s *storageService) CreateStorage(ctx context.Context, upload models.StorageUpload) (models.Storage, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, upload); err != nil {
		log.Warn().Err(err).Str("originalName", upload.OriginalName).Msg("invalid storage upload")
		return models.Storage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	data, err := s.readPayload(upload.Data)
	if err != nil {
		return models.Storage{}, err
	}

	storage := models.Storage{
		ID:           s.idGenerator.Generate(),
		MimeType:     upload.MimeType,
		OriginalName: upload.OriginalName,
		Size:         int64(len(data)),
		Digest:       utils.ContentDigest(data),
		CreatedAt:    s.now().UTC(),
	}

	if err = s.blobStorage.Upload(ctx, storage.ID, bytes.NewReader(data), storage.Size, storage.MimeType); err != nil {
		log.Err(err).Str("id", storage.ID).Msg("uploading storage payload failed")
		return models.Storage{}, fmt.Errorf("uploading storage payload failed: %w", err)
	}

	created, err := s.storageRepository.CreateStorage(ctx, storage)
	if err != nil {
		log.Err(err).Str("id", storage.ID).Msg("storage creation ended with error")
		return models.Storage{}, fmt.Errorf("storage creation ended with error: %w", err)
	}

	return created, nil
}

func (s *storageService) readPayload(r io.Reader) ([]byte, error) {
	if s.maxSize > 0 {
		r = io.LimitReader(r, s.maxSize+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading storage payload failed: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidDataProvided)
	}
	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("%w: payload exceeds %d bytes", ErrInvalidDataProvided, s.maxSize)
	}

	return data, nil
}

func (s *storageService) GetStorage(ctx context.Context, storageID string) (models.Storage, error) {
	storageID = strings.TrimSpace(storageID)
	if storageID == "" {
		return models.Storage{}, ErrInvalidDataProvided
	}

	storage, err := s.storageRepository.FindStorageByID(ctx, storageID)
	if err != nil {
		if !errors.Is(err, store.ErrStorageNotFound) {
			logger.FromContext(ctx).Err(err).Str("id", storageID).Msg("storage search by id failed")
		}
		return models.Storage{}, fmt.Errorf("storage search by id failed: %w", err)
	}

	return storage, nil
}

func (s *storageService) DownloadStorage(ctx context.Context, storageID string) (models.Storage, io.ReadCloser, error) {
	storage, err := s.GetStorage(ctx, storageID)
	if err != nil {
		return models.Storage{}, nil, err
	}

	payload, err := s.blobStorage.Download(ctx, storage.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", storage.ID).Msg("downloading storage payload failed")
		return models.Storage{}, nil, fmt.Errorf("downloading storage payload failed: %w", err)
	}

	return storage, payload, nil
}
