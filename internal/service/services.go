// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/RPMTW/RPMTW-Server/internal/adapter"
	"github.com/RPMTW/RPMTW-Server/internal/config"
	"github.com/RPMTW/RPMTW-Server/internal/logger"
	"github.com/RPMTW/RPMTW-Server/internal/store"
	"github.com/RPMTW/RPMTW-Server/internal/utils"
	"github.com/RPMTW/RPMTW-Server/internal/validators"
	"github.com/RPMTW/RPMTW-Server/models"
)

type Services struct {
	AuthService    AuthService
	StorageService StorageService
	OAuthService   OAuthService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	discord adapter.OAuthProvider,
	buildInfo models.AppBuildInfo,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	validator := validators.NewRequestValidator()
	idGenerator := utils.NewUUIDGenerator()

	authService, err := NewAuthService(storages.UserRepository, validator, idGenerator, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:    authService,
		StorageService: NewStorageService(storages.StorageRepository, storages.BlobStorage, validator, idGenerator, cfg.Server.MaxUploadSize, logger),
		OAuthService:   NewOAuthService(discord, logger),
		AppInfoService: appInfoService,
	}, nil
}
