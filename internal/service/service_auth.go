// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RPMTW/RPMTW-Server/internal/config"
	"github.com/RPMTW/RPMTW-Server/internal/logger"
	"github.com/RPMTW/RPMTW-Server/internal/metrics"
	"github.com/RPMTW/RPMTW-Server/internal/store"
	"github.com/RPMTW/RPMTW-Server/internal/utils"
	"github.com/RPMTW/RPMTW-Server/internal/validators"
	"github.com/RPMTW/RPMTW-Server/models"
)

// authService is the concrete implementation of AuthService.
// It handles account creation and the JWT token lifecycle, using a
// UserRepository for persistence and Argon2id for password digests.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator   validators.Validator
	idGenerator IDGenerator

	// jwtParams holds issuer, sign key and lifetime of issued tokens.
	jwtParams utils.JWTParams

	// clockSkew backdates the issued-at claim of every new token.
	clockSkew time.Duration

	// now is the clock used for issuance, expiry checks and CreatedAt.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// Returns ErrInvalidTokenConfig when the sign key, issuer or duration is
// missing. The returned service is safe for concurrent use; all state is
// read-only after construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, idGenerator IDGenerator, cfg config.App, logger *logger.Logger) (AuthService, error) {
	params := utils.JWTParams{
		Issuer:   cfg.TokenIssuer,
		SignKey:  cfg.TokenSignKey,
		Duration: cfg.TokenDuration,
	}
	if params.Issuer == "" || params.SignKey == "" || params.Duration <= 0 {
		return nil, ErrInvalidTokenConfig
	}

	return &authService{
		userRepository: userRepository,
		validator:      validator,
		idGenerator:    idGenerator,
		jwtParams:      params,
		clockSkew:      cfg.TokenClockSkew,
		now:            time.Now,
		logger:         logger,
	}, nil
}

// RegisterUser creates a new account and issues its first token.
//
// Returns:
//   - ErrInvalidDataProvided (wrapped) if req fails validation.
//   - store.ErrAvatarStorageNotFound (wrapped) if the avatar reference is unknown.
//   - A wrapped storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, req models.CreateUserRequest) (models.CreateUserResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Str("userName", req.UserName).Msg("invalid user data provided")
		return models.CreateUserResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user := models.User{
		ID:              a.idGenerator.Generate(),
		UserName:        req.UserName,
		Email:           req.Email,
		PasswordDigest:  utils.HashPassword(req.UserName, req.Password),
		AvatarStorageID: req.AvatarStorageID,
		CreatedAt:       a.now().UTC(),
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("id", user.ID).Str("userName", user.UserName).Msg("user creation ended with error")
		return models.CreateUserResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.CreateToken(ctx, created)
	if err != nil {
		log.Err(err).Str("id", created.ID).Msg("token creation for new user failed")
		return models.CreateUserResponse{}, err
	}

	created.PasswordDigest = ""
	return models.CreateUserResponse{Token: token.SignedString, User: created}, nil
}

// GetUser returns the account identified by userID without its digest.
func (a *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			logger.FromContext(ctx).Err(err).Str("id", userID).Msg("user search by id failed")
		}
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	user.PasswordDigest = ""
	return user, nil
}

// CreateToken issues a signed JWT for user. The issued-at claim is backdated
// by the configured clock skew and expiry is issued-at plus token duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.jwtParams, user.UserName, user.ID, a.now().Add(-a.clockSkew))
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	metrics.TokensIssuedTotal.Inc()
	return token, nil
}

// ParseToken validates and parses a raw JWT string.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.jwtParams, a.now)
	switch {
	case err == nil:
		metrics.TokenVerificationsTotal.WithLabelValues(metrics.ResultValid).Inc()
		return token, nil
	case errors.Is(err, utils.ErrJWTTokenExpired):
		metrics.TokenVerificationsTotal.WithLabelValues(metrics.ResultExpired).Inc()
		return models.Token{}, ErrTokenIsExpired
	default:
		metrics.TokenVerificationsTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		return models.Token{}, ErrTokenIsInvalid
	}
}
