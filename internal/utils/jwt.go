// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RPMTW/RPMTW-Server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Errors reported by ValidateAndParseJWTToken. A token is only ever
// reported as expired after its signature was verified.
var (
	ErrJWTTokenExpired = errors.New("token is expired")
	ErrJWTTokenInvalid = errors.New("token is invalid")
)

// JWTParams holds the server-side parameters of token issuance and
// verification.
type JWTParams struct {
	// Issuer is written to and required in the "iss" claim.
	Issuer string
	// SignKey is the HMAC-SHA256 secret.
	SignKey string
	// Duration is added to the issued-at time to compute expiry.
	Duration time.Duration
}

func (p JWTParams) valid() bool {
	return p.Issuer != "" && p.SignKey != "" && p.Duration > 0
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for a user.
//
// The token includes the following claims:
//   - Issuer    (iss): params.Issuer
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus params.Duration
//   - userName, userId
//
// Returns an error if params are incomplete or userID is empty.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(params, "alice", id, time.Now().Add(-30*time.Second))
func GenerateJWTToken(params JWTParams, userName, userID string, issuedAt time.Time) (models.Token, error) {
	if !params.valid() || userID == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(params.Duration)),
		},
		UserName: userName,
		UserID:   userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes, in order:
//   - Algorithm check (HS256 only)
//   - Signature verification using params.SignKey
//   - Issuer (iss) claim check against params.Issuer
//   - Expiration (exp) claim presence and check against now()
//   - userId claim presence
//
// An authentic token past its expiry yields [ErrJWTTokenExpired]; every
// other failure yields [ErrJWTTokenInvalid].
func ValidateAndParseJWTToken(tokenString string, params JWTParams, now func() time.Time) (models.Token, error) {
	if now == nil {
		now = time.Now
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(params.SignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(params.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrJWTTokenExpired, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrJWTTokenInvalid, err)
	}

	if claims.UserID == "" {
		return models.Token{}, fmt.Errorf("%w: empty userId claim", ErrJWTTokenInvalid)
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the credential from an Authorization header
// value of the form "Bearer <token>". The scheme is matched
// case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", errors.New("invalid authorization header")
	}
	return token, nil
}
