// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed claim set of a bearer token.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (iss, iat, exp)
// and adds the identity of the user the token was issued for.
type Claims struct {
	jwt.RegisteredClaims

	// UserName is the name of the user at the moment of issuance.
	UserName string `json:"userName"`

	// UserID is the identifier of the user the token was issued for.
	UserID string `json:"userId"`
}

// Token wraps a signed JWT together with its decoded claims.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims holds the identity claims carried by the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
