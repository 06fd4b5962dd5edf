// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier (UUID) generated at creation.
	// It is immutable and serves as the primary key.
	ID string `json:"id"`

	// UserName is the display/login name of the account.
	// It is also bound into the password digest as a per-account salt.
	UserName string `json:"userName"`

	// Email is the contact address of the account.
	Email string `json:"email"`

	// PasswordDigest stores the derived password value.
	// It is never exposed via JSON and never logged.
	PasswordDigest string `json:"-"`

	// AvatarStorageID references (does not own) a Storage record.
	// Nil when the user has no avatar.
	AvatarStorageID *string `json:"avatarStorageId,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// CreateUserRequest is the body of the account-creation endpoint.
// The plaintext Password lives only in this transient value and is
// replaced by a digest before anything is persisted.
type CreateUserRequest struct {
	UserName        string  `json:"userName" validate:"required,max=64"`
	Email           string  `json:"email" validate:"required,email,max=254"`
	Password        string  `json:"password" validate:"required,max=256"`
	AvatarStorageID *string `json:"avatarStorageId,omitempty" validate:"omitempty,uuid"`
}

// CreateUserResponse is returned after a successful account creation.
// User never carries the password digest (see [User.PasswordDigest]).
type CreateUserResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
