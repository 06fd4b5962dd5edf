// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"time"
)

// Storage is the metadata of an uploaded binary blob.
// The payload itself lives in the blob store under the same ID.
type Storage struct {
	ID           string    `json:"id"`
	MimeType     string    `json:"mimeType"`
	OriginalName string    `json:"originalName"`
	Size         int64     `json:"size"`
	Digest       string    `json:"digest"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Storage model.
func (s Storage) TableName() string {
	return "storages"
}

// StorageUpload carries an incoming upload from the transport layer
// to the storage service.
type StorageUpload struct {
	MimeType     string    `validate:"required,max=255"`
	OriginalName string    `validate:"required,max=255"`
	Size         int64     `validate:"gt=0"`
	Data         io.Reader `validate:"required"`
}
