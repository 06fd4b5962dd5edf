// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/RPMTW/RPMTW-Server/models"
)

var (
	userColumns    = []string{"id", "user_name", "email", "password_digest", "avatar_storage_id", "created_at"}
	storageColumns = []string{"id", "mime_type", "original_name", "size", "digest", "created_at"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.UserName, user.Email, user.PasswordDigest, user.AvatarStorageID, user.CreatedAt).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildInsertStorageQuery(b sq.StatementBuilderType, storage models.Storage) (string, []any, error) {
	return b.Insert(models.Storage{}.TableName()).
		Columns(storageColumns...).
		Values(storage.ID, storage.MimeType, storage.OriginalName, storage.Size, storage.Digest, storage.CreatedAt).
		ToSql()
}

func buildSelectStorageByIDQuery(b sq.StatementBuilderType, storageID string) (string, []any, error) {
	return b.Select(storageColumns...).
		From(models.Storage{}.TableName()).
		Where(sq.Eq{"id": storageID}).
		ToSql()
}
