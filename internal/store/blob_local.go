// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// localBlobStorage keeps each payload as one file named after its key.
type localBlobStorage struct {
	dir string
}

// NewLocalBlobStorage creates dir when missing and stores payloads in it.
func NewLocalBlobStorage(dir string) (BlobStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("error creating binary data dir: %w", err)
	}
	return &localBlobStorage{dir: dir}, nil
}

func (s *localBlobStorage) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(s.dir, key), nil
}

// Upload writes into a temporary file first, so a failed upload never
// leaves a partial payload under key.
func (s *localBlobStorage) Upload(ctx context.Context, key string, data io.Reader, _ int64, _ string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, contextReader{ctx: ctx, r: data}); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing payload: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing payload file: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error storing payload: %w", err)
	}
	return nil
}

func (s *localBlobStorage) Download(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, ErrStorageNotFound
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrStorageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error opening payload: %w", err)
	}
	return f, nil
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
