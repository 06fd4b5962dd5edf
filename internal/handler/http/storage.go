// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/RPMTW/RPMTW-Server/internal/app"
	"github.com/RPMTW/RPMTW-Server/internal/logger"
	"github.com/RPMTW/RPMTW-Server/internal/utils"
	"github.com/RPMTW/RPMTW-Server/models"
	"github.com/go-chi/chi/v5"
)

const (
	storageFormField = "file"

	// multipartOverhead is the slack allowed on top of the file size limit
	// for multipart boundaries and part headers.
	multipartOverhead = 1 << 20

	// multipartMemory is how much of a form is kept in memory before spilling
	// to temporary files.
	multipartMemory = 1 << 20

	defaultMimeType = "application/octet-stream"
)

func (h *Handler) createStorage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		log.Debug().Err(err).Msg("invalid multipart form")
		utils.WriteError(w, http.StatusBadRequest, app.MsgParameterError)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(storageFormField)
	if err != nil {
		log.Debug().Err(err).Msg("missing file field")
		utils.WriteError(w, http.StatusBadRequest, app.MsgParameterError)
		return
	}
	defer file.Close()

	if h.maxUploadSize > 0 && header.Size > h.maxUploadSize {
		log.Debug().Int64("size", header.Size).Msg("uploaded file is too large")
		utils.WriteError(w, http.StatusBadRequest, app.MsgParameterError)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	storage, err := h.services.StorageService.CreateStorage(r.Context(), models.StorageUpload{
		MimeType:     mimeType,
		OriginalName: header.Filename,
		Size:         header.Size,
		Data:         file,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("id", storage.ID).Int64("size", storage.Size).Msg("storage created")
	_, _ = utils.WriteJSON(w, storage, http.StatusOK)
}

func (h *Handler) getStorage(w http.ResponseWriter, r *http.Request) {
	storage, err := h.services.StorageService.GetStorage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, storage, http.StatusOK)
}

func (h *Handler) downloadStorage(w http.ResponseWriter, r *http.Request) {
	storage, payload, err := h.services.StorageService.DownloadStorage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer payload.Close()

	w.Header().Set("Content-Type", storage.MimeType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": storage.OriginalName}))
	w.Header().Set("Digest", "sha-256="+storage.Digest)
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, payload); err != nil && !errors.Is(err, r.Context().Err()) {
		logger.FromRequest(r).Err(err).Str("id", storage.ID).Msg("streaming storage payload failed")
	}
}
