// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RPMTW/RPMTW-Server/internal/config"
	"github.com/RPMTW/RPMTW-Server/internal/logger"
	"github.com/RPMTW/RPMTW-Server/internal/mock"
	"github.com/RPMTW/RPMTW-Server/internal/ratelimit"
	"github.com/RPMTW/RPMTW-Server/internal/service"
	"github.com/RPMTW/RPMTW-Server/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	auth    *mock.MockAuthService
	storage *mock.MockStorageService
	oauth   *mock.MockOAuthService
	appInfo *mock.MockAppInfoService
}

// newMockedHandler returns a Handler over mocked services without a rate
// limiter.
func newMockedHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()
	return newMockedHandlerWithLimiter(t, nil)
}

func newMockedHandlerWithLimiter(t *testing.T, limiter *ratelimit.Limiter) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testMocks{
		auth:    mock.NewMockAuthService(ctrl),
		storage: mock.NewMockStorageService(ctrl),
		oauth:   mock.NewMockOAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AuthService:    m.auth,
		StorageService: m.storage,
		OAuthService:   m.oauth,
		AppInfoService: m.appInfo,
	}
	return NewHandler(services, limiter, config.Server{MaxUploadSize: 1024}, logger.Nop()), m
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeMessage(t *testing.T, body io.Reader) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp.Message
}
