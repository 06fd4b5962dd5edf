// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RPMTW/RPMTW-Server/internal/service"
	"github.com/RPMTW/RPMTW-Server/internal/store"
	"github.com/RPMTW/RPMTW-Server/internal/utils"
	"github.com/RPMTW/RPMTW-Server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserID = "0190a0f4-4c2b-7c3e-9d4f-2a1b3c4d5e6f"

func tokenFor(userID string) models.Token {
	return models.Token{Claims: models.Claims{UserID: userID, UserName: "alice"}}
}

func TestAuth_ExemptPathSkipsToken(t *testing.T) {
	h, _ := newMockedHandler(t)

	called := false
	mw := h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	serve(mw, httptest.NewRequest(http.MethodPost, createUserPath, nil))

	assert.True(t, called)
}

func TestIsAuthExempt(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   bool
	}{
		{http.MethodPost, createUserPath, true},
		{http.MethodPost, createUserPath + "/", true},
		{http.MethodGet, createUserPath, false},
		{http.MethodGet, createUserPath + "/", false},
		{http.MethodPut, createUserPath, false},
		{http.MethodPost, "/api/v1/auth/user", false},
		{http.MethodPost, "/api/v1/auth/user/create/extra", false},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, isAuthExempt(httptest.NewRequest(tt.method, tt.path, nil)))
		})
	}
}

// GET on the create path resolves to the by-id route and must not skip auth.
func TestAuth_CreatePathOtherMethodsNeedToken(t *testing.T) {
	for _, path := range []string{createUserPath, createUserPath + "/"} {
		t.Run(path, func(t *testing.T) {
			h, _ := newMockedHandler(t)

			rr := serve(h.Init(), httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Unauthorized", decodeMessage(t, rr.Body))
		})
	}
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(m testMocks)
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized, wantMsg: "Unauthorized",
		},
		{
			name: "wrong scheme", header: "Basic abc",
			wantStatus: http.StatusUnauthorized, wantMsg: "Unauthorized",
		},
		{
			name: "scheme without token", header: "Bearer ",
			wantStatus: http.StatusUnauthorized, wantMsg: "Unauthorized",
		},
		{
			name: "invalid token", header: "Bearer bad",
			setup: func(m testMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "bad").Return(models.Token{}, service.ErrTokenIsInvalid)
			},
			wantStatus: http.StatusUnauthorized, wantMsg: "Unauthorized",
		},
		{
			name: "expired token", header: "Bearer old",
			setup: func(m testMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "old").Return(models.Token{}, service.ErrTokenIsExpired)
			},
			wantStatus: http.StatusForbidden, wantMsg: "Token Expired",
		},
		{
			name: "user no longer exists", header: "Bearer good",
			setup: func(m testMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(tokenFor(testUserID), nil)
				m.auth.EXPECT().GetUser(gomock.Any(), testUserID).Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantStatus: http.StatusUnauthorized, wantMsg: "Unauthorized",
		},
		{
			name: "store failure", header: "Bearer good",
			setup: func(m testMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(tokenFor(testUserID), nil)
				m.auth.EXPECT().GetUser(gomock.Any(), testUserID).Return(models.User{}, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError, wantMsg: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			called := false
			mw := h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/user", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := serve(mw, req)

			assert.False(t, called)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rr.Body))
		})
	}
}

func TestAuth_AttachesResolvedUser(t *testing.T) {
	h, m := newMockedHandler(t)

	stored := models.User{ID: testUserID, UserName: "alice", Email: "a@x.com"}
	m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(tokenFor(testUserID), nil)
	m.auth.EXPECT().GetUser(gomock.Any(), testUserID).Return(stored, nil)

	var got models.User
	mw := h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = utils.UserFromContext(r.Context())
		require.True(t, ok)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/user", nil)
	req.Header.Set("Authorization", "bearer good")
	rr := serve(mw, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, stored, got)
}
