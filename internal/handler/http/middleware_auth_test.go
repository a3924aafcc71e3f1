// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/mock"
	"github.com/MKhiriev/go-doc-keeper/internal/service"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
)

func newAuthHandler(t *testing.T) (*Handler, *mock.MockAuthService) {
	t.Helper()
	auth := mock.NewMockAuthService(gomock.NewController(t))
	return NewHandler(&service.Services{AuthService: auth}, config.Server{}, logger.Nop()), auth
}

func TestAuth(t *testing.T) {
	caller := models.Caller{UserID: 4, RoleID: models.RoleRegularID}

	tests := []struct {
		name        string
		headers     map[string]string
		wantToken   string
		authErr     error
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "x-access-token header",
			headers:    map[string]string{"x-access-token": "abc"},
			wantToken:  "abc",
			wantStatus: http.StatusOK,
		},
		{
			name:       "bearer fallback",
			headers:    map[string]string{"Authorization": "Bearer abc"},
			wantToken:  "abc",
			wantStatus: http.StatusOK,
		},
		{
			name:       "x-access-token wins over authorization",
			headers:    map[string]string{"x-access-token": "abc", "Authorization": "Bearer other"},
			wantToken:  "abc",
			wantStatus: http.StatusOK,
		},
		{
			name:        "no token",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authentication is required. No token provided.",
		},
		{
			name:        "malformed authorization header",
			headers:     map[string]string{"Authorization": "Basic abc def"},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token. Please log in again.",
		},
		{
			name:        "invalid token",
			headers:     map[string]string{"x-access-token": "abc"},
			wantToken:   "abc",
			authErr:     service.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token. Please log in again.",
		},
		{
			name:        "logged out session",
			headers:     map[string]string{"x-access-token": "abc"},
			wantToken:   "abc",
			authErr:     service.ErrSessionExpired,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Your session has expired. Please log in again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, auth := newAuthHandler(t)
			if tt.wantToken != "" {
				auth.EXPECT().Authenticate(gomock.Any(), tt.wantToken).Return(caller, tt.authErr)
			}

			var got models.Caller
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var ok bool
				got, ok = utils.CallerFromContext(r.Context())
				require.True(t, ok)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/documents", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, caller, got)
				return
			}
			assert.Equal(t, tt.wantMessage, message(t, rr))
		})
	}
}

func TestTokenFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := tokenFromRequest(req)
	assert.ErrorIs(t, err, ErrNoToken)

	req.Header.Set("Authorization", "Bearer")
	_, err = tokenFromRequest(req)
	assert.ErrorIs(t, err, utils.ErrInvalidAuthorizationHeader)

	req.Header.Set("x-access-token", "  tok  ")
	token, err := tokenFromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}
