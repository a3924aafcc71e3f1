// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces token authentication.
//
// The token is read from the x-access-token header, falling back to an
// "Authorization: Bearer <token>" header. It is verified by
// [service.AuthService.Authenticate], which also checks that the token is
// still the active session of its user. On success the caller identity is
// stored in the request context under [utils.CallerCtxKey].
//
// Requests without a token, with a malformed Authorization header or with
// a token that is invalid, expired or no longer active are rejected with
// HTTP 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := tokenFromRequest(r)
		if err != nil {
			writeError(w, r, "*Handler.auth", err)
			return
		}

		ctx := r.Context()
		caller, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, "*Handler.auth", err)
			return
		}

		logger.FromRequest(r).Debug().
			Int64("user_id", caller.UserID).
			Int64("role_id", caller.RoleID).
			Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithCaller(ctx, caller)))
	})
}

// tokenFromRequest extracts the access token of r.
//
// It returns [ErrNoToken] when neither header is present and
// [utils.ErrInvalidAuthorizationHeader] when the Authorization header is not
// a bearer token.
func tokenFromRequest(r *http.Request) (string, error) {
	if token := strings.TrimSpace(r.Header.Get(utils.AccessTokenHeader)); token != "" {
		return token, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoToken
	}

	return utils.ParseBearerToken(authHeader)
}
