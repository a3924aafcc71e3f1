// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-doc-keeper/internal/app"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var request models.SignupRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.signup", err)
		return
	}

	user, token, err := h.services.AuthService.Signup(r.Context(), request)
	if err != nil {
		writeError(w, r, "*Handler.signup", err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", user.ID).Msg("user signed up")

	utils.WriteJSON(w, models.AuthResponse{
		Message:   app.MsgSignedUp,
		Token:     token.SignedString,
		UserID:    user.ID,
		UserEmail: user.Email,
	}, http.StatusCreated)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var request models.SignupRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.createUser", err)
		return
	}

	user, err := h.services.AuthService.CreateUser(r.Context(), request)
	if err != nil {
		writeError(w, r, "*Handler.createUser", err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Message: app.MsgUserCreated, User: user}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request models.LoginRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	user, token, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", user.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		Message:   app.MsgSignedIn,
		Token:     token.SignedString,
		UserID:    user.ID,
		UserEmail: user.Email,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.Logout(r.Context()); err != nil {
		writeError(w, r, "*Handler.logout", err)
		return
	}

	utils.WriteMessage(w, app.MsgLoggedOut, http.StatusOK)
}
