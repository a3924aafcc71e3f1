// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-doc-keeper/internal/app"
	"github.com/MKhiriev/go-doc-keeper/internal/pagination"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.listUsers", err)
		return
	}

	users, err := h.services.UserService.ListUsers(r.Context(), page)
	if err != nil {
		writeError(w, r, "*Handler.listUsers", err)
		return
	}

	if users.Rows == nil {
		users.Rows = []models.User{}
	}
	utils.WriteJSON(w, models.UsersResponse{
		Users:    users,
		MetaData: pagination.Calculate(users.Count, page.Limit, page.Offset, len(users.Rows)),
	}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateUser", err)
		return
	}

	var update models.UserUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, "*Handler.updateUser", err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), id, update)
	if err != nil {
		writeError(w, r, "*Handler.updateUser", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	utils.WriteMessage(w, app.MsgUserDeleted, http.StatusOK)
}

func (h *Handler) listUserDocuments(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.listUserDocuments", err)
		return
	}

	page, err := pageFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.listUserDocuments", err)
		return
	}

	documents, err := h.services.DocumentService.ListUserDocuments(r.Context(), ownerID, page)
	if err != nil {
		writeError(w, r, "*Handler.listUserDocuments", err)
		return
	}

	writeDocumentsPage(w, documents, page)
}
