// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-doc-keeper/internal/app"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
)

func (h *Handler) createRole(w http.ResponseWriter, r *http.Request) {
	var role models.Role
	if err := decodeJSON(r, &role); err != nil {
		writeError(w, r, "*Handler.createRole", err)
		return
	}

	created, err := h.services.RoleService.CreateRole(r.Context(), models.Role{Title: role.Title})
	if err != nil {
		writeError(w, r, "*Handler.createRole", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.services.RoleService.ListRoles(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listRoles", err)
		return
	}

	if roles == nil {
		roles = []models.Role{}
	}
	utils.WriteJSON(w, roles, http.StatusOK)
}

func (h *Handler) getRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.getRole", err)
		return
	}

	role, err := h.services.RoleService.GetRole(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getRole", err)
		return
	}

	utils.WriteJSON(w, role, http.StatusOK)
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateRole", err)
		return
	}

	var role models.Role
	if err = decodeJSON(r, &role); err != nil {
		writeError(w, r, "*Handler.updateRole", err)
		return
	}

	updated, err := h.services.RoleService.UpdateRole(r.Context(), models.Role{ID: id, Title: role.Title})
	if err != nil {
		writeError(w, r, "*Handler.updateRole", err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteRole", err)
		return
	}

	if err = h.services.RoleService.DeleteRole(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deleteRole", err)
		return
	}

	utils.WriteMessage(w, app.MsgRoleDeleted, http.StatusOK)
}
