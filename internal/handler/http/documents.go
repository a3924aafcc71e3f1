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

// searchParam is the query parameter carrying the search term.
const searchParam = "search"

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	var request models.DocumentCreate
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, "*Handler.createDocument", err)
		return
	}

	document, err := h.services.DocumentService.CreateDocument(r.Context(), request)
	if err != nil {
		writeError(w, r, "*Handler.createDocument", err)
		return
	}

	utils.WriteJSON(w, models.DocumentResponse{Document: document}, http.StatusCreated)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.listDocuments", err)
		return
	}

	documents, err := h.services.DocumentService.ListDocuments(r.Context(), page)
	if err != nil {
		writeError(w, r, "*Handler.listDocuments", err)
		return
	}

	writeDocumentsPage(w, documents, page)
}

func (h *Handler) searchDocuments(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.searchDocuments", err)
		return
	}

	documents, err := h.services.DocumentService.SearchDocuments(r.Context(), models.SearchRequest{
		Term: r.URL.Query().Get(searchParam),
		Page: page,
	})
	if err != nil {
		writeError(w, r, "*Handler.searchDocuments", err)
		return
	}

	writeDocumentsPage(w, documents, page)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.getDocument", err)
		return
	}

	document, err := h.services.DocumentService.GetDocument(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getDocument", err)
		return
	}

	utils.WriteJSON(w, models.DocumentResponse{Document: document}, http.StatusOK)
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateDocument", err)
		return
	}

	var update models.DocumentUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, "*Handler.updateDocument", err)
		return
	}

	document, err := h.services.DocumentService.UpdateDocument(r.Context(), id, update)
	if err != nil {
		writeError(w, r, "*Handler.updateDocument", err)
		return
	}

	utils.WriteJSON(w, models.DocumentResponse{Document: document}, http.StatusOK)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteDocument", err)
		return
	}

	if err = h.services.DocumentService.DeleteDocument(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deleteDocument", err)
		return
	}

	utils.WriteMessage(w, app.MsgDocumentDeleted, http.StatusOK)
}

// writeDocumentsPage renders a document collection with its page metadata.
func writeDocumentsPage(w http.ResponseWriter, documents models.DocumentsPage, page models.Page) {
	if documents.Rows == nil {
		documents.Rows = []models.Document{}
	}

	utils.WriteJSON(w, models.DocumentsResponse{
		Documents: documents,
		MetaData:  pagination.Calculate(documents.Count, page.Limit, page.Offset, len(documents.Rows)),
	}, http.StatusOK)
}
