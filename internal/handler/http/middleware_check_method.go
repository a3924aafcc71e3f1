// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-doc-keeper/internal/app"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
)

// CheckHTTPMethod returns a handler intended for [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path matches a registered route but the method
// does not. The API hides such routes instead: unless router can match the
// method and path of the request, the response is the same 404 as for an
// unknown path.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			routeNotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// routeNotFound answers every request that no route serves.
func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteMessage(w, app.MsgRouteNotFound, http.StatusNotFound)
}
