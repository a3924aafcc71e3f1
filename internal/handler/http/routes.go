// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
)

// Init builds the router of the API.
//
// Every request passes through panic recovery, CORS, tracing, access
// logging, gzip and the per-request timeout. Signup, login and version are
// public; everything else requires a valid session token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", "x-access-token", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(middleware.Timeout(h.requestTimeout()))

	router.Group(func(r chi.Router) {
		r.Post("/users", h.signup)
		r.Post("/login", h.login)
		r.Get("/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/logout", h.logout)
		r.Get("/logout", h.logout)

		r.Get("/users", h.listUsers)
		r.Post("/users/create", h.createUser)
		r.Get("/users/{id}", h.getUser)
		r.Put("/users/{id}", h.updateUser)
		r.Delete("/users/{id}", h.deleteUser)
		r.Get("/users/{id}/documents", h.listUserDocuments)

		r.Post("/documents", h.createDocument)
		r.Get("/documents", h.listDocuments)
		r.Get("/documents/search", h.searchDocuments)
		r.Get("/documents/{id}", h.getDocument)
		r.Put("/documents/{id}", h.updateDocument)
		r.Delete("/documents/{id}", h.deleteDocument)

		r.Post("/roles", h.createRole)
		r.Get("/roles", h.listRoles)
		r.Get("/roles/{id}", h.getRole)
		r.Put("/roles/{id}", h.updateRole)
		r.Delete("/roles/{id}", h.deleteRole)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// requestTimeout returns the configured per-request timeout or the default.
func (h *Handler) requestTimeout() time.Duration {
	if h.cfg.RequestTimeout > 0 {
		return h.cfg.RequestTimeout
	}
	return config.DefaultRequestTimeout
}
