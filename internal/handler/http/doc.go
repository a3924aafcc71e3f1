// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of go-doc-keeper.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging, CORS and response compression are handled
// in this package before requests are delegated to the service layer. Every
// error leaving a handler goes through the mapping table in errors_mapper.go
// and is rendered as a {"message": ...} body.
package http
