// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-doc-keeper/internal/app"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/policy"
	"github.com/MKhiriev/go-doc-keeper/internal/query"
	"github.com/MKhiriev/go-doc-keeper/internal/service"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/internal/validators"
)

// errorResponse is the HTTP rendering of an error.
type errorResponse struct {
	status  int
	message string
}

// errorResponseMap maps every known sentinel error to its status and
// user-facing message. Anything else is a 500.
var errorResponseMap = map[error]errorResponse{
	// Unauthenticated.
	ErrNoToken:                          {http.StatusUnauthorized, app.MsgNoTokenProvided},
	utils.ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, app.MsgInvalidToken},
	service.ErrNoCaller:                 {http.StatusUnauthorized, app.MsgNoTokenProvided},
	service.ErrInvalidToken:             {http.StatusUnauthorized, app.MsgInvalidToken},
	service.ErrSessionExpired:           {http.StatusUnauthorized, app.MsgSessionExpired},
	service.ErrInvalidCredentials:       {http.StatusUnauthorized, app.MsgInvalidLoginPassword},

	// Forbidden.
	policy.ErrDocumentReadDenied:  {http.StatusForbidden, app.MsgDocumentReadDenied},
	policy.ErrDocumentWriteDenied: {http.StatusForbidden, app.MsgActionRestricted},
	policy.ErrOwnerChange:         {http.StatusForbidden, app.MsgOwnerChange},
	policy.ErrNotSelfOrAdmin:      {http.StatusForbidden, app.MsgActionRestricted},
	policy.ErrUserIDChange:        {http.StatusForbidden, app.MsgUserIDChange},
	policy.ErrRoleChangeDenied:    {http.StatusForbidden, app.MsgRoleChangeDenied},
	policy.ErrAdminUserDelete:     {http.StatusForbidden, app.MsgAdminUserDelete},
	policy.ErrAdminDocumentDelete: {http.StatusForbidden, app.MsgAdminDocumentDelete},
	policy.ErrReservedRole:        {http.StatusForbidden, app.MsgReservedRole},
	policy.ErrAdminRequired:       {http.StatusForbidden, app.MsgNotAuthorized},

	// Bad request.
	policy.ErrSignupWithID:   {http.StatusBadRequest, app.MsgSignupWithID},
	policy.ErrSignupAsAdmin:  {http.StatusBadRequest, app.MsgSignupAsAdmin},
	policy.ErrRoleIDRequired: {http.StatusBadRequest, app.MsgRoleIDRequired},
	query.ErrInvalidLimit:    {http.StatusBadRequest, app.MsgInvalidLimit},
	query.ErrInvalidOffset:   {http.StatusBadRequest, app.MsgInvalidOffset},
	query.ErrEmptySearchTerm: {http.StatusBadRequest, app.MsgEmptySearchTerm},
	ErrInvalidPathID:         {http.StatusBadRequest, app.MsgInvalidID},
	ErrInvalidJSON:           {http.StatusBadRequest, app.MsgInvalidDataProvided},
	store.ErrUsernameExists:  {http.StatusBadRequest, app.MsgUsernameExists},
	store.ErrEmailExists:     {http.StatusBadRequest, app.MsgEmailExists},
	store.ErrRoleTitleExists: {http.StatusBadRequest, app.MsgRoleTitleExists},
	store.ErrUnknownRole:     {http.StatusBadRequest, app.MsgUnknownRole},
	store.ErrRoleInUse:       {http.StatusBadRequest, app.MsgRoleInUse},
	store.ErrNothingToUpdate: {http.StatusBadRequest, app.MsgNothingToUpdate},

	// Not found.
	store.ErrUserNotFound:     {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrDocumentNotFound: {http.StatusNotFound, app.MsgDocumentNotFound},
	store.ErrRoleNotFound:     {http.StatusNotFound, app.MsgRoleNotFound},
}

// responseFromError resolves err into a status code and a message.
//
// Typed errors take precedence over the sentinel table: a validation
// failure surfaces its own message and an empty search names its term.
func responseFromError(err error) (int, string) {
	if validationErr, ok := validators.AsValidationError(err); ok {
		return http.StatusBadRequest, validationErr.Message
	}

	var noResults *service.NoResultsError
	if errors.As(err, &noResults) {
		return http.StatusNotFound, fmt.Sprintf(app.MsgNoResultsFound, noResults.Term)
	}

	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err with the request-scoped logger and writes its
// rendering. Server-side failures are logged at error level, client
// mistakes at debug level.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, message, status)
}
