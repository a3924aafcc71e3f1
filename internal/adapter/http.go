// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. The whitespace-trimmed token is sent
// in the x-access-token header of every authenticated request.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
	if h.token == "" {
		h.client.Header.Del(utils.AccessTokenHeader)
		return
	}
	h.client.WithToken(h.token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Signup implements [ServerAdapter]. It posts to /users and stores the
// session token of the created account.
func (h *httpServerAdapter) Signup(ctx context.Context, request models.SignupRequest) (models.AuthResponse, error) {
	var result models.AuthResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/users")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("signup request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(result.Token)
	h.logger.Debug().Int64("user_id", result.UserID).Msg("signed up")
	return result, nil
}

// Login implements [ServerAdapter]. It posts credentials to /login and stores
// the returned session token.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	var result models.AuthResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(result.Token)
	h.logger.Debug().Int64("user_id", result.UserID).Msg("logged in")
	return result, nil
}

// Logout implements [ServerAdapter]. The stored token is cleared even when
// the server rejects it.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	defer h.SetToken("")

	resp, err := req.Post("/logout")
	if err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateDocument(ctx context.Context, request models.DocumentCreate) (models.Document, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Document{}, err
	}

	var result models.DocumentResponse
	resp, err := req.SetBody(request).SetResult(&result).Post("/documents")
	if err != nil {
		return models.Document{}, fmt.Errorf("create document request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}
	return result.Document, nil
}

func (h *httpServerAdapter) GetDocument(ctx context.Context, id int64) (models.Document, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Document{}, err
	}

	var result models.DocumentResponse
	resp, err := req.SetResult(&result).Get(documentPath(id))
	if err != nil {
		return models.Document{}, fmt.Errorf("get document request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}
	return result.Document, nil
}

func (h *httpServerAdapter) ListDocuments(ctx context.Context, page models.Page) (models.DocumentsResponse, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.DocumentsResponse{}, err
	}

	var result models.DocumentsResponse
	resp, err := withPage(req, page).SetResult(&result).Get("/documents")
	if err != nil {
		return models.DocumentsResponse{}, fmt.Errorf("list documents request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentsResponse{}, err
	}
	return result, nil
}

func (h *httpServerAdapter) SearchDocuments(ctx context.Context, term string, page models.Page) (models.DocumentsResponse, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.DocumentsResponse{}, err
	}

	var result models.DocumentsResponse
	resp, err := withPage(req, page).
		SetQueryParam("search", term).
		SetResult(&result).
		Get("/documents/search")
	if err != nil {
		return models.DocumentsResponse{}, fmt.Errorf("search documents request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentsResponse{}, err
	}
	return result, nil
}

func (h *httpServerAdapter) UpdateDocument(ctx context.Context, id int64, update models.DocumentUpdate) (models.Document, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Document{}, err
	}

	var result models.DocumentResponse
	resp, err := req.SetBody(update).SetResult(&result).Put(documentPath(id))
	if err != nil {
		return models.Document{}, fmt.Errorf("update document request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}
	return result.Document, nil
}

func (h *httpServerAdapter) DeleteDocument(ctx context.Context, id int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete(documentPath(id))
	if err != nil {
		return fmt.Errorf("delete document request failed: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListUsers(ctx context.Context, page models.Page) (models.UsersResponse, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.UsersResponse{}, err
	}

	var result models.UsersResponse
	resp, err := withPage(req, page).SetResult(&result).Get("/users")
	if err != nil {
		return models.UsersResponse{}, fmt.Errorf("list users request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UsersResponse{}, err
	}
	return result, nil
}

func (h *httpServerAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	var result models.User
	resp, err := req.SetResult(&result).Get("/users/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	return result, nil
}

func (h *httpServerAdapter) ListUserDocuments(ctx context.Context, ownerID int64, page models.Page) (models.DocumentsResponse, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.DocumentsResponse{}, err
	}

	var result models.DocumentsResponse
	resp, err := withPage(req, page).
		SetResult(&result).
		Get("/users/" + strconv.FormatInt(ownerID, 10) + "/documents")
	if err != nil {
		return models.DocumentsResponse{}, fmt.Errorf("list user documents request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentsResponse{}, err
	}
	return result, nil
}

func (h *httpServerAdapter) ListRoles(ctx context.Context) ([]models.Role, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var result []models.Role
	resp, err := req.SetResult(&result).Get("/roles")
	if err != nil {
		return nil, fmt.Errorf("list roles request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return result, nil
}

func (h *httpServerAdapter) CreateRole(ctx context.Context, title string) (models.Role, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Role{}, err
	}

	var result models.Role
	resp, err := req.SetBody(models.Role{Title: title}).SetResult(&result).Post("/roles")
	if err != nil {
		return models.Role{}, fmt.Errorf("create role request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Role{}, err
	}
	return result, nil
}

// Version implements [ServerAdapter]. The endpoint is public.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// authedRequest returns a request bound to ctx, failing with ErrNoToken when
// no session token is stored.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	if h.token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().SetContext(ctx), nil
}

func withPage(req *resty.Request, page models.Page) *resty.Request {
	if page.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatInt(page.Limit, 10))
	}
	if page.Offset > 0 {
		req.SetQueryParam("offset", strconv.FormatInt(page.Offset, 10))
	}
	return req
}

func documentPath(id int64) string {
	return "/documents/" + strconv.FormatInt(id, 10)
}
