// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-doc-keeper/internal/policy"
	"github.com/MKhiriev/go-doc-keeper/internal/service"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/models"
)

const signupBody = `{"username":"jdoe","firstName":"John","lastName":"Doe","email":"jdoe@example.com","password":"secret123"}`

func TestSignup(t *testing.T) {
	t.Run("created with token", func(t *testing.T) {
		api := newTestAPI(t)
		api.auth.EXPECT().Signup(gomock.Any(), models.SignupRequest{
			Username: "jdoe", FirstName: "John", LastName: "Doe", Email: "jdoe@example.com", Password: "secret123",
		}).Return(models.User{ID: 7, Email: "jdoe@example.com"}, models.Token{SignedString: "signed"}, nil)

		rr := api.do(t, http.MethodPost, "/users", signupBody, false)

		require.Equal(t, http.StatusCreated, rr.Code)
		var resp models.AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, models.AuthResponse{
			Message: "You have successfully signed up!", Token: "signed", UserID: 7, UserEmail: "jdoe@example.com",
		}, resp)
	})

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"username taken", fmt.Errorf("user creation ended with error: %w", store.ErrUsernameExists), http.StatusBadRequest, "Sorry, username already exists."},
		{"email taken", store.ErrEmailExists, http.StatusBadRequest, "Sorry, email already exists."},
		{"explicit id", policy.ErrSignupWithID, http.StatusBadRequest, "Sorry, You can't pass an id."},
		{"admin role", policy.ErrSignupAsAdmin, http.StatusBadRequest, "You can't sign up as an admin."},
		{"unknown role", store.ErrUnknownRole, http.StatusBadRequest, "Role does not exist."},
		{"token failure", service.ErrTokenCreationFailed, http.StatusInternalServerError, "Internal server error."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.auth.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(models.User{}, models.Token{}, tt.err)

			rr := api.do(t, http.MethodPost, "/users", signupBody, false)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, message(t, rr))
		})
	}

	t.Run("invalid JSON", func(t *testing.T) {
		api := newTestAPI(t)

		rr := api.do(t, http.MethodPost, "/users", `{"username":`, false)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid data provided.", message(t, rr))
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("admin creates user", func(t *testing.T) {
		api := newTestAPI(t)
		api.as(adminCaller)
		api.auth.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			Return(models.User{ID: 9, Username: "jdoe", RoleID: 3}, nil)

		rr := api.do(t, http.MethodPost, "/users/create", `{"username":"jdoe","roleId":3}`, true)

		require.Equal(t, http.StatusCreated, rr.Code)
		var resp models.UserResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "User created successfully.", resp.Message)
		assert.Equal(t, int64(9), resp.User.ID)
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("regular user forbidden", func(t *testing.T) {
		api := newTestAPI(t)
		api.as(regularCaller)
		api.auth.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, policy.ErrAdminRequired)

		rr := api.do(t, http.MethodPost, "/users/create", signupBody, true)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "You are not authorized!", message(t, rr))
	})
}

func TestLogin(t *testing.T) {
	t.Run("signed in", func(t *testing.T) {
		api := newTestAPI(t)
		api.auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Username: "jdoe", Password: "secret123"}).
			Return(models.User{ID: 7, Email: "jdoe@example.com"}, models.Token{SignedString: "signed"}, nil)

		rr := api.do(t, http.MethodPost, "/login", `{"username":"jdoe","password":"secret123"}`, false)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "You have successfully signed in!", resp.Message)
		assert.Equal(t, "signed", resp.Token)
		assert.Equal(t, int64(7), resp.UserID)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		api := newTestAPI(t)
		api.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(models.User{}, models.Token{}, service.ErrInvalidCredentials)

		rr := api.do(t, http.MethodPost, "/login", `{"username":"jdoe","password":"nope"}`, false)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Incorrect username and password combination!", message(t, rr))
	})
}

func TestLogout(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			api := newTestAPI(t)
			api.as(regularCaller)
			api.auth.EXPECT().Logout(gomock.Any()).Return(nil)

			rr := api.do(t, method, "/logout", "", true)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "You have successfully logged out", message(t, rr))
		})
	}
}
