// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"password_hash_cost": 11,
			"version": "2.0.0",
			"admin": {"username": "root", "email": "root@example.com", "password": "rootpass"}
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"allowed_origins": ["http://a.test"]
		},
		"storage": {
			"db": {"dsn": "file::memory:", "driver": "sqlite"},
			"cache": {"role_cache_size": 8}
		},
		"adapter": {"http_address": "http://localhost:8080", "request_timeout": 1000000000}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "root", cfg.App.Admin.Username)
	assert.Equal(t, "rootpass", cfg.App.Admin.Password)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://a.test"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "file::memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, 8, cfg.Storage.Cache.RoleCacheSize)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("invalid duration", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(p, []byte(`{"app":{"token_duration":"soon"}}`), 0o600))

		_, err := parseJSON(p)
		assert.Error(t, err)
	})

	t.Run("boolean duration", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(p, []byte(`{"server":{"request_timeout":true}}`), 0o600))

		_, err := parseJSON(p)
		assert.Error(t, err)
	})
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))
}
