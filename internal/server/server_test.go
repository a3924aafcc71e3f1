// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/handler"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/mock"
	"github.com/MKhiriev/go-doc-keeper/internal/service"
)

// freeAddress returns a loopback address with a port nobody listens on.
func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	srv := newHTTPServer(http.NewServeMux(), config.Server{HTTPAddress: ":9000", RequestTimeout: 3 * time.Second}, logger.Nop())

	assert.Equal(t, ":9000", srv.server.Addr)
	assert.Equal(t, 3*time.Second, srv.server.ReadTimeout)
	assert.Equal(t, 3*time.Second+readHeaderTimeout, srv.server.WriteTimeout)
	assert.Equal(t, readHeaderTimeout, srv.server.ReadHeaderTimeout)

	srv = newHTTPServer(http.NewServeMux(), config.Server{}, logger.Nop())
	assert.Equal(t, config.DefaultRequestTimeout, srv.server.ReadTimeout)
}

func TestServer_RunUntilContextDone(t *testing.T) {
	info := mock.NewMockAppInfoService(gomock.NewController(t))
	info.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").AnyTimes()

	cfg := config.Server{HTTPAddress: freeAddress(t), AllowedOrigins: []string{"*"}}
	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: info}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.HTTPAddress + "/version")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
