package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/handler"
	myHTTP "github.com/MKhiriev/go-feed/internal/handler/http"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/service"
)

func newTestHandlers(cfg config.Server) *handler.Handlers {
	return &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, cfg, logger.Nop())}
}

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", AllowedOrigins: []string{"*"}}

	srv, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	assert.Equal(t, "127.0.0.1:0", s.httpServer.server.Addr)
	assert.Equal(t, readHeaderTimeout, s.httpServer.server.ReadHeaderTimeout)
}

func TestNewServer_NoHandlers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{"nil handlers", nil, config.Server{HTTPAddress: ":5000"}},
		{"nil http handler", &handler.Handlers{}, config.Server{HTTPAddress: ":5000"}},
		{"no address", newTestHandlers(config.Server{}), config.Server{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewServer(tt.handlers, tt.cfg, logger.Nop())
			assert.ErrorIs(t, err, errNoServersAreCreated)
		})
	}
}

func TestRun_ServesUntilCanceled(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", AllowedOrigins: []string{"*"}}
	srv, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ln, err := s.httpServer.listen()
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	s.httpServer.server.Addr = addr

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not shut down")
	}
}

func TestRun_BindError(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	srv, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ln, err := s.httpServer.listen()
	require.NoError(t, err)
	defer ln.Close()
	s.httpServer.server.Addr = ln.Addr().String()

	err = srv.Run(context.Background())
	assert.Error(t, err)
}
