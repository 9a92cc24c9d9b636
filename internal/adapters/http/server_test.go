package http

import (
	"context"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petlink/petlink-api/internal/platform/config"
)

func testServerConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Port:            8080,
		Host:            "127.0.0.1",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 2 * time.Second,
		MaxRequestSize:  64,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew(t *testing.T) {
	s := New(testServerConfig(), testLogger())

	require.NotNil(t, s)
	assert.NotNil(t, s.Engine())
	assert.Equal(t, "127.0.0.1:8080", s.Addr())
	assert.Equal(t, 8080, s.Config().Port)
}

func TestServer_MaxBodySizeEnforced(t *testing.T) {
	s := New(testServerConfig(), testLogger())
	s.Engine().POST("/echo", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(nethttp.StatusRequestEntityTooLarge)
			return
		}
		c.Status(nethttp.StatusOK)
	})

	t.Run("small body accepted", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(nethttp.MethodPost, "/echo", strings.NewReader("small"))
		s.Engine().ServeHTTP(w, req)
		assert.Equal(t, nethttp.StatusOK, w.Code)
	})

	t.Run("oversized body rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := strings.Repeat("x", 200)
		req := httptest.NewRequest(nethttp.MethodPost, "/echo", strings.NewReader(body))
		s.Engine().ServeHTTP(w, req)
		assert.Equal(t, nethttp.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestServer_StartAndShutdown(t *testing.T) {
	cfg := testServerConfig()
	cfg.Port = 0 // not actually bound; Shutdown on a never-started listener is still safe

	s := New(cfg, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, s.Shutdown(ctx))
}
