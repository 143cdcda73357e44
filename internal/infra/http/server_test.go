//go:build !integration

package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	httpapi "telegram-weather-bot/internal/infra/http"
)

func newTestServer(webhook http.HandlerFunc) *httpapi.Server {
	logger := zerolog.New(io.Discard)
	return httpapi.NewServer(0, "/telegram/webhook", webhook, &logger)
}

func TestServerRoutes(t *testing.T) {
	t.Run("should answer healthz", func(t *testing.T) {
		srv := newTestServer(nil)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
			t.Fatalf("healthz = %d %q", rec.Code, rec.Body.String())
		}
	})

	t.Run("should expose prometheus metrics", func(t *testing.T) {
		srv := newTestServer(nil)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if rec.Code != http.StatusOK || rec.Body.Len() == 0 {
			t.Fatalf("metrics = %d (%d bytes)", rec.Code, rec.Body.Len())
		}
	})

	t.Run("should mount the webhook route when provided", func(t *testing.T) {
		var hits int
		srv := newTestServer(func(w http.ResponseWriter, r *http.Request) {
			hits++
			w.WriteHeader(http.StatusOK)
		})
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/telegram/webhook", strings.NewReader("{}")))
		if rec.Code != http.StatusOK || hits != 1 {
			t.Fatalf("webhook = %d, hits = %d", rec.Code, hits)
		}
	})

	t.Run("should leave the webhook route unmounted in polling mode", func(t *testing.T) {
		srv := newTestServer(nil)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/telegram/webhook", strings.NewReader("{}")))
		if rec.Code == http.StatusOK {
			t.Fatalf("expected 404/405, got %d", rec.Code)
		}
	})
}
