package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubHealth struct{ err error }

func (s stubHealth) HealthCheck(context.Context) error { return s.err }

func TestPingHandler_Ping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("healthy", func(t *testing.T) {
		r := gin.New()
		r.GET("/ping", NewPingHandler(stubHealth{}).Ping)

		w := perform(r, http.MethodGet, "/ping", "")
		if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("database down", func(t *testing.T) {
		r := gin.New()
		r.GET("/ping", NewPingHandler(stubHealth{err: errors.New("dial tcp: refused")}).Ping)

		w := perform(r, http.MethodGet, "/ping", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "DB_UNAVAILABLE" {
			t.Fatalf("unexpected code %s", code)
		}
	})
}
