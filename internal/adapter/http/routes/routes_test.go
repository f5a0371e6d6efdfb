package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"driveway_xpto/internal/adapter/http/handlers"
	"driveway_xpto/internal/adapter/http/handlers/mocks"
	"driveway_xpto/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testHandlers(ctrl *gomock.Controller) Handlers {
	return Handlers{
		Client:  handlers.NewClientHandler(mocks.NewMockIClientUseCase(ctrl)),
		Request: handlers.NewRequestHandler(mocks.NewMockIRequestUseCase(ctrl)),
		Quote:   handlers.NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl)),
		Order:   handlers.NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl)),
		Bill:    handlers.NewBillHandler(mocks.NewMockIBillUseCase(ctrl)),
		Lookup:  handlers.NewLookupHandler(mocks.NewMockILookupUseCase(ctrl)),
		Report:  handlers.NewReportHandler(mocks.NewMockIReportUseCase(ctrl)),
		Ping:    handlers.NewPingHandler(nil),
	}
}

func TestNewRouter_MountsEveryRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	router := NewRouter(testHandlers(ctrl), config.ServerConfig{})

	mounted := map[string]bool{}
	for _, r := range router.Routes() {
		mounted[r.Method+" "+r.Path] = true
	}

	want := []string{
		"GET /ping",
		"GET /swagger/*any",
		"POST /register-client",
		"POST /submit-request",
		"GET /lookup",
		"POST /lookup-status",
		"GET /requests",
		"GET /requests/:id",
		"PATCH /requests/:id/status",
		"POST /comprehensive-lookup",
		"POST /quotes",
		"GET /getquotes",
		"GET /quotes/:id/negotiations",
		"POST /quote-action",
		"POST /create-quote-negotiation",
		"POST /create-work-order",
		"POST /complete-work-order",
		"POST /get-work-order-details",
		"GET /orders",
		"GET /bills",
		"GET /bills/:id",
		"GET /bills/:id/negotiations",
		"POST /bill-action",
		"POST /create-bill-negotiation",
		"GET /clients/most-active",
		"GET /reports/big-clients",
		"GET /reports/difficult-clients",
		"GET /reports/quotes",
		"GET /reports/prospective-clients",
		"GET /reports/largest-driveway",
		"GET /reports/overdue-bills",
		"GET /reports/bad-clients",
		"GET /reports/good-clients",
		"GET /reports/revenue",
	}
	for _, route := range want {
		assert.True(t, mounted[route], "missing route %s", route)
	}
}

func TestNewRouter_PingEchoesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	router := NewRouter(testHandlers(ctrl), config.ServerConfig{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	var seen string
	router.GET("/x", func(c *gin.Context) {
		seen = c.GetString(requestIDKey)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	require.NotEmpty(t, seen)
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, w.Header().Get(HeaderRequestID))
}

func TestIPRateLimiter_RejectsAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewIPRateLimiter(0.001, 2).Limit())
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	// a different client has its own bucket
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestIPRateLimiter_SweepsIdleClients(t *testing.T) {
	rl := NewIPRateLimiter(1, 1)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return base }
	rl.lastSweep = base

	rl.get("10.0.0.1")
	require.Len(t, rl.clients, 1)

	base = base.Add(limiterIdleTTL + time.Minute)
	rl.get("10.0.0.2")

	assert.Len(t, rl.clients, 1)
	_, ok := rl.clients["10.0.0.2"]
	assert.True(t, ok)
}
