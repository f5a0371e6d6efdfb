package handlers

import (
	"context"
	"log"
	"net/http"

	response "driveway_xpto/internal/adapter/http/dto/response"
	"driveway_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type PingHandler struct {
	db HealthChecker
}

func NewPingHandler(db HealthChecker) *PingHandler {
	return &PingHandler{db: db}
}

func (h *PingHandler) Ping(c *gin.Context) {
	if h.db != nil {
		if err := h.db.HealthCheck(c.Request.Context()); err != nil {
			log.Printf("[ping][handler] database unavailable err=%v", err)
			appErr := pkg.NewDomainError("DB_UNAVAILABLE", "Database unavailable", err, http.StatusServiceUnavailable)
			writeError(c, appErr)
			return
		}
	}
	c.JSON(http.StatusOK, response.PingResponse{Message: "pong"})
}
