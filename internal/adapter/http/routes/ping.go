package routes

import (
	"driveway_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPing = "/ping"

func addPingRoutes(router gin.IRouter, h *handlers.PingHandler) {
	router.GET(PathPing, h.Ping)
}
