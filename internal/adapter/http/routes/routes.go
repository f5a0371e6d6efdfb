package routes

import (
	"log"

	_ "driveway_xpto/docs"
	"driveway_xpto/internal/adapter/http/handlers"
	"driveway_xpto/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Client  *handlers.ClientHandler
	Request *handlers.RequestHandler
	Quote   *handlers.QuoteHandler
	Order   *handlers.OrderHandler
	Bill    *handlers.BillHandler
	Lookup  *handlers.LookupHandler
	Report  *handlers.ReportHandler
	Ping    *handlers.PingHandler
}

// NewRouter builds the gin engine with middlewares and every route mounted.
func NewRouter(h Handlers, cfg config.ServerConfig) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addPingRoutes(router, h.Ping)
	addIntakeRoutes(router, h.Client, h.Request, h.Lookup)
	addWorkflowRoutes(router, h.Quote, h.Order, h.Bill)
	addReportRoutes(router, h.Report)
	return router
}

func setMiddlewares(router *gin.Engine, cfg config.ServerConfig) {
	router.Use(RequestID())
	router.Use(gin.LoggerWithFormatter(accessLogFormatter))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[http][router] recovered from panic request_id=%s err=%v", c.GetString(requestIDKey), recovered)
		c.AbortWithStatus(500)
	}))
	if cfg.RateLimit.Enabled {
		log.Printf("[http][router] rate limit enabled rps=%.2f burst=%d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		router.Use(NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Limit())
	}
}
