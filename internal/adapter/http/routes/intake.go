package routes

import (
	"driveway_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addIntakeRoutes(router gin.IRouter, client *handlers.ClientHandler, req *handlers.RequestHandler, lookup *handlers.LookupHandler) {
	router.POST("/register-client", client.RegisterClient)
	router.POST("/lookup-status", client.LookupStatus)

	router.POST("/submit-request", req.SubmitRequest)
	router.GET("/lookup", req.LookupByAddress)

	requests := router.Group("/requests")
	{
		requests.GET("", req.ListRequests)
		requests.GET("/:id", req.GetRequestDetails)
		requests.PATCH("/:id/status", req.UpdateRequestStatus)
	}

	router.POST("/comprehensive-lookup", lookup.ComprehensiveLookup)
}
