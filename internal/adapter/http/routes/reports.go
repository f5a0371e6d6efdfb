package routes

import (
	"driveway_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathReports = "/reports"

func addReportRoutes(router gin.IRouter, h *handlers.ReportHandler) {
	router.GET("/clients/most-active", h.BigClients)

	reports := router.Group(PathReports)
	{
		reports.GET("/big-clients", h.BigClients)
		reports.GET("/difficult-clients", h.DifficultClients)
		reports.GET("/quotes", h.Quotes)
		reports.GET("/prospective-clients", h.ProspectiveClients)
		reports.GET("/largest-driveway", h.LargestDriveway)
		reports.GET("/overdue-bills", h.OverdueBills)
		reports.GET("/bad-clients", h.BadClients)
		reports.GET("/good-clients", h.GoodClients)
		reports.GET("/revenue", h.Revenue)
	}
}
