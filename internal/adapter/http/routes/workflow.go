package routes

import (
	"driveway_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// addWorkflowRoutes mounts the quote, work order and bill endpoints.
func addWorkflowRoutes(router gin.IRouter, quote *handlers.QuoteHandler, order *handlers.OrderHandler, bill *handlers.BillHandler) {
	router.POST("/quotes", quote.CreateQuote)
	router.GET("/getquotes", quote.ListQuotes)
	router.GET("/quotes/:id/negotiations", quote.QuoteNegotiations)
	router.POST("/quote-action", quote.QuoteAction)
	router.POST("/create-quote-negotiation", quote.CreateQuoteNegotiation)

	router.POST("/create-work-order", order.CreateWorkOrder)
	router.POST("/complete-work-order", order.CompleteWorkOrder)
	router.POST("/get-work-order-details", order.GetWorkOrderDetails)
	router.GET("/orders", order.ListOrders)

	bills := router.Group("/bills")
	{
		bills.GET("", bill.ListBills)
		bills.GET("/:id", bill.GetBill)
		bills.GET("/:id/negotiations", bill.BillNegotiations)
	}
	router.POST("/bill-action", bill.BillAction)
	router.POST("/create-bill-negotiation", bill.CreateBillNegotiation)
}
