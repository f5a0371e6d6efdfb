package handlers

import (
	"errors"
	"log"
	"net/http"

	request "driveway_xpto/internal/adapter/http/dto/request"
	response "driveway_xpto/internal/adapter/http/dto/response"
	"driveway_xpto/internal/usecase"
	"driveway_xpto/pkg"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateWorkOrder accepts a quote, creating its order and pending bill.
func (h *OrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	log.Printf("[order][handler] create start quote_id=%d", payload.QuoteID)

	created, err := h.usecase.CreateWorkOrder(c.Request.Context(), payload.QuoteID, payload.ProposedPrice)
	if err != nil {
		log.Printf("[order][handler] create failed quote_id=%d err=%v", payload.QuoteID, err)
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.WorkOrderCreatedResponse{
		Message: "Work order created successfully",
		OrderID: created.OrderID,
		BillID:  created.BillID,
	})
}

func (h *OrderHandler) CompleteWorkOrder(c *gin.Context) {
	var payload request.OrderIDRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	if err := h.usecase.Complete(c.Request.Context(), payload.OrderID); err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Work order completed successfully"})
}

// GetWorkOrderDetails answers {"workOrderDetails": null} for a quote with no order.
func (h *OrderHandler) GetWorkOrderDetails(c *gin.Context) {
	var payload request.QuoteIDRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	d, err := h.usecase.GetDetails(c.Request.Context(), payload.QuoteID)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderDetails(d))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderAlreadyOpen):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_EXISTS", "Work order already exists for this quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	default:
		return mapUseCaseError(err)
	}
}
