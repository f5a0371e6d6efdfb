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

type BillHandler struct {
	usecase usecase.IBillUseCase
}

func NewBillHandler(uc usecase.IBillUseCase) *BillHandler {
	return &BillHandler{usecase: uc}
}

func (h *BillHandler) ListBills(c *gin.Context) {
	bs, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, mapBillError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBills(bs))
}

func (h *BillHandler) GetBill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		writeError(c, errInvalidID)
		return
	}
	b, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapBillError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBill(b))
}

// BillAction writes the given action as the bill's new status. Paying a
// bill settles its final amount.
func (h *BillHandler) BillAction(c *gin.Context) {
	var payload request.BillActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	status, err := h.usecase.ApplyAction(c.Request.Context(), payload.BillID, payload.Action)
	if err != nil {
		log.Printf("[bill][handler] action failed bill_id=%d action=%q err=%v", payload.BillID, payload.Action, err)
		writeError(c, mapBillError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Bill " + string(status) + " successfully"})
}

func (h *BillHandler) CreateBillNegotiation(c *gin.Context) {
	var payload request.BillNegotiationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Negotiate(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[bill][handler] negotiation failed bill_id=%d err=%v", payload.BillID, err)
		writeError(c, mapBillError(err))
		return
	}
	c.JSON(http.StatusOK, response.NegotiationCreatedResponse{
		Message:       "Bill negotiation created successfully",
		NegotiationID: created.ID,
		Version:       created.Version,
	})
}

func (h *BillHandler) BillNegotiations(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		writeError(c, errInvalidID)
		return
	}
	ns, err := h.usecase.History(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapBillError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBillNegotiations(ns))
}

func mapBillError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAction):
		return pkg.NewDomainErrorSimple("INVALID_ACTION", "Invalid bill action", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	default:
		return mapUseCaseError(err)
	}
}
