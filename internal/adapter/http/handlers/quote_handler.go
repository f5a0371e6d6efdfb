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

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	q, err := payload.ToEntity()
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}

	id, err := h.usecase.Create(c.Request.Context(), q)
	if err != nil {
		log.Printf("[quote][handler] create failed request_id=%d err=%v", payload.RequestID, err)
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.QuoteCreatedResponse{QuoteID: id})
}

// QuoteAction writes the given action as the quote's new status.
func (h *QuoteHandler) QuoteAction(c *gin.Context) {
	var payload request.QuoteActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	status, err := h.usecase.ApplyAction(c.Request.Context(), payload.QuoteID, payload.Action)
	if err != nil {
		log.Printf("[quote][handler] action failed quote_id=%d action=%q err=%v", payload.QuoteID, payload.Action, err)
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Quote " + string(status) + " successfully"})
}

func (h *QuoteHandler) CreateQuoteNegotiation(c *gin.Context) {
	var payload request.QuoteNegotiationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	n, err := payload.ToEntity()
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}

	created, err := h.usecase.Negotiate(c.Request.Context(), n)
	if err != nil {
		log.Printf("[quote][handler] negotiation failed quote_id=%d err=%v", payload.QuoteID, err)
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.NegotiationCreatedResponse{
		Message:       "Quote negotiation created successfully",
		NegotiationID: created.ID,
		Version:       created.Version,
	})
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	qs, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(qs))
}

func (h *QuoteHandler) QuoteNegotiations(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		writeError(c, errInvalidID)
		return
	}
	ns, err := h.usecase.History(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteNegotiations(ns))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAction):
		return pkg.NewDomainErrorSimple("INVALID_ACTION", "Invalid quote action", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return mapUseCaseError(err)
	}
}
