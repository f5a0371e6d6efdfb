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

type RequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewRequestHandler(uc usecase.IRequestUseCase) *RequestHandler {
	return &RequestHandler{usecase: uc}
}

func (h *RequestHandler) SubmitRequest(c *gin.Context) {
	var payload request.SubmitRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	id, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[request][handler] submit failed client_id=%d err=%v", payload.ClientID, err)
		writeError(c, mapRequestError(err))
		return
	}
	log.Printf("[request][handler] submitted request_id=%d client_id=%d images=%d", id, payload.ClientID, len(payload.ImageURLs))
	c.JSON(http.StatusCreated, response.SubmitRequestResponse{Success: true, RequestID: id})
}

// LookupByAddress answers 404 when the address has no requests.
func (h *RequestHandler) LookupByAddress(c *gin.Context) {
	rs, err := h.usecase.LookupByAddress(c.Request.Context(), c.Query("address"))
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.AddressLookupResponse{Success: true, Requests: response.FromRequests(rs)})
}

func (h *RequestHandler) ListRequests(c *gin.Context) {
	rs, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequests(rs))
}

func (h *RequestHandler) GetRequestDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		writeError(c, errInvalidID)
		return
	}
	d, err := h.usecase.GetDetails(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequestDetail(d))
}

func (h *RequestHandler) UpdateRequestStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		writeError(c, errInvalidID)
		return
	}
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	if err := h.usecase.UpdateStatus(c.Request.Context(), id, payload.Status); err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	log.Printf("[request][handler] status updated request_id=%d status=%q", id, payload.Status)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Status updated successfully"})
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidImageURLs):
		return pkg.NewDomainErrorSimple("INVALID_IMAGE_URLS", "image_urls must be a list of URLs", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoRequestsFound):
		return pkg.NewDomainErrorSimple("NO_REQUESTS_FOUND", "No requests found for this address", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	default:
		return mapUseCaseError(err)
	}
}
