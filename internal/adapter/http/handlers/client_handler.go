package handlers

import (
	"log"
	"net/http"

	request "driveway_xpto/internal/adapter/http/dto/request"
	response "driveway_xpto/internal/adapter/http/dto/response"
	"driveway_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// RegisterClient creates a client from the registration form.
func (h *ClientHandler) RegisterClient(c *gin.Context) {
	var payload request.RegisterClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	id, err := h.usecase.Register(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[client][handler] register failed err=%v", err)
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusCreated, response.RegisterClientResponse{Success: true, ClientID: id})
}

// LookupStatus lists a client's requests and quotes by phone number.
// Unknown phones are not an error: found is false and data is empty.
func (h *ClientHandler) LookupStatus(c *gin.Context) {
	var payload request.PhoneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	rows, err := h.usecase.LookupStatus(c.Request.Context(), payload.PhoneNumber)
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.StatusLookupResponse{Data: rows, Found: len(rows) > 0})
}
