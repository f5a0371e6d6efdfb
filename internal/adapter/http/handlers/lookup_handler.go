package handlers

import (
	"net/http"

	request "driveway_xpto/internal/adapter/http/dto/request"
	response "driveway_xpto/internal/adapter/http/dto/response"
	"driveway_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LookupHandler struct {
	usecase usecase.ILookupUseCase
}

func NewLookupHandler(uc usecase.ILookupUseCase) *LookupHandler {
	return &LookupHandler{usecase: uc}
}

// ComprehensiveLookup returns every request of the client with its quotes,
// negotiations, orders and bills. An unknown phone yields [].
func (h *LookupHandler) ComprehensiveLookup(c *gin.Context) {
	var payload request.PhoneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	aggs, err := h.usecase.Comprehensive(c.Request.Context(), payload.PhoneNumber)
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAggregates(aggs))
}
