package handlers

import (
	"context"
	"net/http"

	request "driveway_xpto/internal/adapter/http/dto/request"
	response "driveway_xpto/internal/adapter/http/dto/response"
	"driveway_xpto/internal/domain/entities"
	"driveway_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func respond[T any](c *gin.Context, fetch func(ctx context.Context) (T, error)) {
	rows, err := fetch(c.Request.Context())
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) BigClients(c *gin.Context) {
	respond(c, h.usecase.BigClients)
}

func (h *ReportHandler) DifficultClients(c *gin.Context) {
	respond(c, h.usecase.DifficultClients)
}

// Quotes defaults to the current month; from and to are YYYY-MM-DD.
func (h *ReportHandler) Quotes(c *gin.Context) {
	var q request.ReportWindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	from, to, err := q.Resolve()
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}
	respond(c, func(ctx context.Context) ([]entities.WindowQuote, error) {
		return h.usecase.QuotesInWindow(ctx, from, to)
	})
}

func (h *ReportHandler) ProspectiveClients(c *gin.Context) {
	respond(c, h.usecase.ProspectiveClients)
}

func (h *ReportHandler) LargestDriveway(c *gin.Context) {
	respond(c, h.usecase.LargestDriveway)
}

func (h *ReportHandler) OverdueBills(c *gin.Context) {
	respond(c, func(ctx context.Context) ([]response.OverdueBillResponse, error) {
		rows, err := h.usecase.OverdueBills(ctx)
		if err != nil {
			return nil, err
		}
		return response.FromOverdueBills(rows), nil
	})
}

func (h *ReportHandler) BadClients(c *gin.Context) {
	respond(c, h.usecase.BadClients)
}

func (h *ReportHandler) GoodClients(c *gin.Context) {
	respond(c, h.usecase.GoodClients)
}

func (h *ReportHandler) Revenue(c *gin.Context) {
	respond(c, h.usecase.Revenue)
}
