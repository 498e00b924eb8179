package handlers

import (
	"context"
	"net/http"

	response "printhub/internal/adapter/http/dto/response"
	"printhub/internal/domain/entities"
	"printhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

// HistoryHandler serves the status history of requests and orders, newest first.
type HistoryHandler struct {
	usecase usecase.IHistoryUseCase
}

func NewHistoryHandler(uc usecase.IHistoryUseCase) *HistoryHandler {
	return &HistoryHandler{usecase: uc}
}

func (h *HistoryHandler) RequestHistory(c *gin.Context) {
	h.list(c, h.usecase.GetRequestHistory)
}

func (h *HistoryHandler) OrderHistory(c *gin.Context) {
	h.list(c, h.usecase.GetOrderHistory)
}

func (h *HistoryHandler) list(c *gin.Context, fetch func(ctx context.Context, id int64) ([]entities.StatusHistoryEntry, error)) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	entries, err := fetch(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromHistory(entries))
}
