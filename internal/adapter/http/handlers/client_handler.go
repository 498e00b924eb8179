package handlers

import (
	"net/http"

	response "printhub/internal/adapter/http/dto/response"
	"printhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// ListEligible returns active clients without an order in flight.
func (h *ClientHandler) ListEligible(c *gin.Context) {
	clients, err := h.usecase.ListEligibleClients(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}
