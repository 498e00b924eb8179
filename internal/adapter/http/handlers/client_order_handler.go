package handlers

import (
	"net/http"
	"strings"

	response "printhub/internal/adapter/http/dto/response"
	"printhub/internal/domain/entities"
	"printhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ClientOrderHandler serves the client order endpoints. Rows come from the mirror
// table when it exists and from promoted order requests otherwise.
type ClientOrderHandler struct {
	usecase usecase.IClientOrderUseCase
}

func NewClientOrderHandler(uc usecase.IClientOrderUseCase) *ClientOrderHandler {
	return &ClientOrderHandler{usecase: uc}
}

// List godoc
// @Summary List client orders
// @Tags client-orders
// @Produce json
// @Param status query string false "Approved, Rejected or Completed"
// @Success 200 {array} response.ClientOrderResponse
// @Router /client-orders [get]
func (h *ClientOrderHandler) List(c *gin.Context) {
	status := entities.OrderStatus(strings.TrimSpace(c.Query("status")))
	orders, err := h.usecase.ListClientOrders(c.Request.Context(), status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClientOrders(orders))
}

func (h *ClientOrderHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	order, err := h.usecase.GetClientOrderByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClientOrder(order))
}

func (h *ClientOrderHandler) ChangeStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	payload, ok := bindStatusChange(c)
	if !ok {
		return
	}
	status, _ := payload.ResolveStatus()
	res, err := h.usecase.ChangeClientOrderStatus(c.Request.Context(), id, status, payload.ResolveActor())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransition(res))
}
