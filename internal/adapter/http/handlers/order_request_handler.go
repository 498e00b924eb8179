package handlers

import (
	"net/http"

	request "printhub/internal/adapter/http/dto/request"
	response "printhub/internal/adapter/http/dto/response"
	"printhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderRequestHandler serves the order request endpoints.
type OrderRequestHandler struct {
	usecase usecase.IOrderRequestUseCase
}

func NewOrderRequestHandler(uc usecase.IOrderRequestUseCase) *OrderRequestHandler {
	return &OrderRequestHandler{usecase: uc}
}

// ListPending godoc
// @Summary List pending order requests
// @Tags order-requests
// @Produce json
// @Success 200 {array} response.OrderRequestResponse
// @Failure 503 {object} pkg.HTTPError
// @Router /order-requests [get]
func (h *OrderRequestHandler) ListPending(c *gin.Context) {
	requests, err := h.usecase.ListPendingRequests(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderRequests(requests))
}

// GetByID godoc
// @Summary Get an order request with its items
// @Tags order-requests
// @Produce json
// @Param id path int true "Order request id"
// @Success 200 {object} response.OrderRequestResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /order-requests/{id} [get]
func (h *OrderRequestHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	r, err := h.usecase.GetRequestByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderRequest(r))
}

// Create godoc
// @Summary Create an order request
// @Tags order-requests
// @Accept json
// @Produce json
// @Param payload body request.OrderRequestPayload true "Order request"
// @Success 201 {object} response.OrderRequestResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /order-requests [post]
func (h *OrderRequestHandler) Create(c *gin.Context) {
	in, ok := bindOrderRequest(c)
	if !ok {
		return
	}
	created, err := h.usecase.CreateRequest(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrderRequest(created))
}

// Update godoc
// @Summary Replace the header and items of a pending order request
// @Tags order-requests
// @Accept json
// @Produce json
// @Param id path int true "Order request id"
// @Param payload body request.OrderRequestPayload true "Order request"
// @Success 200 {object} response.OrderRequestResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /order-requests/{id} [put]
func (h *OrderRequestHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	in, ok := bindOrderRequest(c)
	if !ok {
		return
	}
	updated, err := h.usecase.UpdateRequest(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderRequest(updated))
}

// ChangeStatus godoc
// @Summary Move an order request to another status
// @Tags order-requests
// @Accept json
// @Produce json
// @Param id path int true "Order request id"
// @Param payload body request.StatusChangeRequest true "Target status"
// @Success 200 {object} response.TransitionResponse
// @Failure 503 {object} pkg.HTTPError
// @Router /order-requests/{id}/status [patch]
func (h *OrderRequestHandler) ChangeStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	payload, ok := bindStatusChange(c)
	if !ok {
		return
	}
	status, _ := payload.ResolveStatus()
	res, err := h.usecase.ChangeRequestStatus(c.Request.Context(), id, status, payload.ResolveActor())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransition(res))
}

// NextCode godoc
// @Summary Preview the next request code
// @Tags order-requests
// @Produce json
// @Success 200 {object} response.NextCodeResponse
// @Router /order-requests/next-code [get]
func (h *OrderRequestHandler) NextCode(c *gin.Context) {
	code, err := h.usecase.GenerateRequestCode(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NextCodeResponse{Code: code})
}

func bindOrderRequest(c *gin.Context) (usecase.OrderRequestInput, bool) {
	var payload request.OrderRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return usecase.OrderRequestInput{}, false
	}
	in, err := payload.ToInput()
	if err != nil {
		writeAppError(c, errInvalidPayload)
		return usecase.OrderRequestInput{}, false
	}
	return in, true
}

func bindStatusChange(c *gin.Context) (request.StatusChangeRequest, bool) {
	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return payload, false
	}
	if _, err := payload.ResolveStatus(); err != nil {
		writeAppError(c, errInvalidStatus)
		return payload, false
	}
	return payload, true
}
