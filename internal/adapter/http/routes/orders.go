package routes

import (
	"printhub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrderRequests = "/order-requests"
	PathClientOrders  = "/client-orders"
	PathClients       = "/clients"
)

func addOrderRoutes(
	rg *gin.RouterGroup,
	requestHandler *handlers.OrderRequestHandler,
	orderHandler *handlers.ClientOrderHandler,
	clientHandler *handlers.ClientHandler,
	historyHandler *handlers.HistoryHandler,
) {
	requests := rg.Group(PathOrderRequests)
	{
		requests.GET("", requestHandler.ListPending)
		requests.POST("", requestHandler.Create)
		requests.GET("/next-code", requestHandler.NextCode)
		requests.GET("/:id", requestHandler.GetByID)
		requests.PUT("/:id", requestHandler.Update)
		requests.PATCH("/:id/status", requestHandler.ChangeStatus)
		requests.GET("/:id/history", historyHandler.RequestHistory)
	}

	orders := rg.Group(PathClientOrders)
	{
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.GetByID)
		orders.PATCH("/:id/status", orderHandler.ChangeStatus)
		orders.GET("/:id/history", historyHandler.OrderHistory)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("/eligible", clientHandler.ListEligible)
	}
}
