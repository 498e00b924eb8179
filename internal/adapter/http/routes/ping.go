package routes

import (
	"context"
	"net/http"

	"printhub/internal/infrastructure/database"
	"printhub/pkg"

	"github.com/gin-gonic/gin"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type pingResponse struct {
	Message      string                `json:"message"`
	Capabilities database.Capabilities `json:"capabilities"`
}

// addPingRoutes exposes a liveness check that also checks the storage backend.
func addPingRoutes(rg *gin.RouterGroup, stores *database.Stores) {
	rg.GET("/ping", pingHandler(stores, stores.Capabilities))
}

func pingHandler(p pinger, caps database.Capabilities) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := p.Ping(c.Request.Context()); err != nil {
			appErr := pkg.NewDomainError("BACKEND_UNAVAILABLE", "Storage backend unavailable", err, http.StatusServiceUnavailable)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, pingResponse{Message: "pong", Capabilities: caps})
	}
}
