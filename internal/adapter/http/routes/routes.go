package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "printhub/docs"
	"printhub/internal/adapter/http/handlers"
	"printhub/internal/infrastructure/config"
	"printhub/internal/infrastructure/database"
	"printhub/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run opens the configured backend and serves the API until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	stores, err := database.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := stores.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close storage backend")
		}
	}()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewRouter(stores, cfg.CORSAllowOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":           cfg.HTTPAddr,
			"backend":        stores.Capabilities.Backend,
			"mirror_enabled": stores.Capabilities.MirrorEnabled,
		}).Info("http server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logrus.Info("shutting down http server")
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine around already opened stores.
func NewRouter(stores *database.Stores, allowOrigins []string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, allowOrigins)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine := usecase.NewStatusEngine(stores.Requests, stores.Orders, stores.History)
	orderRequestUseCase := usecase.NewOrderRequestUseCase(stores.Requests, stores.Orders, stores.Clients, stores.History, stores.Sequence, engine)
	clientOrderUseCase := usecase.NewClientOrderUseCase(stores.Requests, stores.Orders, engine)
	clientUseCase := usecase.NewClientUseCase(stores.Clients, stores.Requests, stores.Orders)
	historyUseCase := usecase.NewHistoryUseCase(stores.History, stores.Requests, stores.Orders)

	v1 := router.Group("/v1")
	addPingRoutes(v1, stores)
	addOrderRoutes(v1,
		handlers.NewOrderRequestHandler(orderRequestUseCase),
		handlers.NewClientOrderHandler(clientOrderUseCase),
		handlers.NewClientHandler(clientUseCase),
		handlers.NewHistoryHandler(historyUseCase),
	)
	return router
}

func setMiddlewares(router *gin.Engine, allowOrigins []string) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logrus.WithField("panic", recovered).Error("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))
}
