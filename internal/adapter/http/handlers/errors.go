package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"printhub/internal/usecase"
	"printhub/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)
	errInvalidStatus  = pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status", http.StatusBadRequest)
)

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItems):
		return pkg.NewDomainError("INVALID_ITEMS", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderRequestNotFound):
		return pkg.NewDomainErrorSimple("ORDER_REQUEST_NOT_FOUND", "Order request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientOrderNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_ORDER_NOT_FOUND", "Client order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrBackendUnavailable):
		return pkg.NewDomainError("BACKEND_UNAVAILABLE", "Storage backend unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"component": "http",
			"method":    c.Request.Method,
			"path":      c.FullPath(),
		}).WithError(err).Error("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// idParam reads a positive integer path parameter.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		writeAppError(c, errInvalidID)
		return 0, false
	}
	return id, true
}
