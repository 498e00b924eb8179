package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"printhub/internal/adapter/http/handlers/mocks"
	"printhub/internal/domain/entities"
	"printhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestHistoryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIHistoryUseCase(ctrl)
	h := NewHistoryHandler(uc)

	r := gin.New()
	r.GET("/v1/order-requests/:id/history", h.RequestHistory)
	r.GET("/v1/client-orders/:id/history", h.OrderHistory)

	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	uc.EXPECT().GetRequestHistory(gomock.Any(), int64(7)).Return([]entities.StatusHistoryEntry{
		{ID: "b", SubjectType: entities.HistorySubjectOrderRequest, SubjectID: 7, Status: entities.OrderStatusApproved, Actor: "maria", CreatedAt: at},
		{ID: "a", SubjectType: entities.HistorySubjectOrderRequest, SubjectID: 7, Status: entities.OrderStatusPending, Actor: "system", CreatedAt: at.Add(-time.Hour)},
	}, nil)
	uc.EXPECT().GetOrderHistory(gomock.Any(), int64(3)).Return(nil, usecase.ErrClientOrderNotFound)

	w := doJSON(r, http.MethodGet, "/v1/order-requests/7/history", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 || body[0]["id"] != "b" || body[0]["status"] != "Approved" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/v1/client-orders/3/history", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/v1/client-orders/0/history", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
