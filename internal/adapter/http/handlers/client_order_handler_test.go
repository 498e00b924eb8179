package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"printhub/internal/adapter/http/handlers/mocks"
	"printhub/internal/domain/entities"
	"printhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newClientOrderRouter(h *ClientOrderHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/client-orders", h.List)
	r.GET("/v1/client-orders/:id", h.GetByID)
	r.PATCH("/v1/client-orders/:id/status", h.ChangeStatus)
	return r
}

func TestClientOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes the status filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientOrderUseCase(ctrl)
		r := newClientOrderRouter(NewClientOrderHandler(uc))

		uc.EXPECT().ListClientOrders(gomock.Any(), entities.OrderStatus("approved")).Return([]entities.ClientOrder{
			{ID: 1, OrderCode: "REQ-2024-00001", Status: entities.OrderStatusApproved, ItemCount: 2, Source: entities.ClientOrderSourceMirror},
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/client-orders?status=approved", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["item_count"] != float64(2) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientOrderUseCase(ctrl)
		r := newClientOrderRouter(NewClientOrderHandler(uc))

		uc.EXPECT().ListClientOrders(gomock.Any(), entities.OrderStatus("shipped")).Return(nil, usecase.ErrInvalidStatus)

		w := doJSON(r, http.MethodGet, "/v1/client-orders?status=shipped", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestClientOrderHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIClientOrderUseCase(ctrl)
	r := newClientOrderRouter(NewClientOrderHandler(uc))

	uc.EXPECT().GetClientOrderByID(gomock.Any(), int64(4)).Return(entities.ClientOrder{}, usecase.ErrClientOrderNotFound)

	w := doJSON(r, http.MethodGet, "/v1/client-orders/4", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if got := errorCode(t, w); got != "CLIENT_ORDER_NOT_FOUND" {
		t.Fatalf("expected CLIENT_ORDER_NOT_FOUND, got %q", got)
	}
}

func TestClientOrderHandler_ChangeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("orphan demotion is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientOrderUseCase(ctrl)
		r := newClientOrderRouter(NewClientOrderHandler(uc))

		uc.EXPECT().ChangeClientOrderStatus(gomock.Any(), int64(4), entities.OrderStatusPending, "").
			Return(usecase.TransitionResult{}, usecase.ErrInvalidTransition)

		w := doJSON(r, http.MethodPatch, "/v1/client-orders/4/status", `{"status":"pending"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientOrderUseCase(ctrl)
		r := newClientOrderRouter(NewClientOrderHandler(uc))

		w := doJSON(r, http.MethodPatch, "/v1/client-orders/4/status", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientOrderUseCase(ctrl)
		r := newClientOrderRouter(NewClientOrderHandler(uc))

		uc.EXPECT().ChangeClientOrderStatus(gomock.Any(), int64(4), entities.OrderStatusCompleted, "ops").
			Return(usecase.TransitionResult{Order: entities.ClientOrder{ID: 4, Status: entities.OrderStatusCompleted}, Changed: true}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/client-orders/4/status", `{"status":"Completed","actor":"ops"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
