package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"printhub/internal/adapter/http/handlers/mocks"
	"printhub/internal/domain/entities"
	"printhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newOrderRequestRouter(h *OrderRequestHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/order-requests", h.ListPending)
	r.POST("/v1/order-requests", h.Create)
	r.GET("/v1/order-requests/next-code", h.NextCode)
	r.GET("/v1/order-requests/:id", h.GetByID)
	r.PUT("/v1/order-requests/:id", h.Update)
	r.PATCH("/v1/order-requests/:id/status", h.ChangeStatus)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	code, _ := body["code"].(string)
	return code
}

func TestOrderRequestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderRequestUseCase(ctrl)
		r := newOrderRequestRouter(NewOrderRequestHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/order-requests", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderRequestUseCase(ctrl)
		r := newOrderRequestRouter(NewOrderRequestHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/order-requests", `{"client_id":4,"date":"15/03/2024"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("client in flight maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderRequestUseCase(ctrl)
		r := newOrderRequestRouter(NewOrderRequestHandler(uc))

		uc.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
			Return(entities.OrderRequest{}, fmt.Errorf("%w: client has an order in flight", usecase.ErrInvalidTransition))

		w := doJSON(r, http.MethodPost, "/v1/order-requests", `{"client_id":4,"items":[{"product_id":1,"product_name":"Flyer","quantity":1,"unit_price":"10"}]}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if got := errorCode(t, w); got != "INVALID_TRANSITION" {
			t.Fatalf("expected INVALID_TRANSITION, got %q", got)
		}
	})

	t.Run("invalid items maps to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderRequestUseCase(ctrl)
		r := newOrderRequestRouter(NewOrderRequestHandler(uc))

		uc.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(entities.OrderRequest{}, usecase.ErrInvalidItems)

		w := doJSON(r, http.MethodPost, "/v1/order-requests", `{"client_id":4,"items":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := errorCode(t, w); got != "INVALID_ITEMS" {
			t.Fatalf("expected INVALID_ITEMS, got %q", got)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderRequestUseCase(ctrl)
		r := newOrderRequestRouter(NewOrderRequestHandler(uc))

		uc.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.OrderRequestInput) (entities.OrderRequest, error) {
				if in.ClientID != 4 || len(in.Items) != 2 || in.Items[0].Quantity != 3 {
					t.Fatalf("unexpected input: %+v", in)
				}
				if !in.Date.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected date: %v", in.Date)
				}
				return entities.OrderRequest{
					ID:          11,
					RequestCode: "REQ-2024-00007",
					ClientID:    4,
					Date:        in.Date,
					Status:      entities.OrderStatusPending,
					TotalAmount: decimal.NewFromInt(3500),
				}, nil
			})

		body := `{"client_id":4,"date":"2024-03-15","items":[` +
			`{"product_id":1,"product_name":"Flyer","quantity":3,"unit_price":1000},` +
			`{"product_id":-1,"product_name":"Custom","quantity":1,"unit_price":"500"}]}`
		w := doJSON(r, http.MethodPost, "/v1/order-requests", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["request_code"] != "REQ-2024-00007" || resp["total_amount"] != "3500" || resp["date"] != "2024-03-15" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestOrderRequestHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderRequestUseCase(ctrl)
		r := newOrderRequestRouter(NewOrderRequestHandler(uc))

		w := doJSON(r, http.MethodGet, "/v1/order-requests/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderRequestUseCase(ctrl)
		r := newOrderRequestRouter(NewOrderRequestHandler(uc))

		uc.EXPECT().GetRequestByID(gomock.Any(), int64(99)).Return(entities.OrderRequest{}, usecase.ErrOrderRequestNotFound)

		w := doJSON(r, http.MethodGet, "/v1/order-requests/99", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("backend unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderRequestUseCase(ctrl)
		r := newOrderRequestRouter(NewOrderRequestHandler(uc))

		uc.EXPECT().GetRequestByID(gomock.Any(), int64(5)).
			Return(entities.OrderRequest{}, &usecase.BackendError{Op: "order_request.get", Err: fmt.Errorf("timeout")})

		w := doJSON(r, http.MethodGet, "/v1/order-requests/5", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("timeout")) {
			t.Fatalf("cause leaked into response: %s", w.Body.String())
		}
	})
}

func TestOrderRequestHandler_ListAndNextCode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrderRequestUseCase(ctrl)
	r := newOrderRequestRouter(NewOrderRequestHandler(uc))

	uc.EXPECT().ListPendingRequests(gomock.Any()).Return([]entities.OrderRequest{
		{ID: 1, Status: entities.OrderStatusNew, Items: []entities.OrderRequestItem{{ID: 1, Quantity: 2}}},
		{ID: 2, Status: entities.OrderStatusPending},
	}, nil)
	uc.EXPECT().GenerateRequestCode(gomock.Any()).Return("REQ-2024-00007", nil)

	w := doJSON(r, http.MethodGet, "/v1/order-requests", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 2 || len(list[0]["items"].([]any)) != 1 {
		t.Fatalf("unexpected list body: %s", w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/v1/order-requests/next-code", "")
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"REQ-2024-00007"`)) {
		t.Fatalf("unexpected next-code response %d: %s", w.Code, w.Body.String())
	}
}

func TestOrderRequestHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrderRequestUseCase(ctrl)
	r := newOrderRequestRouter(NewOrderRequestHandler(uc))

	uc.EXPECT().UpdateRequest(gomock.Any(), int64(3), gomock.Any()).Return(entities.OrderRequest{}, usecase.ErrRequestNotEditable)

	w := doJSON(r, http.MethodPut, "/v1/order-requests/3", `{"items":[{"product_id":1,"product_name":"Flyer","quantity":1,"unit_price":1}]}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestOrderRequestHandler_ChangeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderRequestUseCase(ctrl)
		r := newOrderRequestRouter(NewOrderRequestHandler(uc))

		w := doJSON(r, http.MethodPatch, "/v1/order-requests/7/status", `{"status":"shipped"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := errorCode(t, w); got != "INVALID_STATUS" {
			t.Fatalf("expected INVALID_STATUS, got %q", got)
		}
	})

	t.Run("legacy alias is normalized and warnings are returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderRequestUseCase(ctrl)
		r := newOrderRequestRouter(NewOrderRequestHandler(uc))

		reqID := int64(7)
		uc.EXPECT().ChangeRequestStatus(gomock.Any(), int64(7), entities.OrderStatusPending, "maria").Return(usecase.TransitionResult{
			Order:    entities.ClientOrder{OrderCode: "REQ-2024-00007", Status: entities.OrderStatusPending, OrderRequestID: &reqID, Source: entities.ClientOrderSourceRequest},
			Request:  entities.OrderRequest{ID: 7, Status: entities.OrderStatusPending},
			Changed:  true,
			Warnings: []usecase.PartialWriteWarning{{Step: usecase.StepMirrorDelete, Err: fmt.Errorf("throttled")}},
		}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/order-requests/7/status", `{"status":"NEW","actor":"maria"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Changed  bool `json:"changed"`
			Warnings []struct {
				Step string `json:"step"`
			} `json:"warnings"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if !body.Changed || len(body.Warnings) != 1 || body.Warnings[0].Step != usecase.StepMirrorDelete {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
