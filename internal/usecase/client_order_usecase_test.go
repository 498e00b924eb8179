package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"printhub/internal/domain/entities"
	mock_interfaces "printhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestClientOrderUseCase(t *testing.T, withMirror bool) (*ClientOrderUseCase, engineMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := engineMocks{
		requests: mock_interfaces.NewMockIOrderRequestRepository(ctrl),
		history:  mock_interfaces.NewMockIStatusHistoryRepository(ctrl),
	}
	var uc *ClientOrderUseCase
	if withMirror {
		m.orders = mock_interfaces.NewMockIClientOrderRepository(ctrl)
		engine := NewStatusEngine(m.requests, m.orders, m.history)
		engine.now = func() time.Time { return fixedNow }
		uc = NewClientOrderUseCase(m.requests, m.orders, engine)
	} else {
		engine := NewStatusEngine(m.requests, nil, m.history)
		engine.now = func() time.Time { return fixedNow }
		uc = NewClientOrderUseCase(m.requests, nil, engine)
	}
	return uc, m
}

func TestClientOrderUseCase_ListClientOrders(t *testing.T) {
	t.Run("merges mirror and requests without duplicates", func(t *testing.T) {
		uc, m := newTestClientOrderUseCase(t, true)
		req1 := int64(1)
		m.orders.EXPECT().List(gomock.Any(), entities.PromotedStatuses).Return([]entities.ClientOrder{
			{ID: 10, OrderCode: "REQ-2024-00001", OrderRequestID: &req1, Status: entities.OrderStatusApproved, ItemCount: 9},
		}, nil)
		m.requests.EXPECT().ListByStatuses(gomock.Any(), entities.PromotedStatuses).Return([]entities.OrderRequest{
			{ID: 1, RequestCode: "REQ-2024-00001", Status: entities.OrderStatusApproved},
			{ID: 2, RequestCode: "REQ-2024-00002", Status: entities.OrderStatusCompleted},
		}, nil)
		m.requests.EXPECT().CountItems(gomock.Any(), []int64{1, 2}).Return(map[int64]int{1: 2, 2: 3}, nil)

		got, err := uc.ListClientOrders(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 orders, got %+v", got)
		}
		if got[0].ID != 10 || got[0].ItemCount != 2 || got[0].Source != entities.ClientOrderSourceMirror {
			t.Fatalf("unexpected mirror row: %+v", got[0])
		}
		if got[1].ID != 2 || got[1].ItemCount != 3 || got[1].Source != entities.ClientOrderSourceRequest {
			t.Fatalf("unexpected request row: %+v", got[1])
		}
	})

	t.Run("without mirror table", func(t *testing.T) {
		uc, m := newTestClientOrderUseCase(t, false)
		approved := []entities.OrderStatus{entities.OrderStatusApproved}
		m.requests.EXPECT().ListByStatuses(gomock.Any(), approved).Return([]entities.OrderRequest{
			{ID: 5, RequestCode: "REQ-2024-00005", Status: entities.OrderStatusApproved},
		}, nil)
		m.requests.EXPECT().CountItems(gomock.Any(), []int64{5}).Return(map[int64]int{5: 1}, nil)

		got, err := uc.ListClientOrders(context.Background(), "APPROVED")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].OrderCode != "REQ-2024-00005" || got[0].ItemCount != 1 {
			t.Fatalf("unexpected orders: %+v", got)
		}
	})

	t.Run("pending filter yields nothing", func(t *testing.T) {
		uc, _ := newTestClientOrderUseCase(t, true)
		got, err := uc.ListClientOrders(context.Background(), entities.OrderStatusNew)
		if err != nil || len(got) != 0 {
			t.Fatalf("expected empty list, got %v %v", got, err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc, _ := newTestClientOrderUseCase(t, true)
		if _, err := uc.ListClientOrders(context.Background(), "shipped"); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("mirror failure", func(t *testing.T) {
		uc, m := newTestClientOrderUseCase(t, true)
		m.orders.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
		if _, err := uc.ListClientOrders(context.Background(), ""); !errors.Is(err, ErrBackendUnavailable) {
			t.Fatalf("expected ErrBackendUnavailable, got %v", err)
		}
	})
}

func TestClientOrderUseCase_GetClientOrderByID(t *testing.T) {
	t.Run("mirror row with items", func(t *testing.T) {
		uc, m := newTestClientOrderUseCase(t, true)
		reqID := int64(7)
		m.orders.EXPECT().GetByID(gomock.Any(), int64(10)).Return(entities.ClientOrder{ID: 10, OrderRequestID: &reqID}, nil)
		m.requests.EXPECT().ListItems(gomock.Any(), []int64{7}).Return(map[int64][]entities.OrderRequestItem{
			7: {{LineNo: 1}, {LineNo: 2}},
		}, nil)

		got, err := uc.GetClientOrderByID(context.Background(), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Items) != 2 || got.ItemCount != 2 || got.Source != entities.ClientOrderSourceMirror {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("falls back to promoted request", func(t *testing.T) {
		uc, m := newTestClientOrderUseCase(t, true)
		m.orders.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.ClientOrder{}, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.OrderRequest{
			ID: 7, RequestCode: "REQ-2024-00007", Status: entities.OrderStatusCompleted,
			Items: []entities.OrderRequestItem{{LineNo: 1}},
		}, nil)

		got, err := uc.GetClientOrderByID(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Source != entities.ClientOrderSourceRequest || len(got.Items) != 1 {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("pending request is not a client order", func(t *testing.T) {
		uc, m := newTestClientOrderUseCase(t, false)
		m.requests.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.OrderRequest{ID: 7, Status: entities.OrderStatusPending}, nil)

		if _, err := uc.GetClientOrderByID(context.Background(), 7); !errors.Is(err, ErrClientOrderNotFound) {
			t.Fatalf("expected ErrClientOrderNotFound, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newTestClientOrderUseCase(t, true)
		if _, err := uc.GetClientOrderByID(context.Background(), 0); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})
}

func TestClientOrderUseCase_ChangeClientOrderStatus(t *testing.T) {
	t.Run("routes through the source request", func(t *testing.T) {
		uc, m := newTestClientOrderUseCase(t, true)
		reqID := int64(7)
		mirror := entities.ClientOrder{ID: 10, OrderRequestID: &reqID, Status: entities.OrderStatusApproved}
		req := entities.OrderRequest{ID: 7, RequestCode: "REQ-2024-00007", Status: entities.OrderStatusApproved}
		done := mirror
		done.Status = entities.OrderStatusCompleted

		m.orders.EXPECT().GetByID(gomock.Any(), int64(10)).Return(mirror, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), int64(7)).Return(req, nil)
		m.requests.EXPECT().UpdateStatus(gomock.Any(), int64(7), entities.OrderStatusCompleted, fixedNow).
			Return(withStatus(req, entities.OrderStatusCompleted), nil)
		m.orders.EXPECT().GetByRequestID(gomock.Any(), int64(7)).Return(mirror, nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), int64(10), entities.OrderStatusCompleted, fixedNow).Return(done, nil)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		res, err := uc.ChangeClientOrderStatus(context.Background(), 10, entities.OrderStatusCompleted, "ana")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.ID != 10 || res.Order.Status != entities.OrderStatusCompleted || res.Request.Status != entities.OrderStatusCompleted {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("mirror row without request", func(t *testing.T) {
		uc, m := newTestClientOrderUseCase(t, true)
		orphan := entities.ClientOrder{ID: 10, Status: entities.OrderStatusApproved}
		rejected := orphan
		rejected.Status = entities.OrderStatusRejected

		m.orders.EXPECT().GetByID(gomock.Any(), int64(10)).Return(orphan, nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), int64(10), entities.OrderStatusRejected, fixedNow).Return(rejected, nil)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.ChangeClientOrderStatus(context.Background(), 10, entities.OrderStatusRejected, "ana")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.Status != entities.OrderStatusRejected {
			t.Fatalf("unexpected order: %+v", res.Order)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newTestClientOrderUseCase(t, true)
		m.orders.EXPECT().GetByID(gomock.Any(), int64(10)).Return(entities.ClientOrder{}, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), int64(10)).Return(entities.OrderRequest{}, nil)

		if _, err := uc.ChangeClientOrderStatus(context.Background(), 10, entities.OrderStatusRejected, "ana"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
