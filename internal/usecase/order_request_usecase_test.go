package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"printhub/internal/domain/entities"
	"printhub/internal/domain/ordering"
	"printhub/internal/usecase/interfaces"
	mock_interfaces "printhub/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type requestMocks struct {
	requests *mock_interfaces.MockIOrderRequestRepository
	orders   *mock_interfaces.MockIClientOrderRepository
	clients  *mock_interfaces.MockIClientRepository
	history  *mock_interfaces.MockIStatusHistoryRepository
	seq      *mock_interfaces.MockICodeSequence
}

func newTestOrderRequestUseCase(t *testing.T) (*OrderRequestUseCase, requestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := requestMocks{
		requests: mock_interfaces.NewMockIOrderRequestRepository(ctrl),
		orders:   mock_interfaces.NewMockIClientOrderRepository(ctrl),
		clients:  mock_interfaces.NewMockIClientRepository(ctrl),
		history:  mock_interfaces.NewMockIStatusHistoryRepository(ctrl),
		seq:      mock_interfaces.NewMockICodeSequence(ctrl),
	}
	engine := NewStatusEngine(m.requests, m.orders, m.history)
	engine.now = func() time.Time { return fixedNow }
	uc := NewOrderRequestUseCase(m.requests, m.orders, m.clients, m.history, m.seq, engine)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func sampleInput() OrderRequestInput {
	return OrderRequestInput{
		ClientID: 3,
		Category: " stationery ",
		Items: []entities.OrderRequestItem{
			{ProductID: 10, ProductName: "Invoice book", Quantity: 3, UnitPrice: decimal.NewFromInt(1000)},
			{ProductID: -1, ProductName: "Custom stamp", Quantity: 1, UnitPrice: decimal.NewFromInt(500)},
		},
		Actor: "ana",
	}
}

func expectEligible(m requestMocks, client entities.Client, requests []entities.OrderRequest, orders []entities.ClientOrder) {
	m.clients.EXPECT().GetByID(gomock.Any(), client.ID).Return(client, nil)
	m.requests.EXPECT().ListByStatuses(gomock.Any(), inFlightRequestStatuses).Return(requests, nil)
	m.orders.EXPECT().List(gomock.Any(), []entities.OrderStatus{entities.OrderStatusApproved}).Return(orders, nil)
}

func TestOrderRequestUseCase_CreateRequest(t *testing.T) {
	active := entities.Client{ID: 3, Name: "Gráfica Sol", Status: entities.ClientStatusActive}

	t.Run("prices items and allocates the next code", func(t *testing.T) {
		uc, m := newTestOrderRequestUseCase(t)
		expectEligible(m, active, nil, nil)
		m.requests.EXPECT().ListCodes(gomock.Any(), "REQ-2024-").Return([]string{"REQ-2024-00006", "REQ-2024-00002"}, nil)
		m.seq.EXPECT().Advance(gomock.Any(), "REQ-2024", 6).Return(7, nil)
		m.requests.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderRequest{})).DoAndReturn(
			func(_ context.Context, r entities.OrderRequest) (entities.OrderRequest, error) {
				if r.RequestCode != "REQ-2024-00007" {
					t.Fatalf("expected REQ-2024-00007, got %s", r.RequestCode)
				}
				if !r.TotalAmount.Equal(decimal.NewFromInt(3500)) {
					t.Fatalf("expected total 3500, got %s", r.TotalAmount)
				}
				if r.Status != entities.OrderStatusPending || r.ClientName != "Gráfica Sol" || r.Category != "stationery" {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.Date != time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC) {
					t.Fatalf("expected today's date, got %v", r.Date)
				}
				if len(r.Items) != 2 || r.Items[1].LineNo != 2 || !r.Items[0].TotalPrice.Equal(decimal.NewFromInt(3000)) {
					t.Fatalf("unexpected items: %+v", r.Items)
				}
				r.ID = 7
				return r, nil
			},
		)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.StatusHistoryEntry) error {
				if h.SubjectID != 7 || h.Status != entities.OrderStatusPending || h.Actor != "ana" {
					t.Fatalf("unexpected history: %+v", h)
				}
				return nil
			},
		)

		got, err := uc.CreateRequest(context.Background(), sampleInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != 7 {
			t.Fatalf("unexpected request: %+v", got)
		}
	})

	t.Run("history failure does not fail the create", func(t *testing.T) {
		uc, m := newTestOrderRequestUseCase(t)
		expectEligible(m, active, nil, nil)
		m.requests.EXPECT().ListCodes(gomock.Any(), "REQ-2024-").Return(nil, nil)
		m.seq.EXPECT().Advance(gomock.Any(), "REQ-2024", 0).Return(1, nil)
		m.requests.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.OrderRequest) (entities.OrderRequest, error) {
				r.ID = 1
				return r, nil
			},
		)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("down"))

		got, err := uc.CreateRequest(context.Background(), sampleInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.RequestCode != "REQ-2024-00001" {
			t.Fatalf("expected first code of the year, got %s", got.RequestCode)
		}
	})

	t.Run("inactive client", func(t *testing.T) {
		uc, m := newTestOrderRequestUseCase(t)
		inactive := active
		inactive.Status = entities.ClientStatusInactive
		m.clients.EXPECT().GetByID(gomock.Any(), int64(3)).Return(inactive, nil)

		_, err := uc.CreateRequest(context.Background(), sampleInput())
		if !errors.Is(err, ErrInvalidTransition) || !errors.Is(err, ordering.ErrClientInactive) {
			t.Fatalf("expected inactive client transition error, got %v", err)
		}
	})

	t.Run("client already in flight", func(t *testing.T) {
		uc, m := newTestOrderRequestUseCase(t)
		expectEligible(m, active, nil, []entities.ClientOrder{{ID: 40, ClientID: 3, Status: entities.OrderStatusApproved}})

		_, err := uc.CreateRequest(context.Background(), sampleInput())
		if !errors.Is(err, ErrInvalidTransition) || !errors.Is(err, ordering.ErrClientInFlight) {
			t.Fatalf("expected in-flight transition error, got %v", err)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		uc, m := newTestOrderRequestUseCase(t)
		m.clients.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Client{}, nil)

		if _, err := uc.CreateRequest(context.Background(), sampleInput()); !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("invalid items", func(t *testing.T) {
		uc, _ := newTestOrderRequestUseCase(t)
		in := sampleInput()
		in.Items[0].Quantity = 0

		_, err := uc.CreateRequest(context.Background(), in)
		if !errors.Is(err, ErrInvalidItems) || !errors.Is(err, ErrValidation) || !errors.Is(err, ordering.ErrInvalidQuantity) {
			t.Fatalf("expected invalid items error, got %v", err)
		}
	})

	t.Run("missing client id", func(t *testing.T) {
		uc, _ := newTestOrderRequestUseCase(t)
		in := sampleInput()
		in.ClientID = 0
		if _, err := uc.CreateRequest(context.Background(), in); !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("sequence failure", func(t *testing.T) {
		uc, m := newTestOrderRequestUseCase(t)
		expectEligible(m, active, nil, nil)
		m.requests.EXPECT().ListCodes(gomock.Any(), "REQ-2024-").Return(nil, nil)
		m.seq.EXPECT().Advance(gomock.Any(), "REQ-2024", 0).Return(0, errors.New("conditional check failed"))

		if _, err := uc.CreateRequest(context.Background(), sampleInput()); !errors.Is(err, ErrBackendUnavailable) {
			t.Fatalf("expected ErrBackendUnavailable, got %v", err)
		}
	})
}

func TestOrderRequestUseCase_UpdateRequest(t *testing.T) {
	existing := entities.OrderRequest{
		ID:          7,
		RequestCode: "REQ-2024-00007",
		ClientID:    3,
		ClientName:  "Gráfica Sol",
		Status:      entities.OrderStatusNew,
		TotalAmount: decimal.NewFromInt(99),
	}

	active := entities.Client{ID: 3, Name: "Gráfica Sol", Status: entities.ClientStatusActive}

	t.Run("replaces items and recomputes total", func(t *testing.T) {
		uc, m := newTestOrderRequestUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), int64(7)).Return(existing, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), int64(3)).Return(active, nil)
		m.requests.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.OrderRequest) (entities.OrderRequest, error) {
				if !r.TotalAmount.Equal(decimal.NewFromInt(3500)) || len(r.Items) != 2 {
					t.Fatalf("unexpected update: %+v", r)
				}
				if r.Items[0].RequestID != 7 || r.UpdatedAt != fixedNow || r.RequestCode != "REQ-2024-00007" {
					t.Fatalf("unexpected update: %+v", r)
				}
				return r, nil
			},
		)

		got, err := uc.UpdateRequest(context.Background(), 7, sampleInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ClientID != 3 {
			t.Fatalf("unexpected client: %+v", got)
		}
	})

	t.Run("changing client re-checks eligibility excluding itself", func(t *testing.T) {
		uc, m := newTestOrderRequestUseCase(t)
		other := entities.Client{ID: 4, Name: "Tipografia Lua", Status: entities.ClientStatusActive}
		in := sampleInput()
		in.ClientID = 4

		m.requests.EXPECT().GetByID(gomock.Any(), int64(7)).Return(existing, nil)
		expectEligible(m, other, []entities.OrderRequest{{ID: 7, ClientID: 4, Status: entities.OrderStatusPending}}, nil)
		m.requests.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.OrderRequest) (entities.OrderRequest, error) {
				return r, nil
			},
		)

		got, err := uc.UpdateRequest(context.Background(), 7, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ClientID != 4 || got.ClientName != "Tipografia Lua" {
			t.Fatalf("expected client change, got %+v", got)
		}
	})

	t.Run("inactive client blocks item edits", func(t *testing.T) {
		uc, m := newTestOrderRequestUseCase(t)
		inactive := active
		inactive.Status = entities.ClientStatusInactive
		m.requests.EXPECT().GetByID(gomock.Any(), int64(7)).Return(existing, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), int64(3)).Return(inactive, nil)

		_, err := uc.UpdateRequest(context.Background(), 7, sampleInput())
		if !errors.Is(err, ErrInvalidTransition) || !errors.Is(err, ordering.ErrClientInactive) {
			t.Fatalf("expected ErrClientInactive, got %v", err)
		}
	})

	t.Run("request promoted after read is not editable", func(t *testing.T) {
		uc, m := newTestOrderRequestUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), int64(7)).Return(existing, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), int64(3)).Return(active, nil)
		m.requests.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.OrderRequest{}, interfaces.ErrRequestNotPending)

		_, err := uc.UpdateRequest(context.Background(), 7, sampleInput())
		if !errors.Is(err, ErrRequestNotEditable) || errors.Is(err, ErrBackendUnavailable) {
			t.Fatalf("expected ErrRequestNotEditable, got %v", err)
		}
	})

	t.Run("promoted request is not editable", func(t *testing.T) {
		uc, m := newTestOrderRequestUseCase(t)
		approved := existing
		approved.Status = entities.OrderStatusApproved
		m.requests.EXPECT().GetByID(gomock.Any(), int64(7)).Return(approved, nil)

		_, err := uc.UpdateRequest(context.Background(), 7, sampleInput())
		if !errors.Is(err, ErrRequestNotEditable) || !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrRequestNotEditable, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newTestOrderRequestUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.OrderRequest{}, nil)

		if _, err := uc.UpdateRequest(context.Background(), 7, sampleInput()); !errors.Is(err, ErrOrderRequestNotFound) {
			t.Fatalf("expected ErrOrderRequestNotFound, got %v", err)
		}
	})
}

func TestOrderRequestUseCase_ListPendingRequests(t *testing.T) {
	t.Run("items loaded in one batch", func(t *testing.T) {
		uc, m := newTestOrderRequestUseCase(t)
		m.requests.EXPECT().ListByStatuses(gomock.Any(), entities.PendingStatuses).Return([]entities.OrderRequest{
			{ID: 1, Status: entities.OrderStatusPending},
			{ID: 2, Status: entities.OrderStatusNew},
		}, nil)
		m.requests.EXPECT().ListItems(gomock.Any(), []int64{1, 2}).Return(map[int64][]entities.OrderRequestItem{
			1: {{RequestID: 1, LineNo: 1}, {RequestID: 1, LineNo: 2}},
		}, nil)

		got, err := uc.ListPendingRequests(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || len(got[0].Items) != 2 || len(got[1].Items) != 0 {
			t.Fatalf("unexpected requests: %+v", got)
		}
	})

	t.Run("empty skips item query", func(t *testing.T) {
		uc, m := newTestOrderRequestUseCase(t)
		m.requests.EXPECT().ListByStatuses(gomock.Any(), entities.PendingStatuses).Return(nil, nil)

		got, err := uc.ListPendingRequests(context.Background())
		if err != nil || got == nil || len(got) != 0 {
			t.Fatalf("expected empty list, got %v %v", got, err)
		}
	})

	t.Run("backend failure", func(t *testing.T) {
		uc, m := newTestOrderRequestUseCase(t)
		m.requests.EXPECT().ListByStatuses(gomock.Any(), entities.PendingStatuses).Return(nil, errors.New("timeout"))

		if _, err := uc.ListPendingRequests(context.Background()); !errors.Is(err, ErrBackendUnavailable) {
			t.Fatalf("expected ErrBackendUnavailable, got %v", err)
		}
	})
}

func TestOrderRequestUseCase_GenerateRequestCode(t *testing.T) {
	uc, m := newTestOrderRequestUseCase(t)
	m.requests.EXPECT().ListCodes(gomock.Any(), "REQ-2024-").Return([]string{"REQ-2024-00006"}, nil).Times(2)

	first, err := uc.GenerateRequestCode(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.GenerateRequestCode(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != "REQ-2024-00007" || second != first {
		t.Fatalf("expected two identical previews REQ-2024-00007, got %s and %s", first, second)
	}
}

func TestOrderRequestUseCase_GetRequestByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newTestOrderRequestUseCase(t)
		if _, err := uc.GetRequestByID(context.Background(), -1); !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("backend failure", func(t *testing.T) {
		uc, m := newTestOrderRequestUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.OrderRequest{}, errors.New("timeout"))
		if _, err := uc.GetRequestByID(context.Background(), 7); !errors.Is(err, ErrBackendUnavailable) {
			t.Fatalf("expected ErrBackendUnavailable, got %v", err)
		}
	})
}
