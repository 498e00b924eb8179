package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"printhub/internal/domain/entities"
	"printhub/internal/domain/ordering"
	"printhub/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// OrderRequestInput carries the editable fields of an order request.
type OrderRequestInput struct {
	ClientID int64
	Date     time.Time
	Category string
	Notes    string
	Items    []entities.OrderRequestItem
	Actor    string
}

// IOrderRequestUseCase exposes the order request workflow.
type IOrderRequestUseCase interface {
	ListPendingRequests(ctx context.Context) ([]entities.OrderRequest, error)
	GetRequestByID(ctx context.Context, id int64) (entities.OrderRequest, error)
	CreateRequest(ctx context.Context, in OrderRequestInput) (entities.OrderRequest, error)
	UpdateRequest(ctx context.Context, id int64, in OrderRequestInput) (entities.OrderRequest, error)
	ChangeRequestStatus(ctx context.Context, id int64, status entities.OrderStatus, actor string) (TransitionResult, error)
	GenerateRequestCode(ctx context.Context) (string, error)
}

type OrderRequestUseCase struct {
	requests interfaces.IOrderRequestRepository
	history  interfaces.IStatusHistoryRepository
	seq      interfaces.ICodeSequence
	gate     eligibilityGate
	engine   *StatusEngine
	now      func() time.Time
	log      *logrus.Entry
}

var _ IOrderRequestUseCase = (*OrderRequestUseCase)(nil)

// NewOrderRequestUseCase wires the usecase. orders may be nil when the deployment
// has no client_orders table.
func NewOrderRequestUseCase(
	requests interfaces.IOrderRequestRepository,
	orders interfaces.IClientOrderRepository,
	clients interfaces.IClientRepository,
	history interfaces.IStatusHistoryRepository,
	seq interfaces.ICodeSequence,
	engine *StatusEngine,
) *OrderRequestUseCase {
	return &OrderRequestUseCase{
		requests: requests,
		history:  history,
		seq:      seq,
		gate:     eligibilityGate{clients: clients, requests: requests, orders: orders},
		engine:   engine,
		now:      func() time.Time { return time.Now().UTC() },
		log:      logrus.WithField("component", "order_request_usecase"),
	}
}

func (u *OrderRequestUseCase) ListPendingRequests(ctx context.Context) ([]entities.OrderRequest, error) {
	requests, err := u.requests.ListByStatuses(ctx, entities.PendingStatuses)
	if err != nil {
		return nil, backendErr("order_request.list", err)
	}
	if len(requests) == 0 {
		return []entities.OrderRequest{}, nil
	}

	ids := make([]int64, len(requests))
	for i, r := range requests {
		ids[i] = r.ID
	}
	items, err := u.requests.ListItems(ctx, ids)
	if err != nil {
		return nil, backendErr("order_request.list_items", err)
	}
	for i := range requests {
		requests[i].Items = items[requests[i].ID]
	}
	return requests, nil
}

func (u *OrderRequestUseCase) GetRequestByID(ctx context.Context, id int64) (entities.OrderRequest, error) {
	if id <= 0 {
		return entities.OrderRequest{}, ErrInvalidRequestID
	}
	r, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.OrderRequest{}, backendErr("order_request.get", err)
	}
	if r.ID == 0 {
		return entities.OrderRequest{}, ErrOrderRequestNotFound
	}
	return r, nil
}

// CreateRequest stores a new pending request with a freshly allocated code.
func (u *OrderRequestUseCase) CreateRequest(ctx context.Context, in OrderRequestInput) (entities.OrderRequest, error) {
	if in.ClientID <= 0 {
		return entities.OrderRequest{}, ErrInvalidClientID
	}
	if err := ordering.ValidateItems(in.Items); err != nil {
		return entities.OrderRequest{}, fmt.Errorf("%w: %w", ErrInvalidItems, err)
	}

	client, err := u.gate.check(ctx, in.ClientID, 0)
	if err != nil {
		return entities.OrderRequest{}, err
	}

	now := u.now()
	code, err := u.allocateCode(ctx, now.Year())
	if err != nil {
		return entities.OrderRequest{}, err
	}

	items, total := ordering.PriceItems(0, in.Items)
	r := entities.OrderRequest{
		RequestCode: code,
		ClientID:    client.ID,
		ClientName:  client.Name,
		Date:        dateOrToday(in.Date, now),
		Category:    strings.TrimSpace(in.Category),
		Status:      entities.OrderStatusPending,
		TotalAmount: total,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
		Items:       items,
	}

	created, err := u.requests.Create(ctx, r)
	if err != nil {
		return entities.OrderRequest{}, backendErr("order_request.create", err)
	}

	u.record(ctx, created.ID, created.Status, in.Actor, now)
	u.log.WithFields(logrus.Fields{"request_id": created.ID, "request_code": created.RequestCode}).Info("order request created")
	return created, nil
}

// UpdateRequest rewrites the header and replaces every item of a pending request.
func (u *OrderRequestUseCase) UpdateRequest(ctx context.Context, id int64, in OrderRequestInput) (entities.OrderRequest, error) {
	if id <= 0 {
		return entities.OrderRequest{}, ErrInvalidRequestID
	}
	if err := ordering.ValidateItems(in.Items); err != nil {
		return entities.OrderRequest{}, fmt.Errorf("%w: %w", ErrInvalidItems, err)
	}

	existing, err := u.GetRequestByID(ctx, id)
	if err != nil {
		return entities.OrderRequest{}, err
	}
	if !existing.Status.IsPending() {
		return entities.OrderRequest{}, ErrRequestNotEditable
	}

	var client entities.Client
	if in.ClientID != 0 && in.ClientID != existing.ClientID {
		client, err = u.gate.check(ctx, in.ClientID, existing.ID)
	} else {
		client, err = u.gate.active(ctx, existing.ClientID)
	}
	if err != nil {
		return entities.OrderRequest{}, err
	}
	existing.ClientID = client.ID
	existing.ClientName = client.Name

	now := u.now()
	items, total := ordering.PriceItems(existing.ID, in.Items)
	if !in.Date.IsZero() {
		existing.Date = in.Date
	}
	existing.Category = strings.TrimSpace(in.Category)
	existing.Notes = strings.TrimSpace(in.Notes)
	existing.Items = items
	existing.TotalAmount = total
	existing.UpdatedAt = now

	updated, err := u.requests.Update(ctx, existing)
	if errors.Is(err, interfaces.ErrRequestNotPending) {
		return entities.OrderRequest{}, ErrRequestNotEditable
	}
	if err != nil {
		return entities.OrderRequest{}, backendErr("order_request.update", err)
	}
	if updated.ID == 0 {
		return entities.OrderRequest{}, ErrOrderRequestNotFound
	}
	return updated, nil
}

func (u *OrderRequestUseCase) ChangeRequestStatus(ctx context.Context, id int64, status entities.OrderStatus, actor string) (TransitionResult, error) {
	return u.engine.Transition(ctx, id, status, actor)
}

// GenerateRequestCode previews the next request code for the current year. It does
// not reserve anything: two previews before a write return the same code.
func (u *OrderRequestUseCase) GenerateRequestCode(ctx context.Context) (string, error) {
	year := u.now().Year()
	codes, err := u.requests.ListCodes(ctx, ordering.CodePrefix(ordering.RequestCodeKind, year))
	if err != nil {
		return "", backendErr("order_request.list_codes", err)
	}
	return ordering.NextCode(ordering.RequestCodeKind, year, codes), nil
}

// allocateCode advances the per-year sequence, seeding it from the highest code
// already stored so legacy rows are never reused.
func (u *OrderRequestUseCase) allocateCode(ctx context.Context, year int) (string, error) {
	prefix := ordering.CodePrefix(ordering.RequestCodeKind, year)
	codes, err := u.requests.ListCodes(ctx, prefix)
	if err != nil {
		return "", backendErr("order_request.list_codes", err)
	}
	seq, err := u.seq.Advance(ctx, strings.TrimSuffix(prefix, "-"), ordering.MaxCodeSeq(codes, prefix))
	if err != nil {
		return "", backendErr("code_sequence.advance", err)
	}
	return ordering.FormatCode(ordering.RequestCodeKind, year, seq), nil
}

func (u *OrderRequestUseCase) record(ctx context.Context, requestID int64, status entities.OrderStatus, actor string, at time.Time) {
	if u.history == nil {
		return
	}
	err := u.history.Append(ctx, entities.StatusHistoryEntry{
		ID:          uuid.NewString(),
		SubjectType: entities.HistorySubjectOrderRequest,
		SubjectID:   requestID,
		Status:      status,
		Actor:       actorOrDefault(actor),
		Notes:       "created",
		CreatedAt:   at,
	})
	if err != nil {
		u.log.WithError(err).WithField("request_id", requestID).Warn("history append failed")
	}
}

func dateOrToday(d, now time.Time) time.Time {
	if d.IsZero() {
		y, m, day := now.Date()
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}
	return d
}
