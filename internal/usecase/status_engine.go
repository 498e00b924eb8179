package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"printhub/internal/domain/entities"
	"printhub/internal/domain/ordering"
	"printhub/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultActor = "system"

// TransitionResult is what a status change produced.
//
// Order is the mirror row when one exists after the change, otherwise the request in
// client order shape. Warnings lists follow-up writes that failed after the request
// itself was saved.
type TransitionResult struct {
	Order    entities.ClientOrder
	Request  entities.OrderRequest
	Changed  bool
	Warnings []PartialWriteWarning
}

// StatusEngine moves an order request through its lifecycle and keeps the
// client_orders mirror in step with it.
//
// The request table is the source of truth. The mirror write and the history
// appends run after it and are never rolled back; their failures are reported as
// warnings. Re-running a transition to the same status repairs a missing or stale
// mirror row.
type StatusEngine struct {
	requests interfaces.IOrderRequestRepository
	orders   interfaces.IClientOrderRepository
	history  interfaces.IStatusHistoryRepository
	now      func() time.Time
	log      *logrus.Entry
}

func NewStatusEngine(
	requests interfaces.IOrderRequestRepository,
	orders interfaces.IClientOrderRepository,
	history interfaces.IStatusHistoryRepository,
) *StatusEngine {
	return &StatusEngine{
		requests: requests,
		orders:   orders,
		history:  history,
		now:      func() time.Time { return time.Now().UTC() },
		log:      logrus.WithField("component", "status_engine"),
	}
}

// MirrorEnabled reports whether a client_orders table is wired in.
func (e *StatusEngine) MirrorEnabled() bool {
	return e.orders != nil
}

// Transition changes the status of the order request requestID to target.
func (e *StatusEngine) Transition(ctx context.Context, requestID int64, target entities.OrderStatus, actor string) (TransitionResult, error) {
	if requestID <= 0 {
		return TransitionResult{}, ErrInvalidRequestID
	}
	target, ok := normalizeTarget(target)
	if !ok {
		return TransitionResult{}, ErrInvalidStatus
	}
	actor = actorOrDefault(actor)

	req, err := e.requests.GetByID(ctx, requestID)
	if err != nil {
		return TransitionResult{}, backendErr("order_request.get", err)
	}
	if req.ID == 0 {
		if e.orders == nil {
			return TransitionResult{}, ErrOrderRequestNotFound
		}
		orphan, err := e.orders.GetByRequestID(ctx, requestID)
		if err != nil {
			return TransitionResult{}, backendErr("client_order.get_by_request", err)
		}
		if orphan.ID == 0 {
			return TransitionResult{}, ErrOrderRequestNotFound
		}
		return e.TransitionOrder(ctx, orphan, target, actor)
	}

	log := e.log.WithFields(logrus.Fields{"request_id": req.ID, "from": req.Status, "to": target})
	res := TransitionResult{Request: req}
	now := e.now()

	if !req.Status.Equivalent(target) {
		updated, err := e.requests.UpdateStatus(ctx, req.ID, target, now)
		if err != nil {
			log.WithError(err).Error("request status write failed")
			return TransitionResult{}, backendErr("order_request.update_status", err)
		}
		if updated.ID == 0 {
			return TransitionResult{}, ErrOrderRequestNotFound
		}
		updated.Items = req.Items
		res.Request = updated
		res.Changed = true
	}

	mirror, mirrorTouched := e.reconcileMirror(ctx, res.Request, now, &res)

	if res.Changed {
		e.appendHistory(ctx, &res, entities.HistorySubjectOrderRequest, res.Request.ID, target, actor, now, StepHistoryRequest)
		if mirrorTouched {
			e.appendHistory(ctx, &res, entities.HistorySubjectClientOrder, mirror.ID, target, actor, now, StepHistoryClientOrder)
		}
	}

	if mirror.ID != 0 && !target.IsPending() {
		res.Order = mirror
	} else {
		res.Order = ordering.RequestAsClientOrder(res.Request)
	}

	for _, w := range res.Warnings {
		log.WithError(w.Err).WithField("step", w.Step).Warn("partial write")
	}
	log.WithField("changed", res.Changed).Info("status transition applied")
	return res, nil
}

// TransitionOrder changes the status of a mirror row that has no order request
// behind it. Such rows cannot go back to pending.
func (e *StatusEngine) TransitionOrder(ctx context.Context, order entities.ClientOrder, target entities.OrderStatus, actor string) (TransitionResult, error) {
	if e.orders == nil {
		return TransitionResult{}, ErrClientOrderNotFound
	}
	target, ok := normalizeTarget(target)
	if !ok {
		return TransitionResult{}, ErrInvalidStatus
	}
	if target.IsPending() {
		return TransitionResult{}, fmt.Errorf("client order %d has no order request to return to: %w", order.ID, ErrInvalidTransition)
	}
	actor = actorOrDefault(actor)

	res := TransitionResult{Order: order}
	if order.Status == target {
		return res, nil
	}

	now := e.now()
	updated, err := e.orders.UpdateStatus(ctx, order.ID, target, now)
	if err != nil {
		return TransitionResult{}, backendErr("client_order.update_status", err)
	}
	if updated.ID == 0 {
		return TransitionResult{}, ErrClientOrderNotFound
	}
	res.Order = updated
	res.Changed = true
	e.appendHistory(ctx, &res, entities.HistorySubjectClientOrder, updated.ID, target, actor, now, StepHistoryClientOrder)

	e.log.WithFields(logrus.Fields{"order_id": order.ID, "from": order.Status, "to": target}).Info("orphan client order transitioned")
	return res, nil
}

// reconcileMirror makes the mirror row agree with req. It returns the mirror row as
// it stands afterwards (zero when there is none) and whether a row was written.
func (e *StatusEngine) reconcileMirror(ctx context.Context, req entities.OrderRequest, now time.Time, res *TransitionResult) (entities.ClientOrder, bool) {
	if e.orders == nil {
		return entities.ClientOrder{}, false
	}

	existing, err := e.orders.GetByRequestID(ctx, req.ID)
	if err != nil {
		step := StepMirrorUpsert
		if req.Status.IsPending() {
			step = StepMirrorDelete
		}
		res.Warnings = append(res.Warnings, PartialWriteWarning{Step: step, Err: err})
		return entities.ClientOrder{}, false
	}

	if req.Status.IsPending() {
		if existing.ID == 0 {
			return entities.ClientOrder{}, false
		}
		if err := e.orders.Delete(ctx, existing.ID); err != nil {
			res.Warnings = append(res.Warnings, PartialWriteWarning{Step: StepMirrorDelete, Err: err})
			return existing, false
		}
		return existing, true
	}

	if existing.ID != 0 {
		return e.moveMirror(ctx, existing, req.Status, now, res)
	}

	code := strings.TrimSpace(req.RequestCode)
	if code == "" {
		prefix := ordering.CodePrefix(ordering.OrderCodeKind, now.Year())
		codes, err := e.orders.ListCodes(ctx, prefix)
		if err != nil {
			res.Warnings = append(res.Warnings, PartialWriteWarning{Step: StepMirrorCode, Err: err})
			return entities.ClientOrder{}, false
		}
		code = ordering.NextCode(ordering.OrderCodeKind, now.Year(), codes)
	}

	created, err := e.orders.Create(ctx, ordering.NewMirrorRow(req, code, req.Status, now))
	if err != nil {
		res.Warnings = append(res.Warnings, PartialWriteWarning{Step: StepMirrorUpsert, Err: err})
		return entities.ClientOrder{}, false
	}
	// Create hands back the stored row when another write got there first.
	if created.Status != req.Status {
		return e.moveMirror(ctx, created, req.Status, now, res)
	}
	return created, true
}

func (e *StatusEngine) moveMirror(ctx context.Context, o entities.ClientOrder, status entities.OrderStatus, now time.Time, res *TransitionResult) (entities.ClientOrder, bool) {
	if o.Status == status {
		return o, false
	}
	updated, err := e.orders.UpdateStatus(ctx, o.ID, status, now)
	if err != nil {
		res.Warnings = append(res.Warnings, PartialWriteWarning{Step: StepMirrorUpsert, Err: err})
		return o, false
	}
	if updated.ID == 0 {
		res.Warnings = append(res.Warnings, PartialWriteWarning{Step: StepMirrorUpsert, Err: ErrClientOrderNotFound})
		return entities.ClientOrder{}, false
	}
	return updated, true
}

func (e *StatusEngine) appendHistory(
	ctx context.Context,
	res *TransitionResult,
	subject entities.HistorySubject,
	subjectID int64,
	status entities.OrderStatus,
	actor string,
	at time.Time,
	step string,
) {
	if e.history == nil || subjectID == 0 {
		return
	}
	entry := entities.StatusHistoryEntry{
		ID:          uuid.NewString(),
		SubjectType: subject,
		SubjectID:   subjectID,
		Status:      status,
		Actor:       actor,
		CreatedAt:   at,
	}
	if err := e.history.Append(ctx, entry); err != nil {
		res.Warnings = append(res.Warnings, PartialWriteWarning{Step: step, Err: err})
	}
}

func normalizeTarget(s entities.OrderStatus) (entities.OrderStatus, bool) {
	parsed, ok := entities.ParseOrderStatus(string(s))
	if !ok {
		return "", false
	}
	return parsed, true
}

func actorOrDefault(actor string) string {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return defaultActor
	}
	return actor
}
