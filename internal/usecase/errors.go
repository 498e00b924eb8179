package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrOrderRequestNotFound = fmt.Errorf("order request %w", ErrNotFound)
	ErrClientOrderNotFound  = fmt.Errorf("client order %w", ErrNotFound)
	ErrClientNotFound       = fmt.Errorf("client %w", ErrNotFound)

	ErrInvalidTransition  = errors.New("invalid transition")
	ErrRequestNotEditable = fmt.Errorf("order request is no longer pending: %w", ErrInvalidTransition)

	ErrValidation       = errors.New("validation failed")
	ErrInvalidRequestID = fmt.Errorf("%w: invalid order request id", ErrValidation)
	ErrInvalidOrderID   = fmt.Errorf("%w: invalid client order id", ErrValidation)
	ErrInvalidClientID  = fmt.Errorf("%w: invalid client id", ErrValidation)
	ErrInvalidStatus    = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrInvalidItems     = fmt.Errorf("%w: invalid items", ErrValidation)

	ErrBackendUnavailable = errors.New("backend unavailable")
)

// BackendError wraps a store failure with the operation that produced it.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v: %v", ErrBackendUnavailable, e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func (e *BackendError) Is(target error) bool {
	return target == ErrBackendUnavailable
}

func backendErr(op string, err error) error {
	return &BackendError{Op: op, Err: err}
}

// PartialWriteWarning reports a follow-up write that failed after the primary write
// was committed. The primary write is not rolled back.
type PartialWriteWarning struct {
	Step string
	Err  error
}

func (w PartialWriteWarning) Error() string {
	return fmt.Sprintf("partial write at %s: %v", w.Step, w.Err)
}

func (w PartialWriteWarning) Unwrap() error {
	return w.Err
}

const (
	StepMirrorUpsert       = "client_order.upsert"
	StepMirrorDelete       = "client_order.delete"
	StepMirrorCode         = "client_order.code"
	StepHistoryRequest     = "history.order_request"
	StepHistoryClientOrder = "history.client_order"
)
