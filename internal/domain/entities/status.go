package entities

import "strings"

// OrderStatus is the lifecycle status shared by order requests and client orders.
//
// Lifecycle:
//   - Pending (legacy: New): still editable, lives only in order_requests.
//   - Approved / Rejected / Completed: promoted, mirrored into client_orders.
//
// "New" predates "Pending" and may still be stored on old rows. Input parsing maps it to
// Pending; pending filters match both values.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "New"
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusApproved  OrderStatus = "Approved"
	OrderStatusRejected  OrderStatus = "Rejected"
	OrderStatusCompleted OrderStatus = "Completed"
)

// PendingStatuses are the stored values that mean "still editable".
var PendingStatuses = []OrderStatus{OrderStatusPending, OrderStatusNew}

// PromotedStatuses are the stored values that require a mirror row.
var PromotedStatuses = []OrderStatus{OrderStatusApproved, OrderStatusRejected, OrderStatusCompleted}

// ParseOrderStatus accepts any casing and the legacy "New" alias.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "new", "pending":
		return OrderStatusPending, true
	case "approved":
		return OrderStatusApproved, true
	case "rejected":
		return OrderStatusRejected, true
	case "completed":
		return OrderStatusCompleted, true
	}
	return "", false
}

func (s OrderStatus) IsPending() bool {
	return s == OrderStatusPending || s == OrderStatusNew
}

func (s OrderStatus) IsPromoted() bool {
	switch s {
	case OrderStatusApproved, OrderStatusRejected, OrderStatusCompleted:
		return true
	}
	return false
}

// Equivalent treats New and Pending as the same status.
func (s OrderStatus) Equivalent(other OrderStatus) bool {
	if s.IsPending() && other.IsPending() {
		return true
	}
	return s == other
}

func (s OrderStatus) String() string {
	return string(s)
}
