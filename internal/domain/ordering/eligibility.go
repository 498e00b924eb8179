package ordering

import (
	"errors"

	"printhub/internal/domain/entities"
)

var (
	ErrClientInactive = errors.New("client is inactive")
	ErrClientInFlight = errors.New("client already has an order in flight")
)

// IsInFlightRequest reports whether a request blocks new requests for its client.
func IsInFlightRequest(r entities.OrderRequest) bool {
	return r.Status.IsPending() || r.Status == entities.OrderStatusApproved
}

// IsInFlightOrder reports whether a mirror order blocks new requests for its client.
func IsInFlightOrder(o entities.ClientOrder) bool {
	return o.Status == entities.OrderStatusApproved
}

// InFlightClients returns the set of clients holding an in-flight request or order.
// Rows belonging to excludeRequestID are ignored so a request does not block itself.
func InFlightClients(requests []entities.OrderRequest, orders []entities.ClientOrder, excludeRequestID int64) map[int64]struct{} {
	busy := make(map[int64]struct{})
	for _, r := range requests {
		if excludeRequestID != 0 && r.ID == excludeRequestID {
			continue
		}
		if IsInFlightRequest(r) {
			busy[r.ClientID] = struct{}{}
		}
	}
	for _, o := range orders {
		if excludeRequestID != 0 && o.RequestID() == excludeRequestID {
			continue
		}
		if IsInFlightOrder(o) {
			busy[o.ClientID] = struct{}{}
		}
	}
	return busy
}

// CheckClientEligible returns nil when client may be the target of a new request.
func CheckClientEligible(client entities.Client, requests []entities.OrderRequest, orders []entities.ClientOrder, excludeRequestID int64) error {
	if !client.IsActive() {
		return ErrClientInactive
	}
	if _, busy := InFlightClients(requests, orders, excludeRequestID)[client.ID]; busy {
		return ErrClientInFlight
	}
	return nil
}

// EligibleClients keeps active clients without in-flight work, preserving order.
func EligibleClients(clients []entities.Client, requests []entities.OrderRequest, orders []entities.ClientOrder) []entities.Client {
	busy := InFlightClients(requests, orders, 0)
	out := make([]entities.Client, 0, len(clients))
	for _, c := range clients {
		if !c.IsActive() {
			continue
		}
		if _, ok := busy[c.ID]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}
