package request

import (
	"errors"
	"strings"

	"printhub/internal/domain/entities"
)

var ErrInvalidStatusValue = errors.New("invalid status value")

// StatusChangeRequest is the body of the PATCH .../status endpoints. Status is
// case-insensitive and "New" is accepted as an alias of Pending.
type StatusChangeRequest struct {
	Status string `json:"status" binding:"required"`
	Actor  string `json:"actor"`
}

func (r StatusChangeRequest) ResolveStatus() (entities.OrderStatus, error) {
	s, ok := entities.ParseOrderStatus(r.Status)
	if !ok {
		return "", ErrInvalidStatusValue
	}
	return s, nil
}

func (r StatusChangeRequest) ResolveActor() string {
	return strings.TrimSpace(r.Actor)
}
