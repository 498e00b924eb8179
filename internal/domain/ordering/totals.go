package ordering

import (
	"errors"
	"fmt"
	"strings"

	"printhub/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrNoItems            = errors.New("order request must have at least one item")
	ErrInvalidQuantity    = errors.New("item quantity must be at least 1")
	ErrInvalidUnitPrice   = errors.New("item unit price cannot be negative")
	ErrMissingProductName = errors.New("item product name is required")
	ErrMissingProductID   = errors.New("item product id is required")
	ErrInvalidSerialRange = errors.New("item serial range needs both start and end")
)

// LineTotal is unit price times quantity.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// ValidateItems checks every line before pricing.
func ValidateItems(items []entities.OrderRequestItem) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	for i, it := range items {
		switch {
		case it.ProductID == 0:
			return fmt.Errorf("item %d: %w", i+1, ErrMissingProductID)
		case strings.TrimSpace(it.ProductName) == "":
			return fmt.Errorf("item %d: %w", i+1, ErrMissingProductName)
		case it.Quantity < 1:
			return fmt.Errorf("item %d: %w", i+1, ErrInvalidQuantity)
		case it.UnitPrice.IsNegative():
			return fmt.Errorf("item %d: %w", i+1, ErrInvalidUnitPrice)
		case (it.SerialStart == "") != (it.SerialEnd == ""):
			return fmt.Errorf("item %d: %w", i+1, ErrInvalidSerialRange)
		}
	}
	return nil
}

// PriceItems returns a copy of items with line numbers and line totals set, and the
// request total.
func PriceItems(requestID int64, items []entities.OrderRequestItem) ([]entities.OrderRequestItem, decimal.Decimal) {
	priced := make([]entities.OrderRequestItem, len(items))
	total := decimal.Zero
	for i, it := range items {
		it.RequestID = requestID
		it.LineNo = i + 1
		it.ProductName = strings.TrimSpace(it.ProductName)
		it.TotalPrice = LineTotal(it.UnitPrice, it.Quantity)
		total = total.Add(it.TotalPrice)
		priced[i] = it
	}
	return priced, total
}

// SumItems adds up the stored line totals.
func SumItems(items []entities.OrderRequestItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalPrice)
	}
	return total
}
