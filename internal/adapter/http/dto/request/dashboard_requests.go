package request

import (
	"errors"
	"strings"

	"kampung_chill/internal/domain/entities"
)

var ErrInvalidStatus = errors.New("invalid order status")

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateOrderStatusRequest) ResolveStatus() (entities.OrderStatus, error) {
	s := entities.OrderStatus(strings.ToLower(strings.TrimSpace(r.Status)))
	if !entities.IsValidOrderStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// AdjustStockRequest carries a signed manual stock adjustment.
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type SetActiveOrderRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}
