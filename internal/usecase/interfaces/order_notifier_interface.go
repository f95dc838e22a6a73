package interfaces

import "kampung_chill/internal/domain/entities"

// IOrderNotifier is the best-effort staff notification surface for freshly
// placed orders. Implementations must degrade silently: no configuration or
// a delivery failure is a no-op, never an error the caller sees.

type IOrderNotifier interface {
	OrderPlaced(order entities.Order)
}
