package request

import (
	"errors"

	"kampung_chill/internal/domain/entities"
)

var (
	ErrUnknownProduct    = errors.New("unknown product")
	ErrProductComingSoon = errors.New("product not orderable yet")
	ErrInvalidQuantity   = errors.New("invalid quantity")
)

type OrderLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// PlaceOrderRequest is the checkout payload. Lines reference catalog ids;
// names and prices are captured server-side from the catalog so clients
// cannot invent prices.
type PlaceOrderRequest struct {
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerPhone string             `json:"customer_phone" binding:"required"`
	Items         []OrderLineRequest `json:"items" binding:"required"`
}

// ResolveCartLines materializes the request lines against the catalog.
// Duplicate lines for the same product are merged.
func (r PlaceOrderRequest) ResolveCartLines() ([]entities.CartLine, error) {
	merged := make(map[string]int, len(r.Items))
	order := make([]string, 0, len(r.Items))
	for _, it := range r.Items {
		if it.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		p, ok := entities.CatalogProduct(it.ProductID)
		if !ok {
			return nil, ErrUnknownProduct
		}
		if p.IsComingSoon {
			return nil, ErrProductComingSoon
		}
		if _, seen := merged[it.ProductID]; !seen {
			order = append(order, it.ProductID)
		}
		merged[it.ProductID] += it.Quantity
	}

	lines := make([]entities.CartLine, 0, len(order))
	for _, id := range order {
		p, _ := entities.CatalogProduct(id)
		lines = append(lines, entities.CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  merged[id],
		})
	}
	return lines, nil
}
