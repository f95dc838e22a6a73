package response

import "kampung_chill/internal/domain/entities"

type CatalogItemResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	IsComingSoon bool    `json:"is_coming_soon"`
	InStock      int     `json:"in_stock"`
}

func FromCatalog(stocks map[string]int) []CatalogItemResponse {
	out := make([]CatalogItemResponse, 0, len(entities.Catalog))
	for _, p := range entities.Catalog {
		out = append(out, CatalogItemResponse{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Price:        p.Price,
			Category:     string(p.Category),
			IsComingSoon: p.IsComingSoon,
			InStock:      stocks[p.ID],
		})
	}
	return out
}

// BoardEntryResponse is one row of the public live status board: enough to
// recognize your order, nothing more.
type BoardEntryResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Status       string `json:"status"`
}

type ShopSnapshotResponse struct {
	IsOpen bool                 `json:"is_open"`
	Stocks map[string]int       `json:"stocks"`
	Board  []BoardEntryResponse `json:"board"`
}

func FromShopSnapshot(isOpen bool, stocks map[string]int, orders []entities.Order) ShopSnapshotResponse {
	board := make([]BoardEntryResponse, 0, len(orders))
	for _, o := range orders {
		if o.Status.IsTerminal() {
			continue
		}
		board = append(board, BoardEntryResponse{ID: o.ID, CustomerName: o.CustomerName, Status: string(o.Status)})
	}
	return ShopSnapshotResponse{IsOpen: isOpen, Stocks: stocks, Board: board}
}

type ShopStatusResponse struct {
	IsOpen bool `json:"is_open"`
}

type StockResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type ClearHistoryResponse struct {
	Removed int `json:"removed"`
}

type RecommendationResponse struct {
	Recommendation string `json:"recommendation"`
	Mood           string `json:"mood"`
	Weather        string `json:"weather"`
}
