package entities

// ProductCategory tags a catalog product for display grouping.

type ProductCategory string

const (
	CategoryClassic ProductCategory = "Classic"
	CategoryPremium ProductCategory = "Premium"
	CategoryLimited ProductCategory = "Limited"
)

// Product is a catalog entry. The catalog is fixed at build time and never
// mutated at runtime; stock levels live in the shop state, not here.
//
// A coming-soon product is displayed but not orderable.

type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        float64         `json:"price"`
	Category     ProductCategory `json:"category"`
	IsComingSoon bool            `json:"is_coming_soon,omitempty"`
}

// InitialStockCount is the per-product stock a fresh shop starts with, and
// the level RestockAll resets to.
const InitialStockCount = 20

// Catalog is the full flavour list of the shop.
var Catalog = []Product{
	{ID: "watermelon", Name: "Watermelon", Description: "Sweet, juicy, and incredibly refreshing. The perfect summer cooler.", Price: 2.00, Category: CategoryClassic},
	{ID: "brown-sugar-milk-tea", Name: "Brown Sugar Milk Tea", Description: "Creamy milk tea with rich caramel-like brown sugar swirls.", Price: 2.00, Category: CategoryPremium},
	{ID: "hazelnut-coffee", Name: "Hazelnut Coffee", Description: "A smooth blend of aromatic coffee with a nutty hazelnut finish.", Price: 2.00, Category: CategoryClassic},
	{ID: "vanilla-blue", Name: "Vanilla Blue", Description: "A magical blue treat with a sweet and creamy vanilla flavor.", Price: 2.00, Category: CategoryClassic},
	{ID: "bubblegum", Name: "Bubblegum", Description: "Fun, sweet, and nostalgic. A favorite for the young and young at heart.", Price: 2.00, Category: CategoryClassic},
	{ID: "chocolate", Name: "Chocolate", Description: "Rich, velvety cocoa goodness. A timeless classic for chocolate lovers.", Price: 2.00, Category: CategoryClassic},
	{ID: "honeydew", Name: "Honeydew", Description: "Light, sweet, and fragrant melon. Cooling and delightful.", Price: 2.00, Category: CategoryClassic},
	{ID: "durian", Name: "Durian", Description: "The King of Fruits. Rich, creamy, and undeniably bold.", Price: 2.00, Category: CategoryPremium},
	{ID: "sarsi", Name: "Sarsi", Description: "The classic sarsaparilla root beer flavor. Coming soon!", Price: 2.00, Category: CategoryLimited, IsComingSoon: true},
	{ID: "matcha", Name: "Matcha", Description: "Earthy, rich, and premium green tea goodness. Coming soon!", Price: 2.00, Category: CategoryClassic, IsComingSoon: true},
	{ID: "cappuccino", Name: "Cappuccino", Description: "A sophisticated coffee treat with a creamy foam-like finish. Coming soon!", Price: 2.00, Category: CategoryPremium, IsComingSoon: true},
	{ID: "strawberry", Name: "Strawberry", Description: "Sweet, tart, and bursting with berry flavor. Coming soon!", Price: 2.00, Category: CategoryClassic, IsComingSoon: true},
	{ID: "mango", Name: "Mango", Description: "Tropical paradise in every bite. Sweet, sun-ripened mango. Coming soon!", Price: 2.00, Category: CategoryClassic, IsComingSoon: true},
}

// CatalogProduct looks up a product by id. The second return reports whether
// the id belongs to the catalog.
func CatalogProduct(id string) (Product, bool) {
	for _, p := range Catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// CatalogProductIDs returns every catalog id, in catalog order.
func CatalogProductIDs() []string {
	ids := make([]string, 0, len(Catalog))
	for _, p := range Catalog {
		ids = append(ids, p.ID)
	}
	return ids
}

// InitialStocks builds the stock table a fresh shop starts with.
func InitialStocks() map[string]int {
	stocks := make(map[string]int, len(Catalog))
	for _, p := range Catalog {
		stocks[p.ID] = InitialStockCount
	}
	return stocks
}
