package entities

// CartLine is one selected product in a cart, price captured from the
// catalog when the line was first added.

type CartLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is the ephemeral per-session selection awaiting checkout. It is never
// persisted; it feeds the shop engine only at checkout. At most one line per
// product.
//
// Add guards are advisory oversell prevention at this layer; the engine
// still floors stock at zero as the authoritative backstop.

type Cart struct {
	lines []CartLine
	index map[string]int
}

func NewCart() *Cart {
	return &Cart{index: make(map[string]int)}
}

// AddItem adds one unit of p. The add is silently skipped when the shop is
// closed, the product is coming soon, or the quantity already in the cart
// would meet or exceed the displayed stock. Returns whether a unit was
// added.
func (c *Cart) AddItem(p Product, displayedStock int, shopOpen bool) bool {
	if !shopOpen || p.IsComingSoon {
		return false
	}
	if c.Quantity(p.ID) >= displayedStock {
		return false
	}
	if i, ok := c.index[p.ID]; ok {
		c.lines[i].Quantity++
		return true
	}
	c.index[p.ID] = len(c.lines)
	c.lines = append(c.lines, CartLine{ProductID: p.ID, Name: p.Name, Price: p.Price, Quantity: 1})
	return true
}

// Quantity returns how many units of the product are in the cart.
func (c *Cart) Quantity(productID string) int {
	if i, ok := c.index[productID]; ok {
		return c.lines[i].Quantity
	}
	return 0
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Total() float64 {
	total := 0.0
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}
