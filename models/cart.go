package models

// CartItem is one product line in a cart. UnitPrice is a snapshot of the
// catalog price at the time it was last refreshed.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// Cart holds the session-scoped shopping cart. It is created empty on first
// interaction and lives only as long as the session.
type Cart struct {
	Items      []CartItem `json:"items"`
	GrandTotal float64    `json:"grand_total"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// AddItem merges the quantity into an existing line for the same product,
// or appends a new line. Totals are recomputed.
func (c *Cart) AddItem(product Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i, item := range c.Items {
		if item.ProductID == product.ID.Hex() {
			c.Items[i].Quantity += quantity
			c.RecomputeTotals()
			return
		}
	}

	c.Items = append(c.Items, CartItem{
		ProductID: product.ID.Hex(),
		Title:     product.Title,
		UnitPrice: product.Price,
		Quantity:  quantity,
	})
	c.RecomputeTotals()
}

// RemoveItem deletes the line for the given product, if present.
func (c *Cart) RemoveItem(productID string) {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	c.Items = items
	c.RecomputeTotals()
}

// UpdateQuantity sets the quantity for a product's line. A quantity of zero
// or less removes the line.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items[i].Quantity = quantity
			break
		}
	}
	c.RecomputeTotals()
}

// RecomputeTotals walks all lines and recomputes line totals and the grand
// total. Must be called whenever unit prices or quantities change.
func (c *Cart) RecomputeTotals() {
	total := 0.0
	for i, item := range c.Items {
		c.Items[i].LineTotal = item.UnitPrice * float64(item.Quantity)
		total += c.Items[i].LineTotal
	}
	c.GrandTotal = total
}

// ProductIDs returns the product references of all lines, in order.
func (c *Cart) ProductIDs() []string {
	ids := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
