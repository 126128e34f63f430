package store

// Cart is the session shopping cart. It lives in memory only and is never
// persisted.
type Cart struct {
	items []CartItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts a product in the cart, incrementing the quantity when the product
// is already present.
func (c *Cart) Add(p Product) {
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: 1})
}

// SetQuantity replaces a line's quantity. A quantity below one removes the
// line; quantities are never stored at zero or negative.
func (c *Cart) SetQuantity(id string, quantity int) {
	if quantity < 1 {
		c.Remove(id)
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Remove drops the line for the given product id.
func (c *Cart) Remove(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Total returns the cart value.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
