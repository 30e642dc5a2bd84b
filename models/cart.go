package models

// LineItem is one product-quantity pairing inside a cart. Price, name and
// image are copied from the product at add time, so later catalog edits
// never change what the customer saw when they added it.
type LineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Cart holds a session's line items in insertion order, at most one line
// per product. The visibility flag drives the cart drawer in the UI and is
// independent of the items.
//
// None of the operations fail: removing or updating an unknown product is
// a no-op, because the client always acts on a rendered snapshot that may
// have just gone stale.
type Cart struct {
	items   []LineItem
	visible bool
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem puts one unit of the product in the cart: an existing line is
// incremented in place (keeping its position), otherwise a new line with
// quantity 1 is appended. Adding always surfaces the cart drawer.
func (c *Cart) AddItem(p Product) {
	c.visible = true
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		UnitPrice: p.Price,
		Quantity:  1,
	})
}

// RemoveItem deletes the line for the product, if there is one.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity directly. Callers that want a
// decrement to zero to delete the line must call RemoveItem instead; the
// primitive itself never deletes.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart. Visibility is left alone.
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) ToggleVisibility() {
	c.visible = !c.visible
}

func (c *Cart) Visible() bool {
	return c.visible
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, it := range c.items {
		count += it.Quantity
	}
	return count
}

// Subtotal is recomputed on every call; carts are small and this keeps the
// aggregate free of cache-invalidation concerns.
func (c *Cart) Subtotal() float64 {
	var subtotal float64
	for _, it := range c.items {
		subtotal += it.UnitPrice * float64(it.Quantity)
	}
	return subtotal
}

// Snapshot returns a copy of the line items, safe to hold across later
// mutations of the cart.
func (c *Cart) Snapshot() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}
