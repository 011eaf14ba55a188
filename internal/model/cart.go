package model

// Cart is the buyer's in-progress selection for a single order.
// Insertion order is display order and no two items share an id; the
// model enforces that invariant unconditionally. Toggle semantics (remove
// when already present) belong to the coordinator, not here.
//
// Count and total are recomputed on read, never cached, so they cannot
// drift from the item list.
type Cart struct {
	events Publisher
	items  []Product
}

// NewCart returns an empty cart publishing on events.
func NewCart(events Publisher) *Cart {
	return &Cart{events: events}
}

// Add appends p unless an item with the same id is already present, in
// which case it is a no-op. Either way a single cart-changed is emitted.
func (c *Cart) Add(p Product) {
	if !c.Has(p.ID) {
		c.items = append(c.items, p)
	}
	c.events.Publish(CartChanged{})
}

// Remove deletes the item with the given id. Removing an absent id is a
// no-op that still emits cart-changed.
func (c *Cart) Remove(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			break
		}
	}
	c.events.Publish(CartChanged{})
}

// Clear empties the cart and emits cart-changed.
func (c *Cart) Clear() {
	c.items = nil
	c.events.Publish(CartChanged{})
}

// Has reports whether an item with the given id is in the cart.
func (c *Cart) Has(id string) bool {
	for _, item := range c.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Items returns a snapshot of the cart contents in insertion order.
func (c *Cart) Items() []Product {
	out := make([]Product, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of items.
func (c *Cart) Count() int { return len(c.items) }

// TotalPrice sums the item prices, counting "not for sale" as zero.
func (c *Cart) TotalPrice() int {
	total := 0
	for _, item := range c.items {
		total += item.PriceOrZero()
	}
	return total
}

// ItemIDs returns the ids in insertion order, the shape the order
// gateway expects.
func (c *Cart) ItemIDs() []string {
	ids := make([]string, len(c.items))
	for i, item := range c.items {
		ids[i] = item.ID
	}
	return ids
}
