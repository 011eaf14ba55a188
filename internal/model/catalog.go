package model

// Catalog holds the fetched product set and the currently previewed item.
// The selected product, when set, is always one of the last fetched
// products; it represents "currently previewed", not a separate entity.
type Catalog struct {
	events   Publisher
	products []Product
	selected *Product
}

// NewCatalog returns an empty catalog publishing on events.
func NewCatalog(events Publisher) *Catalog {
	return &Catalog{events: events}
}

// SetProducts replaces the product list wholesale, preserving server
// order, and emits catalog-changed. No validation happens here: the
// gateway guarantees product shape.
func (c *Catalog) SetProducts(products []Product) {
	c.products = make([]Product, len(products))
	copy(c.products, products)
	c.selected = nil
	c.events.Publish(CatalogChanged{})
}

// Products returns a snapshot of the current product list.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID returns the matching product. A miss is a benign
// "not found", never an error.
func (c *Catalog) ProductByID(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Select marks p as the previewed product and emits preview-changed.
func (c *Catalog) Select(p Product) {
	sel := p
	c.selected = &sel
	c.events.Publish(PreviewChanged{})
}

// Selected returns the previewed product, if any.
func (c *Catalog) Selected() (Product, bool) {
	if c.selected == nil {
		return Product{}, false
	}
	return *c.selected, true
}

// ClearSelection drops the previewed product without emitting; closing
// the preview is a coordinator state change, not a model change.
func (c *Catalog) ClearSelection() {
	c.selected = nil
}

// Len returns the number of products without copying.
func (c *Catalog) Len() int { return len(c.products) }
