// Package model holds the storefront session state: the fetched catalog,
// the cart, and the buyer's draft order details. Models are plain structs
// exclusively owned and mutated by the checkout coordinator; they announce
// changes through a narrow Publisher and hand out snapshot copies, never
// live references.
package model

import "github.com/jask/shopfront/internal/bus"

// Publisher is the one-method slice of the bus that models need.
type Publisher interface {
	Publish(bus.Event)
}

// Product is an immutable catalog entry. A nil Price means the product
// is not for sale.
type Product struct {
	ID          string
	Title       string
	Category    string
	Image       string
	Price       *int
	Description string
}

// PriceOrZero returns the price, treating "not for sale" as zero.
func (p Product) PriceOrZero() int {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// ForSale reports whether the product can be added to an order.
func (p Product) ForSale() bool { return p.Price != nil }

// Topics for model change events. No payloads: consumers re-pull the
// state they care about from the model that emitted the event.
const (
	TopicCatalogChanged bus.Topic = "catalog-changed"
	TopicPreviewChanged bus.Topic = "preview-changed"
	TopicCartChanged    bus.Topic = "cart-changed"
)

// CatalogChanged announces that the product list was replaced.
type CatalogChanged struct{}

func (CatalogChanged) Topic() bus.Topic { return TopicCatalogChanged }

// PreviewChanged announces that the previewed product changed.
type PreviewChanged struct{}

func (PreviewChanged) Topic() bus.Topic { return TopicPreviewChanged }

// CartChanged announces any cart mutation. One event per operation,
// not one per derived field.
type CartChanged struct{}

func (CartChanged) Topic() bus.Topic { return TopicCartChanged }
