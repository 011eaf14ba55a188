package shop

import "github.com/jask/shopfront/internal/model"

// Order is the payload handed to the remote gateway: the buyer's draft
// plus the cart's item ids and locally computed total.
type Order struct {
	Payment model.Payment
	Email   string
	Phone   string
	Address string
	Items   []string
	Total   int
}

// Effect is a one-shot piece of background work requested by a
// coordinator handler. Handlers never block; the host drains pending
// effects after each publish, runs each off the UI goroutine, and feeds
// the outcome back onto the bus as CatalogFetched or OrderSettled.
type Effect interface {
	isEffect()
}

// FetchCatalogEffect asks the host to fetch the catalog.
type FetchCatalogEffect struct{}

func (FetchCatalogEffect) isEffect() {}

// SubmitOrderEffect asks the host to submit the order.
type SubmitOrderEffect struct {
	Order Order
}

func (SubmitOrderEffect) isEffect() {}
