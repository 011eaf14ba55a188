package shop

import "github.com/jask/shopfront/internal/model"

// View models are immutable snapshots pushed outward to render targets.
// Render targets never reach back into model state.

// HeaderViewModel drives the basket counter in the header.
type HeaderViewModel struct {
	Count int
}

// CatalogViewModel drives the product grid.
type CatalogViewModel struct {
	Products []model.Product
}

// PreviewViewModel drives the product preview card. ButtonLabel and
// ButtonDisabled encode the buy/remove/unavailable affordance.
type PreviewViewModel struct {
	Product        model.Product
	InCart         bool
	ButtonLabel    string
	ButtonDisabled bool
}

// BasketRow is one cart line with its 1-based display index.
type BasketRow struct {
	Index   int
	Product model.Product
}

// BasketViewModel drives the basket list. CanCheckout is false while the
// cart is empty.
type BasketViewModel struct {
	Rows        []BasketRow
	Total       int
	CanCheckout bool
}

// AddressViewModel drives the first checkout step.
type AddressViewModel struct {
	Payment       model.Payment
	Address       string
	Error         string
	SubmitEnabled bool
}

// ContactsViewModel drives the second checkout step. SubmitError carries
// a retryable order-submission failure; Submitting disables the form
// while an order request is in flight.
type ContactsViewModel struct {
	Email         string
	Phone         string
	Error         string
	SubmitEnabled bool
	SubmitError   string
	Submitting    bool
}

// SuccessViewModel drives the order-confirmed card. Total is the
// gateway's value, not the locally computed one.
type SuccessViewModel struct {
	Total int
}

// ModalContent names what the modal surface currently hosts.
type ModalContent int

const (
	ModalNone ModalContent = iota
	ModalPreview
	ModalBasket
	ModalAddress
	ModalContacts
	ModalSuccess
)

// Render target contracts. Each Render is idempotent: re-rendering with
// fresh data only updates what changed.

type HeaderView interface {
	Render(HeaderViewModel)
}

type CatalogView interface {
	Render(CatalogViewModel)
}

type PreviewView interface {
	Render(PreviewViewModel)
}

type BasketView interface {
	Render(BasketViewModel)
}

// AddressStepView additionally accepts validation pushes so the
// coordinator can update feedback without a full re-render.
type AddressStepView interface {
	Render(AddressViewModel)
	SetValidation(errMsg string, submitEnabled bool)
}

type ContactsStepView interface {
	Render(ContactsViewModel)
	SetValidation(errMsg string, submitEnabled bool)
}

type SuccessView interface {
	Render(SuccessViewModel)
}

// ModalHost owns the single modal surface. Show switches its content and
// opens it; Close dismisses it.
type ModalHost interface {
	Show(ModalContent)
	Close()
}

// Views bundles every render target the coordinator drives.
type Views struct {
	Header   HeaderView
	Catalog  CatalogView
	Preview  PreviewView
	Basket   BasketView
	Address  AddressStepView
	Contacts ContactsStepView
	Success  SuccessView
	Modal    ModalHost
}
