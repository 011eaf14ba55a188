package shop

import (
	"github.com/jask/shopfront/internal/bus"
	"github.com/jask/shopfront/internal/model"
)

// Intent topics published by render targets, plus the two settlement
// topics that carry the results of background work back onto the bus.
const (
	TopicProductClicked       bus.Topic = "product-clicked"
	TopicPreviewActionClicked bus.Topic = "preview-action-clicked"
	TopicCartOpenRequested    bus.Topic = "cart-open-requested"
	TopicCartItemRemoved      bus.Topic = "cart-item-removed"
	TopicCheckoutStarted      bus.Topic = "checkout-started"
	TopicPaymentChanged       bus.Topic = "payment-changed"
	TopicAddressChanged       bus.Topic = "address-changed"
	TopicEmailChanged         bus.Topic = "email-changed"
	TopicPhoneChanged         bus.Topic = "phone-changed"
	TopicStepSubmitted        bus.Topic = "step-submitted"
	TopicModalClosed          bus.Topic = "modal-closed"
	TopicCheckoutClosed       bus.Topic = "checkout-closed"
	TopicCatalogFetched       bus.Topic = "catalog-fetched"
	TopicOrderSettled         bus.Topic = "order-settled"
)

// Step identifies which checkout form raised a submit.
type Step string

const (
	StepAddress  Step = "address"
	StepContacts Step = "contacts"
)

// ProductClicked is raised when a catalog card is activated.
type ProductClicked struct {
	Product model.Product
}

func (ProductClicked) Topic() bus.Topic { return TopicProductClicked }

// PreviewActionClicked is raised by the preview card's buy/remove button.
type PreviewActionClicked struct {
	Product model.Product
}

func (PreviewActionClicked) Topic() bus.Topic { return TopicPreviewActionClicked }

// CartOpenRequested is raised by the header basket affordance.
type CartOpenRequested struct{}

func (CartOpenRequested) Topic() bus.Topic { return TopicCartOpenRequested }

// CartItemRemoved is raised by a basket row's remove affordance.
type CartItemRemoved struct {
	ID string
}

func (CartItemRemoved) Topic() bus.Topic { return TopicCartItemRemoved }

// CheckoutStarted is raised by the basket's checkout button.
type CheckoutStarted struct{}

func (CheckoutStarted) Topic() bus.Topic { return TopicCheckoutStarted }

// PaymentChanged is raised when the buyer picks a payment method.
type PaymentChanged struct {
	Payment model.Payment
}

func (PaymentChanged) Topic() bus.Topic { return TopicPaymentChanged }

// AddressChanged carries the full current address input value.
type AddressChanged struct {
	Address string
}

func (AddressChanged) Topic() bus.Topic { return TopicAddressChanged }

// EmailChanged carries the full current email input value.
type EmailChanged struct {
	Email string
}

func (EmailChanged) Topic() bus.Topic { return TopicEmailChanged }

// PhoneChanged carries the full current phone input value.
type PhoneChanged struct {
	Phone string
}

func (PhoneChanged) Topic() bus.Topic { return TopicPhoneChanged }

// StepSubmitted is raised by a checkout form's submit affordance. The
// coordinator re-validates before transitioning; render targets are
// untrusted.
type StepSubmitted struct {
	Step Step
}

func (StepSubmitted) Topic() bus.Topic { return TopicStepSubmitted }

// ModalClosed is raised when the user dismisses the modal surface.
type ModalClosed struct{}

func (ModalClosed) Topic() bus.Topic { return TopicModalClosed }

// CheckoutClosed is raised by the success card's close button.
type CheckoutClosed struct{}

func (CheckoutClosed) Topic() bus.Topic { return TopicCheckoutClosed }

// CatalogFetched settles a FetchCatalogEffect. A transport failure has
// already been degraded to an empty product list by the gateway.
type CatalogFetched struct {
	Products []model.Product
}

func (CatalogFetched) Topic() bus.Topic { return TopicCatalogFetched }

// OrderSettled settles a SubmitOrderEffect. On success Total carries the
// server's authoritative order total; on failure Err is set and Total is
// meaningless.
type OrderSettled struct {
	Total int
	Err   error
}

func (OrderSettled) Topic() bus.Topic { return TopicOrderSettled }
