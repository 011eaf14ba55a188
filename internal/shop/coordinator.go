// Package shop contains the checkout coordinator: the presenter that
// subscribes to UI intent events, mutates the session models, recomputes
// view data, and pushes render instructions back out. It owns the
// checkout state machine; render targets own nothing but pixels.
package shop

import (
	"go.uber.org/zap"

	"github.com/jask/shopfront/internal/bus"
	"github.com/jask/shopfront/internal/model"
)

// State is the coordinator's derived mode. Exactly one is active at a
// time; it determines what the modal hosts and which validation rule set
// gates submit.
type State int

const (
	Browsing State = iota
	PreviewOpen
	CartOpen
	AddressStep
	ContactsStep
	OrderConfirmed
)

func (s State) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case PreviewOpen:
		return "preview"
	case CartOpen:
		return "cart"
	case AddressStep:
		return "address"
	case ContactsStep:
		return "contacts"
	case OrderConfirmed:
		return "confirmed"
	}
	return "unknown"
}

// Preview affordance labels.
const (
	previewLabelBuy         = "Buy"
	previewLabelRemove      = "Remove from basket"
	previewLabelUnavailable = "Unavailable"
)

const submitFailedMsg = "Order submission failed. Check your connection and try again."

// Coordinator wires the models to the render targets through the bus.
// It is the sole mutator of Catalog, Cart, and Buyer.
type Coordinator struct {
	events  *bus.Bus
	catalog *model.Catalog
	cart    *model.Cart
	buyer   *model.Buyer
	views   Views
	log     *zap.Logger

	state      State
	submitting bool
	localTotal int
	effects    []Effect
}

// NewCoordinator builds a coordinator and subscribes it to every topic
// it drives. The bus, models, and views are injected; nothing here is
// ambient.
func NewCoordinator(events *bus.Bus, catalog *model.Catalog, cart *model.Cart, buyer *model.Buyer, views Views, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Coordinator{
		events:  events,
		catalog: catalog,
		cart:    cart,
		buyer:   buyer,
		views:   views,
		log:     log,
		state:   Browsing,
	}
	c.subscribe()
	return c
}

func (c *Coordinator) subscribe() {
	on := func(topic bus.Topic, h bus.Handler) { c.events.Subscribe(topic, h) }

	// model change events
	on(model.TopicCatalogChanged, func(bus.Event) { c.handleCatalogChanged() })
	on(model.TopicPreviewChanged, func(bus.Event) { c.handlePreviewChanged() })
	on(model.TopicCartChanged, func(bus.Event) { c.handleCartChanged() })

	// UI intent events
	on(TopicProductClicked, func(e bus.Event) { c.handleProductClicked(e.(ProductClicked)) })
	on(TopicPreviewActionClicked, func(e bus.Event) { c.handlePreviewAction(e.(PreviewActionClicked)) })
	on(TopicCartOpenRequested, func(bus.Event) { c.handleCartOpen() })
	on(TopicCartItemRemoved, func(e bus.Event) { c.handleCartItemRemoved(e.(CartItemRemoved)) })
	on(TopicCheckoutStarted, func(bus.Event) { c.handleCheckoutStarted() })
	on(TopicPaymentChanged, func(e bus.Event) { c.handlePaymentChanged(e.(PaymentChanged)) })
	on(TopicAddressChanged, func(e bus.Event) { c.handleAddressChanged(e.(AddressChanged)) })
	on(TopicEmailChanged, func(e bus.Event) { c.handleEmailChanged(e.(EmailChanged)) })
	on(TopicPhoneChanged, func(e bus.Event) { c.handlePhoneChanged(e.(PhoneChanged)) })
	on(TopicStepSubmitted, func(e bus.Event) { c.handleStepSubmitted(e.(StepSubmitted)) })
	on(TopicModalClosed, func(bus.Event) { c.handleModalClosed() })
	on(TopicCheckoutClosed, func(bus.Event) { c.handleModalClosed() })

	// settlements
	on(TopicCatalogFetched, func(e bus.Event) { c.handleCatalogFetched(e.(CatalogFetched)) })
	on(TopicOrderSettled, func(e bus.Event) { c.handleOrderSettled(e.(OrderSettled)) })
}

// Start performs the initial renders and requests the catalog fetch.
func (c *Coordinator) Start() {
	c.views.Header.Render(HeaderViewModel{Count: c.cart.Count()})
	c.views.Catalog.Render(CatalogViewModel{Products: c.catalog.Products()})
	c.effects = append(c.effects, FetchCatalogEffect{})
}

// State returns the active checkout state.
func (c *Coordinator) State() State { return c.state }

// Submitting reports whether an order request is in flight.
func (c *Coordinator) Submitting() bool { return c.submitting }

// TakeEffects returns and clears the pending background work. The host
// must call this after every publish and run each effect exactly once.
func (c *Coordinator) TakeEffects() []Effect {
	out := c.effects
	c.effects = nil
	return out
}

// --- model change handlers ---

func (c *Coordinator) handleCatalogChanged() {
	c.views.Catalog.Render(CatalogViewModel{Products: c.catalog.Products()})
}

func (c *Coordinator) handlePreviewChanged() {
	p, ok := c.catalog.Selected()
	if !ok {
		return
	}
	c.views.Preview.Render(c.previewViewModel(p))
	c.views.Modal.Show(ModalPreview)
	c.state = PreviewOpen
}

func (c *Coordinator) handleCartChanged() {
	c.views.Header.Render(HeaderViewModel{Count: c.cart.Count()})
	if c.state == CartOpen {
		c.views.Basket.Render(c.basketViewModel())
	}
}

// --- intent handlers ---

func (c *Coordinator) handleProductClicked(e ProductClicked) {
	if c.state != Browsing {
		return
	}
	// Resolve through the catalog so the selection is always one of the
	// fetched products, whatever the render target claims.
	p, ok := c.catalog.ProductByID(e.Product.ID)
	if !ok {
		return
	}
	// Select emits preview-changed, which opens the modal.
	c.catalog.Select(p)
}

func (c *Coordinator) handlePreviewAction(e PreviewActionClicked) {
	if c.state != PreviewOpen {
		return
	}
	c.state = Browsing
	c.views.Modal.Close()
	c.catalog.ClearSelection()

	// Toggle membership here; the cart model itself never duplicates.
	if c.cart.Has(e.Product.ID) {
		c.cart.Remove(e.Product.ID)
		return
	}
	if !e.Product.ForSale() {
		// The affordance is disabled for priceless products, but render
		// targets are untrusted.
		return
	}
	c.cart.Add(e.Product)
}

func (c *Coordinator) handleCartOpen() {
	if c.submitting {
		return
	}
	c.views.Basket.Render(c.basketViewModel())
	c.views.Modal.Show(ModalBasket)
	c.state = CartOpen
}

func (c *Coordinator) handleCartItemRemoved(e CartItemRemoved) {
	if c.state != CartOpen {
		return
	}
	c.cart.Remove(e.ID)
}

func (c *Coordinator) handleCheckoutStarted() {
	if c.state != CartOpen || c.cart.Count() == 0 {
		return
	}
	c.views.Address.Render(c.addressViewModel())
	c.views.Modal.Show(ModalAddress)
	c.state = AddressStep
}

func (c *Coordinator) handlePaymentChanged(e PaymentChanged) {
	if c.state != AddressStep {
		return
	}
	c.buyer.SetPayment(e.Payment)
	// Full re-render: the payment choice changes the form itself, not
	// just the validation line.
	c.views.Address.Render(c.addressViewModel())
}

func (c *Coordinator) handleAddressChanged(e AddressChanged) {
	if c.state != AddressStep {
		return
	}
	c.buyer.SetAddress(e.Address)
	v := c.buyer.ValidateAddressStep()
	c.views.Address.SetValidation(v.Error, v.IsValid)
}

func (c *Coordinator) handleEmailChanged(e EmailChanged) {
	if c.state != ContactsStep || c.submitting {
		return
	}
	c.buyer.SetEmail(e.Email)
	v := c.buyer.ValidateContactsStep()
	c.views.Contacts.SetValidation(v.Error, v.IsValid)
}

func (c *Coordinator) handlePhoneChanged(e PhoneChanged) {
	if c.state != ContactsStep || c.submitting {
		return
	}
	c.buyer.SetPhone(e.Phone)
	v := c.buyer.ValidateContactsStep()
	c.views.Contacts.SetValidation(v.Error, v.IsValid)
}

func (c *Coordinator) handleStepSubmitted(e StepSubmitted) {
	switch e.Step {
	case StepAddress:
		if c.state != AddressStep || !c.buyer.ValidateAddressStep().IsValid {
			return
		}
		c.views.Contacts.Render(c.contactsViewModel("", false))
		c.views.Modal.Show(ModalContacts)
		c.state = ContactsStep
	case StepContacts:
		if c.state != ContactsStep || c.submitting {
			return
		}
		if !c.buyer.ValidateContactsStep().IsValid || !c.buyer.Validate().IsValid {
			return
		}
		data := c.buyer.Data()
		c.localTotal = c.cart.TotalPrice()
		c.submitting = true
		c.effects = append(c.effects, SubmitOrderEffect{Order: Order{
			Payment: data.Payment,
			Email:   data.Email,
			Phone:   data.Phone,
			Address: data.Address,
			Items:   c.cart.ItemIDs(),
			Total:   c.localTotal,
		}})
		c.views.Contacts.Render(c.contactsViewModel("", true))
	}
}

func (c *Coordinator) handleModalClosed() {
	if c.submitting {
		// An order is in flight; the contacts form stays up until it
		// settles.
		return
	}
	c.state = Browsing
	c.catalog.ClearSelection()
	c.views.Modal.Close()
}

// --- settlement handlers ---

func (c *Coordinator) handleCatalogFetched(e CatalogFetched) {
	c.catalog.SetProducts(e.Products)
}

func (c *Coordinator) handleOrderSettled(e OrderSettled) {
	if !c.submitting {
		return
	}
	c.submitting = false
	if e.Err != nil {
		// Stay on the contacts step with models untouched; the user may
		// resubmit.
		c.log.Warn("order submission failed", zap.Error(e.Err))
		c.views.Contacts.Render(c.contactsViewModel(submitFailedMsg, false))
		return
	}
	if e.Total != c.localTotal {
		c.log.Warn("order total mismatch",
			zap.Int("local", c.localTotal),
			zap.Int("gateway", e.Total))
	}
	c.state = OrderConfirmed
	c.cart.Clear()
	c.buyer.Clear()
	c.views.Success.Render(SuccessViewModel{Total: e.Total})
	c.views.Modal.Show(ModalSuccess)
}

// --- view model builders ---

func (c *Coordinator) previewViewModel(p model.Product) PreviewViewModel {
	inCart := c.cart.Has(p.ID)
	label := previewLabelBuy
	disabled := false
	switch {
	case !p.ForSale():
		label = previewLabelUnavailable
		disabled = true
	case inCart:
		label = previewLabelRemove
	}
	return PreviewViewModel{
		Product:        p,
		InCart:         inCart,
		ButtonLabel:    label,
		ButtonDisabled: disabled,
	}
}

func (c *Coordinator) basketViewModel() BasketViewModel {
	items := c.cart.Items()
	rows := make([]BasketRow, len(items))
	for i, p := range items {
		rows[i] = BasketRow{Index: i + 1, Product: p}
	}
	return BasketViewModel{
		Rows:        rows,
		Total:       c.cart.TotalPrice(),
		CanCheckout: len(items) > 0,
	}
}

func (c *Coordinator) addressViewModel() AddressViewModel {
	data := c.buyer.Data()
	v := c.buyer.ValidateAddressStep()
	return AddressViewModel{
		Payment:       data.Payment,
		Address:       data.Address,
		Error:         v.Error,
		SubmitEnabled: v.IsValid,
	}
}

func (c *Coordinator) contactsViewModel(submitErr string, submitting bool) ContactsViewModel {
	data := c.buyer.Data()
	v := c.buyer.ValidateContactsStep()
	return ContactsViewModel{
		Email:         data.Email,
		Phone:         data.Phone,
		Error:         v.Error,
		SubmitEnabled: v.IsValid && !submitting,
		SubmitError:   submitErr,
		Submitting:    submitting,
	}
}
