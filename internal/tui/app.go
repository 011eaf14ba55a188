// Package tui hosts the storefront's render targets inside a Bubble Tea
// program. Key presses are translated into intent events on the bus; the
// coordinator reacts, pushes fresh view models into the render targets,
// and View draws whatever they last received. Background work requested
// by the coordinator runs as tea commands whose results re-enter the bus.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/shopfront/internal/bus"
	"github.com/jask/shopfront/internal/config"
	"github.com/jask/shopfront/internal/model"
	"github.com/jask/shopfront/internal/shop"
)

// Gateway is the slice of the remote service the TUI needs to run the
// coordinator's effects.
type Gateway interface {
	FetchCatalog(ctx context.Context) []model.Product
	SubmitOrder(ctx context.Context, order shop.Order) (int, error)
}

type catalogFetchedMsg struct {
	products []model.Product
}

type orderDoneMsg struct {
	total int
	err   error
}

// App is the Bubble Tea model for the whole storefront session.
type App struct {
	events  *bus.Bus
	coord   *shop.Coordinator
	gateway Gateway

	currency  string
	priceless string

	header   *headerView
	catalog  *catalogView
	preview  *previewView
	basket   *basketView
	address  *addressView
	contacts *contactsView
	success  *successView
	modal    *modalHost

	keys keyMap

	width    int
	height   int
	cursor   int
	topIndex int

	basketCursor int
	formFocus    int
	addressField textField
	emailField   textField
	phoneField   textField

	searchMode  bool
	searchField textField

	lastModal shop.ModalContent
	status    string
}

// NewApp wires bus, models, coordinator, and render targets for one
// session.
func NewApp(cfg config.Config, gw Gateway, log *zap.Logger) App {
	b := bus.New()
	catalogModel := model.NewCatalog(b)
	cart := model.NewCart(b)
	buyer := model.NewBuyer()

	a := App{
		events:    b,
		gateway:   gw,
		currency:  cfg.UI.CurrencyLabel,
		priceless: cfg.UI.PricelessText,
		header:    &headerView{},
		catalog:   &catalogView{},
		preview:   &previewView{},
		basket:    &basketView{},
		address:   &addressView{},
		contacts:  &contactsView{},
		success:   &successView{},
		modal:     &modalHost{},
		keys:      newKeyMap(),
		status:    "Loading catalog…",
	}
	a.coord = shop.NewCoordinator(b, catalogModel, cart, buyer, shop.Views{
		Header:   a.header,
		Catalog:  a.catalog,
		Preview:  a.preview,
		Basket:   a.basket,
		Address:  a.address,
		Contacts: a.contacts,
		Success:  a.success,
		Modal:    a.modal,
	}, log)
	return a
}

func (a App) Init() tea.Cmd {
	a.coord.Start()
	return a.runEffects()
}

// publish sends an intent event, reconciles local input state with
// whatever the coordinator rendered, and schedules any requested
// background work.
func (a *App) publish(e bus.Event) tea.Cmd {
	a.events.Publish(e)
	a.syncModalInputs()
	return a.runEffects()
}

func (a *App) runEffects() tea.Cmd {
	var cmds []tea.Cmd
	for _, eff := range a.coord.TakeEffects() {
		switch eff := eff.(type) {
		case shop.FetchCatalogEffect:
			gw := a.gateway
			cmds = append(cmds, func() tea.Msg {
				return catalogFetchedMsg{products: gw.FetchCatalog(context.Background())}
			})
		case shop.SubmitOrderEffect:
			gw, order := a.gateway, eff.Order
			cmds = append(cmds, func() tea.Msg {
				total, err := gw.SubmitOrder(context.Background(), order)
				return orderDoneMsg{total: total, err: err}
			})
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// syncModalInputs seeds the local text fields and cursors when the
// modal switches content, so the form shows what the coordinator last
// rendered.
func (a *App) syncModalInputs() {
	if a.modal.content == a.lastModal {
		return
	}
	a.lastModal = a.modal.content
	switch a.modal.content {
	case shop.ModalBasket:
		a.basketCursor = 0
	case shop.ModalAddress:
		a.addressField.set(a.address.vm.Address)
		a.formFocus = 0
	case shop.ModalContacts:
		a.emailField.set(a.contacts.vm.Email)
		a.phoneField.set(a.contacts.vm.Phone)
		a.formFocus = 0
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case catalogFetchedMsg:
		cmd := a.publish(shop.CatalogFetched{Products: msg.products})
		a.status = fmt.Sprintf("%d products", len(msg.products))
		a.cursor, a.topIndex = 0, 0
		return a, cmd
	case orderDoneMsg:
		cmd := a.publish(shop.OrderSettled{Total: msg.total, Err: msg.err})
		return a, cmd
	case tea.KeyMsg:
		return a.updateKey(msg)
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.modal.open() {
		return a.updateModalKey(msg)
	}
	if a.searchMode {
		return a.updateSearchKey(msg)
	}
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "/":
		a.searchMode = true
		return a, nil
	case "b":
		cmd := a.publish(shop.CartOpenRequested{})
		return a, cmd
	case "up", "k":
		a.moveCursor(-1)
		return a, nil
	case "down", "j":
		a.moveCursor(1)
		return a, nil
	case "enter":
		products := a.visibleProducts()
		if a.cursor < len(products) {
			cmd := a.publish(shop.ProductClicked{Product: products[a.cursor]})
			return a, cmd
		}
		return a, nil
	}
	return a, nil
}

func (a App) updateSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.searchMode = false
		a.searchField.set("")
		a.clampCursor()
		return a, nil
	case "enter":
		a.searchMode = false
		a.clampCursor()
		return a, nil
	}
	if a.searchField.handleKey(normalizeKeyName(msg.String())) {
		a.cursor, a.topIndex = 0, 0
	}
	return a, nil
}

func (a App) updateModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	switch a.modal.content {
	case shop.ModalPreview:
		return a.updatePreviewKey(msg)
	case shop.ModalBasket:
		return a.updateBasketKey(msg)
	case shop.ModalAddress:
		return a.updateAddressKey(msg)
	case shop.ModalContacts:
		return a.updateContactsKey(msg)
	case shop.ModalSuccess:
		switch msg.String() {
		case "enter", "esc":
			cmd := a.publish(shop.CheckoutClosed{})
			return a, cmd
		}
	}
	return a, nil
}

func (a App) updatePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		cmd := a.publish(shop.ModalClosed{})
		return a, cmd
	case "enter", " ":
		if a.preview.vm.ButtonDisabled {
			return a, nil
		}
		cmd := a.publish(shop.PreviewActionClicked{Product: a.preview.vm.Product})
		return a, cmd
	}
	return a, nil
}

func (a App) updateBasketKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := a.basket.vm.Rows
	switch msg.String() {
	case "esc":
		cmd := a.publish(shop.ModalClosed{})
		return a, cmd
	case "up", "k":
		if a.basketCursor > 0 {
			a.basketCursor--
		}
		return a, nil
	case "down", "j":
		if a.basketCursor < len(rows)-1 {
			a.basketCursor++
		}
		return a, nil
	case "x", "backspace":
		if a.basketCursor < len(rows) {
			id := rows[a.basketCursor].Product.ID
			cmd := a.publish(shop.CartItemRemoved{ID: id})
			if a.basketCursor >= len(a.basket.vm.Rows) && a.basketCursor > 0 {
				a.basketCursor--
			}
			return a, cmd
		}
		return a, nil
	case "enter":
		cmd := a.publish(shop.CheckoutStarted{})
		return a, cmd
	}
	return a, nil
}

func (a App) updateAddressKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := normalizeKeyName(msg.String())
	switch keyName {
	case "esc":
		cmd := a.publish(shop.ModalClosed{})
		return a, cmd
	case "enter":
		cmd := a.publish(shop.StepSubmitted{Step: shop.StepAddress})
		return a, cmd
	case "tab", "down":
		a.formFocus = (a.formFocus + 1) % 2
		return a, nil
	case "shift+tab", "up":
		a.formFocus = (a.formFocus + 1) % 2
		return a, nil
	}
	if a.formFocus == 0 {
		switch keyName {
		case "left", "h", "c":
			cmd := a.publish(shop.PaymentChanged{Payment: model.PaymentCard})
			return a, cmd
		case "right", "l", "m":
			cmd := a.publish(shop.PaymentChanged{Payment: model.PaymentCash})
			return a, cmd
		}
		return a, nil
	}
	if a.addressField.handleKey(keyName) {
		cmd := a.publish(shop.AddressChanged{Address: a.addressField.Value})
		return a, cmd
	}
	return a, nil
}

func (a App) updateContactsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := normalizeKeyName(msg.String())
	switch keyName {
	case "esc":
		cmd := a.publish(shop.ModalClosed{})
		return a, cmd
	case "enter":
		cmd := a.publish(shop.StepSubmitted{Step: shop.StepContacts})
		return a, cmd
	case "tab", "down":
		a.formFocus = (a.formFocus + 1) % 2
		return a, nil
	case "shift+tab", "up":
		a.formFocus = (a.formFocus + 1) % 2
		return a, nil
	}
	if a.formFocus == 0 {
		if a.emailField.handleKey(keyName) {
			cmd := a.publish(shop.EmailChanged{Email: a.emailField.Value})
			return a, cmd
		}
		return a, nil
	}
	if a.phoneField.handleKey(keyName) {
		cmd := a.publish(shop.PhoneChanged{Phone: a.phoneField.Value})
		return a, cmd
	}
	return a, nil
}

// visibleProducts applies the search filter to the rendered catalog.
func (a App) visibleProducts() []model.Product {
	return searchProducts(a.catalog.vm.Products, a.searchField.Value)
}

func (a *App) moveCursor(delta int) {
	count := len(a.visibleProducts())
	a.cursor += delta
	if a.cursor < 0 {
		a.cursor = 0
	}
	if a.cursor > count-1 {
		a.cursor = count - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	a.ensureCursorInWindow()
}

func (a *App) clampCursor() {
	count := len(a.visibleProducts())
	if a.cursor > count-1 {
		a.cursor = count - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	a.ensureCursorInWindow()
}

func (a *App) ensureCursorInWindow() {
	visible := a.visibleRows()
	if visible <= 0 {
		return
	}
	if a.cursor < a.topIndex {
		a.topIndex = a.cursor
	} else if a.cursor >= a.topIndex+visible {
		a.topIndex = a.cursor - visible + 1
	}
	maxTop := len(a.visibleProducts()) - visible
	if maxTop < 0 {
		maxTop = 0
	}
	if a.topIndex > maxTop {
		a.topIndex = maxTop
	}
	if a.topIndex < 0 {
		a.topIndex = 0
	}
}

func (a App) visibleRows() int {
	if a.height == 0 {
		return 10
	}
	// header + section title + box frame + status + footer
	available := a.height - 7
	if available < 3 {
		available = 3
	}
	return available
}

func (a App) View() string {
	header := a.renderHeader()
	grid := renderCatalogGrid(a.visibleProducts(), a.cursor, a.topIndex, a.visibleRows(), a.contentWidth(), a.currency, a.priceless)
	section := titleStyle.Render("Catalog") + "\n" + listBoxStyle.Width(a.contentWidth()).Render(grid)
	base := header + "\n" + section + "\n" + a.renderStatus() + "\n" + a.renderFooter()

	if !a.modal.open() {
		return base
	}
	if a.width == 0 || a.height == 0 {
		return base + "\n\n" + a.modalContent()
	}
	card := modalCardStyle.Render(a.modalContent())
	return overlayCentered(base, card, a.width, a.height)
}

func (a App) modalContent() string {
	switch a.modal.content {
	case shop.ModalPreview:
		return renderPreviewCard(a.preview.vm, a.currency, a.priceless)
	case shop.ModalBasket:
		return renderBasketCard(a.basket.vm, a.basketCursor, a.currency)
	case shop.ModalAddress:
		return renderAddressCard(a.address.vm, &a.addressField, a.formFocus)
	case shop.ModalContacts:
		return renderContactsCard(a.contacts.vm, &a.emailField, &a.phoneField, a.formFocus)
	case shop.ModalSuccess:
		return renderSuccessCard(a.success.vm, a.currency)
	}
	return ""
}

func (a App) renderHeader() string {
	left := titleStyle.Render("shopfront")
	right := fmt.Sprintf("Basket: %d", a.header.vm.Count)
	line := left + "  " + disabledStyle.Render("·") + "  " + right
	if a.width == 0 {
		return headerStyle.Render(line)
	}
	return headerStyle.Render(padRight(line, a.width-headerStyle.GetHorizontalFrameSize()))
}

func (a App) renderStatus() string {
	text := a.status
	if a.searchMode {
		text = "Search: " + a.searchField.render(true)
	} else if a.searchField.Value != "" {
		text = fmt.Sprintf("Filter: %s (%d match)", a.searchField.Value, len(a.visibleProducts()))
	}
	if a.width == 0 {
		return statusBarStyle.Render(text)
	}
	return statusBarStyle.Render(padRight(text, a.width-statusBarStyle.GetHorizontalFrameSize()))
}

func (a App) renderFooter() string {
	k := a.keys
	var text string
	switch {
	case a.modal.content == shop.ModalBasket:
		text = footerHelp(k.Up, k.Down, k.Remove, k.Checkout, k.Close)
	case a.modal.open():
		text = footerHelp(k.Enter, k.Close)
	case a.searchMode:
		text = footerHelp(k.Enter, k.Close)
	default:
		text = footerHelp(k.Up, k.Down, k.Enter, k.Basket, k.Search, k.Quit)
	}
	if a.width == 0 {
		return footerStyle.Render(text)
	}
	return footerStyle.Render(padRight(text, a.width-footerStyle.GetHorizontalFrameSize()))
}

func (a App) contentWidth() int {
	if a.width == 0 {
		return 80
	}
	width := a.width - 4
	if width < 40 {
		width = a.width
	}
	return width
}
