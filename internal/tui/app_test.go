package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/shopfront/internal/config"
	"github.com/jask/shopfront/internal/model"
	"github.com/jask/shopfront/internal/shop"
)

type fakeGateway struct {
	products  []model.Product
	total     int
	submitErr error
	orders    []shop.Order
}

func (g *fakeGateway) FetchCatalog(context.Context) []model.Product {
	return g.products
}

func (g *fakeGateway) SubmitOrder(_ context.Context, order shop.Order) (int, error) {
	g.orders = append(g.orders, order)
	if g.submitErr != nil {
		return 0, g.submitErr
	}
	return g.total, nil
}

func testConfig() config.Config {
	return config.Config{
		UI: config.UIConfig{CurrencyLabel: "synapses", PricelessText: "priceless"},
	}
}

func testProducts() []model.Product {
	p1, p2 := 100, 150
	return []model.Product{
		{ID: "p1", Title: "Gizmo", Category: "hardware", Price: &p1, Description: "A fine gizmo."},
		{ID: "p2", Title: "Widget", Category: "hardware", Price: &p2},
		{ID: "p3", Title: "Mystery", Category: "other", Price: nil},
	}
}

// apply runs a command to completion, feeding every produced message back
// into the model the way the tea runtime would.
func apply(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = apply(t, m, c)
		}
		return m
	}
	if msg == nil {
		return m
	}
	var next tea.Cmd
	m, next = m.Update(msg)
	return apply(t, m, next)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m tea.Model, keys ...string) tea.Model {
	t.Helper()
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = m.Update(keyMsg(k))
		m = apply(t, m, cmd)
	}
	return m
}

func typeInto(t *testing.T, m tea.Model, s string) tea.Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, string(r))
	}
	return m
}

func startApp(t *testing.T, gw *fakeGateway) tea.Model {
	t.Helper()
	app := NewApp(testConfig(), gw, nil)
	m := apply(t, app, app.Init())
	var cmd tea.Cmd
	m, cmd = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return apply(t, m, cmd)
}

func TestStartupShowsCatalog(t *testing.T) {
	gw := &fakeGateway{products: testProducts()}
	m := startApp(t, gw)

	view := m.View()
	require.Contains(t, view, "Gizmo")
	require.Contains(t, view, "100 synapses")
	require.Contains(t, view, "priceless")
	require.Contains(t, view, "Basket: 0")
}

func TestFullPurchaseFlow(t *testing.T) {
	gw := &fakeGateway{products: testProducts(), total: 250}
	m := startApp(t, gw)

	// add Gizmo from its preview
	m = press(t, m, "enter")
	require.Contains(t, m.View(), "A fine gizmo.")
	m = press(t, m, "enter")
	require.Contains(t, m.View(), "Basket: 1")

	// add Widget
	m = press(t, m, "down", "enter", "enter")
	require.Contains(t, m.View(), "Basket: 2")

	// open the basket and start checkout
	m = press(t, m, "b")
	require.Contains(t, m.View(), "Total: 250 synapses")
	m = press(t, m, "enter")
	require.Contains(t, m.View(), "delivery")

	// invalid submit bounces: still on the address form
	m = press(t, m, "enter")
	require.Contains(t, m.View(), "delivery")

	// pick card, fill the address, move on
	m = press(t, m, "c", "tab")
	m = typeInto(t, m, "221B Baker Street")
	m = press(t, m, "enter")
	require.Contains(t, m.View(), "contacts")

	m = typeInto(t, m, "buyer@example.com")
	m = press(t, m, "tab")
	m = typeInto(t, m, "+7 900 1234567")
	m = press(t, m, "enter")

	view := m.View()
	require.Contains(t, view, "Order placed")
	require.Contains(t, view, "Charged 250 synapses")
	require.Contains(t, view, "Basket: 0")

	require.Len(t, gw.orders, 1)
	require.Equal(t, []string{"p1", "p2"}, gw.orders[0].Items)
	require.Equal(t, 250, gw.orders[0].Total)
	require.Equal(t, model.PaymentCard, gw.orders[0].Payment)

	// dismiss the confirmation
	m = press(t, m, "enter")
	require.NotContains(t, m.View(), "Order placed")
}

func TestSubmitFailureKeepsContactsForm(t *testing.T) {
	gw := &fakeGateway{products: testProducts(), submitErr: errors.New("backend down")}
	m := startApp(t, gw)

	m = press(t, m, "enter", "enter", "b", "enter", "c", "tab")
	m = typeInto(t, m, "221B Baker Street")
	m = press(t, m, "enter")
	m = typeInto(t, m, "buyer@example.com")
	m = press(t, m, "tab")
	m = typeInto(t, m, "+7 900 1234567")
	m = press(t, m, "enter")

	view := m.View()
	require.Contains(t, view, "Order submission failed")
	require.Contains(t, view, "contacts")
	require.Contains(t, view, "Basket: 1")
	require.Len(t, gw.orders, 1)

	// the backend recovers; retry from the same form
	gw.submitErr = nil
	gw.total = 100
	m = press(t, m, "enter")
	require.Contains(t, m.View(), "Charged 100 synapses")
	require.Len(t, gw.orders, 2)
}

func TestPricelessProductNotAddable(t *testing.T) {
	gw := &fakeGateway{products: testProducts()}
	m := startApp(t, gw)

	m = press(t, m, "down", "down", "enter")
	require.Contains(t, m.View(), "Unavailable")

	m = press(t, m, "enter")
	// the disabled button swallows the press; preview stays open
	require.Contains(t, m.View(), "Unavailable")
	require.Contains(t, m.View(), "Basket: 0")

	m = press(t, m, "esc")
	require.Contains(t, m.View(), "Basket: 0")
}

func TestBasketRemoveRow(t *testing.T) {
	gw := &fakeGateway{products: testProducts()}
	m := startApp(t, gw)

	m = press(t, m, "enter", "enter")
	m = press(t, m, "down", "enter", "enter")
	m = press(t, m, "b")
	require.Contains(t, m.View(), "Total: 250 synapses")

	m = press(t, m, "x")
	view := m.View()
	// the remaining row renumbers from 1
	require.NotContains(t, view, "1. Gizmo")
	require.Contains(t, view, "1. Widget")
	require.Contains(t, view, "Total: 150 synapses")
}

func TestSearchFiltersCatalog(t *testing.T) {
	gw := &fakeGateway{products: testProducts()}
	m := startApp(t, gw)

	m = press(t, m, "/")
	m = typeInto(t, m, "widget")
	m = press(t, m, "enter")

	view := m.View()
	require.Contains(t, view, "Widget")
	require.NotContains(t, view, "Gizmo")

	// selecting acts on the filtered list
	m = press(t, m, "enter")
	require.Contains(t, m.View(), "150 synapses")
}

func TestEscClosesModalAndClearsSelection(t *testing.T) {
	gw := &fakeGateway{products: testProducts()}
	m := startApp(t, gw)

	m = press(t, m, "enter")
	require.Contains(t, m.View(), "A fine gizmo.")
	m = press(t, m, "esc")
	require.NotContains(t, m.View(), "A fine gizmo.")
	require.Contains(t, m.View(), "Basket: 0")
}

func TestEmptyBasketCannotCheckout(t *testing.T) {
	gw := &fakeGateway{products: testProducts()}
	m := startApp(t, gw)

	m = press(t, m, "b")
	require.Contains(t, m.View(), "The basket is empty")
	m = press(t, m, "enter")
	// still the basket, not the address form
	require.Contains(t, m.View(), "The basket is empty")
}

func TestQuitKey(t *testing.T) {
	gw := &fakeGateway{products: testProducts()}
	app := NewApp(testConfig(), gw, nil)
	m := apply(t, app, app.Init())

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewFitsTerminal(t *testing.T) {
	gw := &fakeGateway{products: testProducts()}
	m := startApp(t, gw)
	m = press(t, m, "enter") // open a modal so the overlay path runs

	lines := strings.Split(m.View(), "\n")
	require.LessOrEqual(t, len(lines), 30)
}
