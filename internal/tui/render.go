package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/shopfront/internal/model"
	"github.com/jask/shopfront/internal/shop"
)

// formatPrice renders a product price with the currency label, or the
// priceless text when the product is not for sale.
func formatPrice(price *int, currency, priceless string) string {
	if price == nil {
		return priceless
	}
	return fmt.Sprintf("%d %s", *price, currency)
}

func renderCatalogGrid(products []model.Product, cursor, topIndex, visible, width int, currency, priceless string) string {
	if len(products) == 0 {
		return disabledStyle.Render("No products.")
	}
	titleWidth := 32
	categoryWidth := 18
	priceWidth := width - titleWidth - categoryWidth - 8
	if priceWidth < 10 {
		priceWidth = 10
	}

	end := topIndex + visible
	if end > len(products) {
		end = len(products)
	}
	var lines []string
	for i := topIndex; i < end; i++ {
		p := products[i]
		prefix := "  "
		title := padRight(truncate(p.Title, titleWidth), titleWidth)
		category := categoryStyle.Render(padRight(truncate(p.Category, categoryWidth), categoryWidth))
		price := formatPrice(p.Price, currency, priceless)
		if p.Price == nil {
			price = pricelessStyle.Render(price)
		} else {
			price = priceStyle.Render(price)
		}
		line := prefix + title + "  " + category + "  " + price
		if i == cursor {
			line = selectedStyle.Render("> ") + title + "  " + category + "  " + price
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderPreviewCard(vm shop.PreviewViewModel, currency, priceless string) string {
	p := vm.Product
	button := vm.ButtonLabel
	if vm.ButtonDisabled {
		button = disabledStyle.Render("[ " + button + " ]")
	} else {
		button = selectedStyle.Render("[ " + button + " ]")
	}
	lines := []string{
		titleStyle.Render(p.Title),
		categoryStyle.Render(p.Category),
		"",
		wrapText(p.Description, 48),
		"",
		formatPrice(p.Price, currency, priceless),
		"",
		button + "   " + disabledStyle.Render("esc close"),
	}
	return strings.Join(lines, "\n")
}

func renderBasketCard(vm shop.BasketViewModel, cursor int, currency string) string {
	var lines []string
	lines = append(lines, titleStyle.Render("Basket"), "")
	if len(vm.Rows) == 0 {
		lines = append(lines, disabledStyle.Render("The basket is empty."))
	}
	for i, row := range vm.Rows {
		prefix := "  "
		if i == cursor {
			prefix = selectedStyle.Render("> ")
		}
		price := formatPrice(row.Product.Price, currency, "0 "+currency)
		lines = append(lines, fmt.Sprintf("%s%d. %s  %s",
			prefix, row.Index, padRight(truncate(row.Product.Title, 32), 32), price))
	}
	lines = append(lines, "", titleStyle.Render(fmt.Sprintf("Total: %d %s", vm.Total, currency)), "")
	checkout := "[ Checkout ]"
	if vm.CanCheckout {
		checkout = selectedStyle.Render(checkout)
	} else {
		checkout = disabledStyle.Render(checkout)
	}
	lines = append(lines, checkout+"   "+disabledStyle.Render("x remove · esc close"))
	return strings.Join(lines, "\n")
}

func renderAddressCard(vm shop.AddressViewModel, address *textField, focus int) string {
	card := buttonStyle.Render("Card")
	cash := buttonStyle.Render("Cash")
	if vm.Payment == model.PaymentCard {
		card = buttonOnStyle.Render("Card")
	}
	if vm.Payment == model.PaymentCash {
		cash = buttonOnStyle.Render("Cash")
	}
	paymentRow := lipgloss.JoinHorizontal(lipgloss.Top, card, " ", cash)
	if focus == 0 {
		paymentRow = selectedStyle.Render("> ") + paymentRow
	} else {
		paymentRow = "  " + paymentRow
	}

	addrLabel := "  Address: "
	if focus == 1 {
		addrLabel = selectedStyle.Render("> ") + "Address: "
	}

	lines := []string{
		titleStyle.Render("Order — delivery"),
		"",
		paymentRow,
		"",
		addrLabel + address.render(focus == 1),
		"",
		renderFormFooter(vm.Error, vm.SubmitEnabled, "Next"),
	}
	return strings.Join(lines, "\n")
}

func renderContactsCard(vm shop.ContactsViewModel, email, phone *textField, focus int) string {
	emailLabel := "  Email: "
	phoneLabel := "  Phone: "
	if focus == 0 {
		emailLabel = selectedStyle.Render("> ") + "Email: "
	}
	if focus == 1 {
		phoneLabel = selectedStyle.Render("> ") + "Phone: "
	}
	lines := []string{
		titleStyle.Render("Order — contacts"),
		"",
		emailLabel + email.render(focus == 0),
		phoneLabel + phone.render(focus == 1),
		"",
	}
	if vm.Submitting {
		lines = append(lines, disabledStyle.Render("Submitting order…"))
	} else if vm.SubmitError != "" {
		lines = append(lines, errorStyle.Render(vm.SubmitError), "", renderFormFooter(vm.Error, vm.SubmitEnabled, "Pay"))
	} else {
		lines = append(lines, renderFormFooter(vm.Error, vm.SubmitEnabled, "Pay"))
	}
	return strings.Join(lines, "\n")
}

func renderFormFooter(errMsg string, enabled bool, submitLabel string) string {
	submit := "[ " + submitLabel + " ]"
	if enabled {
		submit = selectedStyle.Render(submit)
	} else {
		submit = disabledStyle.Render(submit)
	}
	footer := submit + "   " + disabledStyle.Render("enter submit · esc close")
	if errMsg != "" {
		return errorStyle.Render(errMsg) + "\n\n" + footer
	}
	return footer
}

func renderSuccessCard(vm shop.SuccessViewModel, currency string) string {
	return strings.Join([]string{
		titleStyle.Render("Order placed"),
		"",
		fmt.Sprintf("Charged %d %s", vm.Total, currency),
		"",
		selectedStyle.Render("[ Back to shopping ]"),
	}, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	var lines []string
	var line string
	for _, w := range words {
		if line == "" {
			line = w
			continue
		}
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
