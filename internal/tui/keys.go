package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Basket   key.Binding
	Search   key.Binding
	Remove   key.Binding
	Checkout key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Basket:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "basket")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Remove:   key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "remove")),
		Checkout: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "checkout")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// footerHelp renders "key desc" pairs for the footer line.
func footerHelp(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, boldKey(help.Key)+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func boldKey(text string) string {
	if text == "" {
		return ""
	}
	return "\x1b[1m" + text + "\x1b[22m"
}
