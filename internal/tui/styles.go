package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 2)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
	listBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	categoryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	priceStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pricelessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	disabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	modalCardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	buttonStyle    = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder())
	buttonOnStyle  = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()).Foreground(lipgloss.Color("6")).Bold(true)
)
