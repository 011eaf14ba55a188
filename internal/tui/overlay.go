package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlayCentered composites card over the middle of base. Cells outside
// the card's footprint keep the base's content and styling, so the
// catalog stays visible around an open modal.
func overlayCentered(base, card string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	cardLines := canvasLines(placed, width, height)
	baseLines := canvasLines(base, width, height)
	out := make([]string, height)
	for i := range out {
		out[i] = mergeLine(baseLines[i], cardLines[i], width)
	}
	return strings.Join(out, "\n")
}

// canvasLines clips or pads s into exactly height lines of width columns.
func canvasLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range out {
		if i < len(lines) {
			out[i] = padLineANSI(lines[i], width)
		} else {
			out[i] = blank
		}
	}
	return out
}

// mergeLine splices the card's span of cardLine into baseLine, cutting
// base columns at ANSI-aware boundaries.
func mergeLine(baseLine, cardLine string, width int) string {
	start, end, ok := cardSpan(cardLine, width)
	if !ok {
		return baseLine
	}
	left := ansi.Truncate(baseLine, start, "")
	middle := ansi.Truncate(skipColumns(cardLine, start), end-start, "")
	right := skipColumns(baseLine, end)
	return padLineANSI(left+middle+right, width)
}

// cardSpan locates the card's columns in a placed line: everything
// between the leading and trailing padding lipgloss.Place added. A fully
// blank line carries no card content.
func cardSpan(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	end = len(strings.TrimRight(plain, " "))
	if end == 0 {
		return 0, 0, false
	}
	for start < len(plain) && plain[start] == ' ' {
		start++
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

// skipColumns drops the first cols display columns of s.
func skipColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}

func padLineANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
