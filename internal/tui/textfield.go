package tui

import "strings"

// textField bundles a string value with its cursor position. Form inputs
// are ASCII-oriented: one byte per column keeps cursor math trivial.
type textField struct {
	Value  string
	Cursor int
}

// handleKey processes a single key event for the field. Returns true if
// the key was consumed (printable input, backspace, or cursor movement).
func (f *textField) handleKey(keyName string) bool {
	switch keyName {
	case "backspace":
		if f.Cursor > 0 {
			f.Value = f.Value[:f.Cursor-1] + f.Value[f.Cursor:]
			f.Cursor--
		}
		return true
	case "left":
		if f.Cursor > 0 {
			f.Cursor--
		}
		return true
	case "right":
		if f.Cursor < len(f.Value) {
			f.Cursor++
		}
		return true
	case "home", "ctrl+a":
		f.Cursor = 0
		return true
	case "end", "ctrl+e":
		f.Cursor = len(f.Value)
		return true
	case "ctrl+u":
		f.Value = f.Value[f.Cursor:]
		f.Cursor = 0
		return true
	case "space":
		keyName = " "
	}
	if len(keyName) != 1 || keyName[0] < 32 || keyName[0] > 126 {
		return false
	}
	f.Value = f.Value[:f.Cursor] + keyName + f.Value[f.Cursor:]
	f.Cursor++
	return true
}

// render returns the text with a cursor marker at the current position.
func (f *textField) render(focused bool) string {
	if !focused {
		return f.Value
	}
	if f.Cursor >= len(f.Value) {
		return f.Value + "█"
	}
	return f.Value[:f.Cursor] + "█" + f.Value[f.Cursor+1:]
}

// set replaces the value and places the cursor at the end.
func (f *textField) set(value string) {
	f.Value = value
	f.Cursor = len(value)
}

// normalizeKeyName folds tea key names into the spellings handleKey
// expects.
func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	s := strings.TrimSpace(k)
	if s == "" {
		return ""
	}
	if len(s) > 1 {
		s = strings.ToLower(s)
	}
	return s
}
