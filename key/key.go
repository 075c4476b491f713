package key

// Event represents a single decoded keystroke.
//
// Name is a logical identifier: "up", "down", "left", "right", "return",
// "escape", "tab", "backspace", "space", a literal character, or a
// control-letter name like "c" with Ctrl set.
type Event struct {
	// Name identifies the key pressed.
	Name string

	// Ctrl is true when the key was a control chord (Ctrl+C, Ctrl+A, ...).
	Ctrl bool

	// Meta is true when the key arrived with an ESC prefix (Alt/Meta chord).
	Meta bool

	// Shift is true for the few sequences that encode it (Shift+Tab).
	Shift bool

	// Raw holds the bytes the event was decoded from.
	Raw []byte
}

// IsReturn returns true for the Enter/Return key.
func (e Event) IsReturn() bool {
	return e.Name == "return" && !e.Ctrl
}

// IsEscape returns true for a lone Escape key press.
func (e Event) IsEscape() bool {
	return e.Name == "escape" && !e.Ctrl && !e.Meta
}

// IsBackspace returns true for Backspace or DEL.
func (e Event) IsBackspace() bool {
	return e.Name == "backspace"
}

// IsSpace returns true for the space bar.
func (e Event) IsSpace() bool {
	return e.Name == "space"
}

// IsTab returns true for Tab (Shift+Tab included).
func (e Event) IsTab() bool {
	return e.Name == "tab"
}

// IsInterrupt returns true for Ctrl+C.
func (e Event) IsInterrupt() bool {
	return e.Ctrl && e.Name == "c"
}

// IsChar returns true when the event is a plain printable character
// (single rune, no Ctrl or Meta).
func (e Event) IsChar() bool {
	if e.Ctrl || e.Meta {
		return false
	}
	switch e.Name {
	case "up", "down", "left", "right", "return", "escape", "tab",
		"backspace", "space", "delete", "home", "end", "pageup", "pagedown":
		return false
	}
	return len([]rune(e.Name)) == 1
}

// Rune returns the character for plain printable events, or 0 otherwise.
func (e Event) Rune() rune {
	if !e.IsChar() {
		return 0
	}
	return []rune(e.Name)[0]
}
