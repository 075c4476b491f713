package key

import "unicode/utf8"

const esc = 0x1b

// csiNames maps the final byte of a CSI sequence (ESC [ ...) to a key name.
var csiNames = map[byte]string{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
	'H': "home",
	'F': "end",
}

// tildeNames maps the parameter of a CSI ~ sequence (ESC [ n ~) to a key name.
var tildeNames = map[byte]string{
	'1': "home",
	'3': "delete",
	'4': "end",
	'5': "pageup",
	'6': "pagedown",
}

// Decode turns one chunk of raw terminal input into a key event.
//
// Decoding priority follows what terminals actually emit: escape sequences
// first (CSI and SS3 arrow forms), then the single-byte specials (return,
// escape, space, backspace, tab), then control chords (0x01-0x1a as a
// lowercase letter with Ctrl set), and finally literal characters. Anything
// unrecognized comes back as a literal event carrying the raw bytes.
func Decode(raw []byte) Event {
	if len(raw) == 0 {
		return Event{Name: "", Raw: raw}
	}

	if raw[0] == esc {
		return decodeEscape(raw)
	}

	switch raw[0] {
	case '\r', '\n':
		return Event{Name: "return", Raw: raw}
	case ' ':
		return Event{Name: "space", Raw: raw}
	case 0x7f, 0x08:
		return Event{Name: "backspace", Raw: raw}
	case '\t':
		return Event{Name: "tab", Raw: raw}
	}

	// Remaining control bytes map to Ctrl+letter (0x01 = Ctrl+A ... 0x1a = Ctrl+Z).
	if raw[0] >= 0x01 && raw[0] <= 0x1a {
		return Event{Name: string(rune('a' + raw[0] - 1)), Ctrl: true, Raw: raw}
	}

	// A single printable rune is a literal key.
	if r, size := utf8.DecodeRune(raw); r != utf8.RuneError && size == len(raw) {
		return Event{Name: string(r), Raw: raw}
	}

	// Fall back to the raw bytes as a literal rather than failing.
	return Event{Name: string(raw), Raw: raw}
}

// decodeEscape handles input starting with ESC: lone escape, CSI and SS3
// sequences, and Meta chords (ESC followed by a printable character).
func decodeEscape(raw []byte) Event {
	if len(raw) == 1 {
		return Event{Name: "escape", Raw: raw}
	}

	switch raw[1] {
	case '[':
		return decodeCSI(raw)
	case 'O':
		// SS3 form (ESC O A), emitted for arrows in application mode.
		if len(raw) >= 3 {
			if name, ok := csiNames[raw[2]]; ok {
				return Event{Name: name, Raw: raw}
			}
		}
	default:
		// ESC prefix on an ordinary key is a Meta chord.
		inner := Decode(raw[1:])
		inner.Meta = true
		inner.Raw = raw
		return inner
	}

	return Event{Name: string(raw), Raw: raw}
}

func decodeCSI(raw []byte) Event {
	if len(raw) < 3 {
		return Event{Name: string(raw), Raw: raw}
	}

	if name, ok := csiNames[raw[2]]; ok {
		return Event{Name: name, Raw: raw}
	}

	// Shift+Tab arrives as ESC [ Z.
	if raw[2] == 'Z' {
		return Event{Name: "tab", Shift: true, Raw: raw}
	}

	// ESC [ n ~ forms (delete, home/end, page keys).
	if len(raw) >= 4 && raw[len(raw)-1] == '~' {
		if name, ok := tildeNames[raw[2]]; ok {
			return Event{Name: name, Raw: raw}
		}
	}

	return Event{Name: string(raw), Raw: raw}
}
