// Package key decodes raw terminal input bytes into logical key events.
//
// # Overview
//
// All tools in the Firebird Suite (Firebird, Talon, Hornbill, Plume, etc.)
// read keystrokes through this package when they need single-key input.
// Decoding is a pure function from bytes to an Event, so prompts can be
// tested without a real terminal.
//
// # Usage
//
//	ev := key.Decode([]byte{0x1b, '[', 'A'})
//	// ev.Name == "up"
//
//	ev = key.Decode([]byte{0x03})
//	// ev.Name == "c", ev.Ctrl == true (Ctrl+C)
//
// # Degradation
//
// Sequences the decoder does not recognize are returned as a literal Event
// carrying the raw bytes. Unknown input never fails; at worst it reaches the
// caller as an unhandled key, which prompts treat as a no-op.
package key
