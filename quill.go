// Package quill is the interactive terminal-prompt subsystem of the
// Firebird Suite. The concrete prompt API lives in the prompt package;
// this root package carries shared metadata.
package quill

// Version is the quill release version, shown by the demo CLI.
const Version = "0.1.0"
