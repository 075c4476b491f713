// Package output provides styled status output for quill and the tools
// that embed it.
//
// # Overview
//
// All tools in the Firebird Suite (Firebird, Talon, Hornbill, Plume, etc.)
// print status through this package for consistent, delightful UX. Quill's
// prompts use its mark styles for re-prompt error lines.
//
// # Usage
//
//	output.Success("Value accepted")
//	output.Error("Something went wrong")
//	output.Info("Next steps:")
//	output.Step("run the generator")
//
// # Verbose Mode
//
// Enable verbose output for debugging:
//
//	output.SetVerbose(true)
//	output.Verbose("only prints when enabled")
//
// # Styling
//
// The package uses lipgloss for terminal styling but abstracts the details
// away from callers:
//   - Success: ✔ green bold
//   - Error: ✖ red bold
//   - Info: cyan
//   - Step: indented gray
//   - Verbose: gray (when enabled)
package output
