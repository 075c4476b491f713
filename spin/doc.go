// Package spin shows a progress spinner around work that runs between
// prompts.
//
// # Overview
//
// Interactive flows often do slow things with the answers they just
// collected (module downloads, scaffolding, migrations). Run wraps such a
// step with a spinner and a ✔/✖ result line so the terminal never looks
// stalled.
//
// # Usage
//
//	err := spin.Run(ctx, "Fetching templates", func(ctx context.Context) error {
//		return fetchTemplates(ctx)
//	})
package spin
