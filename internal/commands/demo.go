package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/simonhull/firebird-suite/quill/output"
	"github.com/simonhull/firebird-suite/quill/prompt"
	"github.com/simonhull/firebird-suite/quill/spin"
	"github.com/simonhull/firebird-suite/quill/term"
	"github.com/spf13/cobra"
)

// DemoCmd creates and returns the 'demo' command, a gallery of every
// prompt kind
func DemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through every prompt kind",
		Long: `Run each quill prompt once and print the collected answers.

Cancel any prompt with Escape or Ctrl+C; the demo exits quietly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runDemo(cmd.Context())
			if errors.Is(err, prompt.ErrCancelled) {
				output.Info("Cancelled.")
				return nil
			}
			return err
		},
	}

	return cmd
}

func runDemo(ctx context.Context) error {
	r := term.Stdin()
	defer r.Release()

	name, err := prompt.Text(r, "Project name", &prompt.TextOptions{
		Default:    prompt.String("myapp"),
		Validators: []prompt.Validator[string]{prompt.NonEmpty()},
	})
	if err != nil {
		return err
	}

	port, err := prompt.Number(r, "Port", &prompt.NumberOptions{
		Default: prompt.Int(8080),
		Min:     prompt.Int(1),
		Max:     prompt.Int(65535),
	})
	if err != nil {
		return err
	}

	db, err := prompt.Select(r, "Database", []prompt.Option[string]{
		{Label: "PostgreSQL", Value: "postgres", Hint: "production default"},
		{Label: "MySQL", Value: "mysql"},
		{Label: "SQLite", Value: "sqlite", Hint: "zero setup"},
		{Label: "None", Value: "none"},
	}, nil)
	if err != nil {
		return err
	}

	features, err := prompt.MultiSelect(r, "Features", []prompt.Option[string]{
		{Label: "REST API", Value: "rest"},
		{Label: "Realtime", Value: "realtime"},
		{Label: "Auth", Value: "auth"},
		{Label: "Jobs", Value: "jobs"},
	}, &prompt.MultiSelectOptions{Min: 1})
	if err != nil {
		return err
	}

	framework, err := prompt.Autocomplete(r, "Frontend", []prompt.Option[string]{
		{Label: "React", Value: "react"},
		{Label: "Vue", Value: "vue"},
		{Label: "Svelte", Value: "svelte"},
		{Label: "HTMX", Value: "htmx"},
	}, &prompt.AutocompleteOptions[string]{
		Custom: func(raw string) (string, error) { return raw, nil },
	})
	if err != nil {
		return err
	}

	tidy, err := prompt.Confirm(r, "Run go mod tidy afterwards?", true)
	if err != nil {
		return err
	}

	if err := spin.Run(ctx, "Pretending to scaffold "+name, func(ctx context.Context) error {
		select {
		case <-time.After(1200 * time.Millisecond):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}); err != nil {
		return err
	}

	output.Success("Demo complete")
	output.Step(fmt.Sprintf("name: %s", name))
	output.Step(fmt.Sprintf("port: %d", port))
	output.Step(fmt.Sprintf("database: %s", db))
	output.Step(fmt.Sprintf("features: %v", features))
	output.Step(fmt.Sprintf("frontend: %s", framework))
	output.Step(fmt.Sprintf("tidy: %t", tidy))
	return nil
}
