package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/simonhull/firebird-suite/quill/output"
	"github.com/simonhull/firebird-suite/quill/prompt"
	"github.com/simonhull/firebird-suite/quill/term"
	"github.com/spf13/cobra"
)

// AskCmd creates and returns the 'ask' command, which runs a declarative
// YAML form definition
func AskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <definition.yml>",
		Short: "Run a declarative form definition",
		Long: `Load a YAML form definition and run its fields as prompts.

Example definition:

  fields:
    - name: project
      kind: text
      message: Project name
      default: myapp
    - name: database
      kind: select
      message: Database
      options:
        - label: PostgreSQL
          value: postgres
        - label: SQLite
          value: sqlite`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading definition: %w", err)
			}

			def, err := prompt.LoadDefinition(data)
			if err != nil {
				return err
			}

			r := term.Stdin()
			defer r.Release()

			answers, err := def.Ask(r)
			if errors.Is(err, prompt.ErrCancelled) {
				output.Info("Cancelled.")
				return nil
			}
			if err != nil {
				return err
			}

			output.Success("Answers collected")
			for _, fd := range def.Fields {
				output.Step(fmt.Sprintf("%s: %v", fd.Name, answers[fd.Name]))
			}
			return nil
		},
	}

	return cmd
}
