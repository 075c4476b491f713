package prompt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/quill/prompt"
)

const projectDefinition = `
fields:
  - name: project
    kind: text
    message: Project name
    default: myapp
  - name: port
    kind: number
    message: Port
    min: 1
    max: 65535
  - name: tidy
    kind: confirm
    message: Run go mod tidy?
    default: "yes"
  - name: database
    kind: select
    message: Database
    options:
      - label: PostgreSQL
        value: postgres
      - label: SQLite
        value: sqlite
`

func TestLoadDefinition(t *testing.T) {
	def, err := prompt.LoadDefinition([]byte(projectDefinition))
	require.NoError(t, err)
	require.Len(t, def.Fields, 4)

	assert.Equal(t, "project", def.Fields[0].Name)
	assert.Equal(t, "text", def.Fields[0].Kind)
	assert.Equal(t, "myapp", def.Fields[0].Default)
	assert.Equal(t, 1, def.Fields[1].Min)
	assert.Equal(t, 65535, def.Fields[1].Max)
	assert.Equal(t, "postgres", def.Fields[3].Options[0].Value)
}

func TestLoadDefinition_Rejections(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"not yaml", "{{nope", "parsing form definition"},
		{"no fields", "fields: []", "no fields"},
		{"missing name", "fields:\n  - kind: text\n    message: X", "name is required"},
		{"missing message", "fields:\n  - name: a\n    kind: text", "message is required"},
		{"unknown kind", "fields:\n  - name: a\n    kind: slider\n    message: X", "unknown kind"},
		{"select without options", "fields:\n  - name: a\n    kind: select\n    message: X", "requires options"},
		{"duplicate names", "fields:\n  - name: a\n    kind: text\n    message: X\n  - name: a\n    kind: text\n    message: Y", "duplicate name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := prompt.LoadDefinition([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDefinition_AskRunsCompiledForm(t *testing.T) {
	def, err := prompt.LoadDefinition([]byte(projectDefinition))
	require.NoError(t, err)

	// Non-interactive: text takes the default, number parses, confirm takes
	// its default, select degrades to a numbered list.
	r, _ := lineReader("\n8080\n\n2\n")

	answers, err := def.Ask(r)
	require.NoError(t, err)

	assert.Equal(t, "myapp", answers["project"])
	assert.Equal(t, 8080, answers["port"])
	assert.Equal(t, true, answers["tidy"])
	assert.Equal(t, "sqlite", answers["database"])
}

func TestDefinition_OptionValueDefaultsToLabel(t *testing.T) {
	def, err := prompt.LoadDefinition([]byte(`
fields:
  - name: color
    kind: select
    message: Color
    options:
      - label: red
      - label: blue
`))
	require.NoError(t, err)

	r, _ := lineReader("1\n")
	answers, err := def.Ask(r)
	require.NoError(t, err)
	assert.Equal(t, "red", answers["color"])
}
