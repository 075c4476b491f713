package prompt

import (
	"fmt"

	"github.com/simonhull/firebird-suite/quill/term"
	"gopkg.in/yaml.v3"
)

// Definition is a declarative form loaded from YAML. The upstream
// schema-to-runtime builder hands these to quill; each field compiles to a
// concrete prompt.
//
// Example definition:
//
//	fields:
//	  - name: project
//	    kind: text
//	    message: Project name
//	    default: myapp
//	  - name: database
//	    kind: select
//	    message: Database
//	    options:
//	      - label: PostgreSQL
//	        value: postgres
//	      - label: SQLite
//	        value: sqlite
type Definition struct {
	Fields []FieldDefinition `yaml:"fields"`
}

// FieldDefinition is one declarative field.
type FieldDefinition struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Message string `yaml:"message"`
	Default string `yaml:"default"`
	Min     int    `yaml:"min"`
	Max     int    `yaml:"max"`

	Options []OptionDefinition `yaml:"options"`
}

// OptionDefinition is one declarative select/multiselect option.
type OptionDefinition struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Hint  string `yaml:"hint"`
}

// LoadDefinition parses a YAML form definition and validates it.
func LoadDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing form definition: %w", err)
	}

	if len(def.Fields) == 0 {
		return nil, fmt.Errorf("form definition has no fields")
	}

	seen := map[string]bool{}
	for i, f := range def.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field %d: name is required", i)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("field %q: duplicate name", f.Name)
		}
		seen[f.Name] = true
		if f.Message == "" {
			return nil, fmt.Errorf("field %q: message is required", f.Name)
		}

		switch f.Kind {
		case "text", "password", "number", "confirm", "list":
		case "select", "multiselect":
			if len(f.Options) == 0 {
				return nil, fmt.Errorf("field %q: %s requires options", f.Name, f.Kind)
			}
		default:
			return nil, fmt.Errorf("field %q: unknown kind %q", f.Name, f.Kind)
		}
	}

	return &def, nil
}

// Compile turns the definition into runnable form fields.
func (d *Definition) Compile() []Field {
	fields := make([]Field, 0, len(d.Fields))
	for _, fd := range d.Fields {
		fields = append(fields, compileField(fd))
	}
	return fields
}

// Ask compiles the definition and runs the resulting form.
func (d *Definition) Ask(r *term.Reader) (map[string]any, error) {
	return Form(r, d.Compile())
}

func compileField(fd FieldDefinition) Field {
	return Field{
		Name: fd.Name,
		Run: func(r *term.Reader) (any, error) {
			switch fd.Kind {
			case "text":
				opts := &TextOptions{}
				if fd.Default != "" {
					opts.Default = &fd.Default
				}
				return Text(r, fd.Message, opts)

			case "password":
				return Password(r, fd.Message, nil)

			case "number":
				opts := &NumberOptions{}
				if fd.Min != 0 {
					opts.Min = &fd.Min
				}
				if fd.Max != 0 {
					opts.Max = &fd.Max
				}
				return Number(r, fd.Message, opts)

			case "confirm":
				return Confirm(r, fd.Message, fd.Default == "yes" || fd.Default == "true")

			case "list":
				return List(r, fd.Message, nil)

			case "select":
				return Select(r, fd.Message, compileOptions(fd.Options), nil)

			case "multiselect":
				return MultiSelect(r, fd.Message, compileOptions(fd.Options), &MultiSelectOptions{
					Min: fd.Min,
					Max: fd.Max,
				})

			default:
				// LoadDefinition rejects unknown kinds; this is only
				// reachable for hand-built definitions.
				return nil, fmt.Errorf("field %q: unknown kind %q", fd.Name, fd.Kind)
			}
		},
	}
}

func compileOptions(defs []OptionDefinition) []Option[string] {
	options := make([]Option[string], 0, len(defs))
	for _, od := range defs {
		value := od.Value
		if value == "" {
			value = od.Label
		}
		options = append(options, Option[string]{Label: od.Label, Value: value, Hint: od.Hint})
	}
	return options
}
