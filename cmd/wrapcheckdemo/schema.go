package main

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/gogpu/wrapcheck/style"
)

const schemaID = "https://github.com/gogpu/wrapcheck/window.schema.json"

// hexPattern matches the color forms paint.ParseHex accepts.
const hexPattern = `^#?([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`

// windowSchema returns the JSON schema of window files. Every field is
// optional since the file is decoded over the defaults.
func windowSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:               "yaml",
		RequiredFromJSONSchemaTags: true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == reflect.TypeFor[style.Color]() {
				return &jsonschema.Schema{
					Type:        "string",
					Pattern:     hexPattern,
					Description: "hex color: #rgb, #rgba, #rrggbb or #rrggbbaa",
				}
			}
			return nil
		},
	}
	s := r.Reflect(&Window{})
	s.ID = schemaID
	s.Title = "wrapcheckdemo window"
	s.Description = "A column of word-wrapping check boxes rendered by wrapcheckdemo"
	return s
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of window files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := json.MarshalIndent(windowSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("wrapcheckdemo: marshal schema: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
