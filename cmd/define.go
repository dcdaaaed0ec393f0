package cmd

import (
	"fmt"
	"os"

	"github.com/ohler55/ojg/pretty"
	"github.com/spf13/cobra"

	"github.com/agentic-research/topoc/internal/classdef"
	"github.com/agentic-research/topoc/internal/session"
)

var defineOut string

var defineCmd = &cobra.Command{
	Use:   "define [classes.yaml]",
	Short: "Define classes from a topology configuration and dump the registry as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		sess := session.New(debugSink())
		if err := sess.Run(data); err != nil {
			return fmt.Errorf("pre-process %s: %w", args[0], err)
		}

		out := pretty.JSON(registryDump(sess.Registry()), 100.3)
		if defineOut != "" {
			return os.WriteFile(defineOut, []byte(out+"\n"), 0o644)
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	defineCmd.Flags().StringVarP(&defineOut, "output", "o", "", "Write the JSON dump to a file instead of stdout")
	rootCmd.AddCommand(defineCmd)
}

// registryDump converts the registry into plain ordered values for the JSON
// printer. Unresolved tuple values are left out rather than rendered as the
// sentinel integer.
func registryDump(reg *classdef.Registry) []any {
	classes := make([]any, 0, len(reg.Classes()))
	for _, class := range reg.Classes() {
		attrs := make([]any, 0, len(class.Attributes))
		for _, attr := range class.Attributes {
			c := attr.Constraint
			m := map[string]any{
				"name": attr.Name,
				"kind": attr.Kind.String(),
				"min":  c.Min,
				"max":  c.Max,
				"mask": int64(c.Mask),
			}
			if attr.TokenRef != "" {
				m["token_ref"] = attr.TokenRef
			}
			if len(c.ValueRefs) > 0 {
				refs := make([]any, 0, len(c.ValueRefs))
				for _, ref := range c.ValueRefs {
					rm := map[string]any{"id": ref.ID, "string": ref.String}
					if ref.Resolved() {
						rm["value"] = ref.Value
					}
					refs = append(refs, rm)
				}
				m["valid_values"] = refs
			}
			attrs = append(attrs, m)
		}
		classes = append(classes, map[string]any{
			"name":       class.Name,
			"num_args":   class.NumArgs,
			"attributes": attrs,
		})
	}
	return classes
}
