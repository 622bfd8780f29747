package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/locktext/pkg/locktext/template"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file|-]",
		Short: "Report placeholders that cannot be expanded",
		Long: `Print the key of every highlight placeholder that is missing from the
template table, one per line in document order. Exits non-zero when any
key is unresolved.

Examples:
  locktext check resume.json
  locktext --templates custom.yaml check resume.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}

			_, span := a.spans.StartExpandSpan(cmd.Context(), "scan")
			keys := a.expander().FindUnexpanded(doc)

			var result error
			if len(keys) > 0 {
				result = &template.UnresolvedError{Keys: keys}
			}
			a.spans.EndSpanWithError(span, result)

			for _, key := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return result
		},
	}
}
