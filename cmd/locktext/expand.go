package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/locktext/pkg/locktext/document"
	"github.com/randalmurphal/locktext/pkg/locktext/template"
)

func newExpandCmd(a *app) *cobra.Command {
	var (
		output   string
		showDiff bool
	)

	cmd := &cobra.Command{
		Use:   "expand [file|-]",
		Short: "Expand placeholders in a resume document",
		Long: `Expand every {{namespace.segment}} highlight placeholder in a resume
document and write the result as JSON.

The document is read from the named file (.json, .yaml, .yml) or, when the
argument is "-" or omitted, as JSON from stdin. highlights_ref fields are
removed from every job. Output objects list their keys in sorted order, so
field order may differ from the input. YAML dates and other values without
a JSON form are written as their source text.

Examples:
  # Expand a file to stdout
  locktext expand resume.json

  # Expand stdin into a file, failing on unknown keys
  cat resume.json | locktext expand --strict -o expanded.json

  # Show what changed
  locktext expand resume.yaml --diff > /dev/null`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}

			out, stats := a.expander().ExpandContext(cmd.Context(), doc)

			if showDiff {
				diff, err := document.Diff(doc, out)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.ErrOrStderr(), diff)
			}

			if a.settings.Strict && len(stats.Unresolved) > 0 {
				return &template.UnresolvedError{Keys: stats.Unresolved}
			}

			return writeDocument(cmd, out, output, a.settings.Indent)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the expanded document to this file instead of stdout")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "write a line diff of the changes to stderr")
	cmd.Flags().Bool("strict", false, "fail without writing output when any placeholder is unresolved")
	_ = a.v.BindPFlag("strict", cmd.Flags().Lookup("strict"))

	return cmd
}

// readDocument reads the document named by args, or JSON from stdin.
func readDocument(cmd *cobra.Command, args []string) (document.Document, error) {
	if len(args) == 0 || args[0] == "-" {
		return document.Decode(cmd.InOrStdin(), document.FormatJSON)
	}
	return document.FromFile(args[0])
}

func writeDocument(cmd *cobra.Command, doc document.Document, path, indent string) (err error) {
	if path == "" {
		return doc.Encode(cmd.OutOrStdout(), indent)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}()
	return doc.Encode(f, indent)
}
