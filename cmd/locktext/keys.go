package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/locktext/pkg/locktext/locked"
)

func newKeysCmd(a *app) *cobra.Command {
	var (
		namespace string
		withText  bool
	)

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List available template keys",
		Long: `List every key in the template table in ascending order.

Examples:
  # All keys
  locktext keys

  # Keys in one namespace, with their text
  locktext keys --namespace york --text`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keys := a.registry.Keys()
			if cmd.Flags().Changed("namespace") {
				keys = a.registry.Filter(func(key, _ string) bool {
					return locked.Namespace(key) == namespace
				})
			}

			w := cmd.OutOrStdout()
			for _, key := range keys {
				if !withText {
					fmt.Fprintln(w, key)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\n", key, a.registry.MustGet(key))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "only list keys in this namespace")
	cmd.Flags().BoolVar(&withText, "text", false, "print each key's locked text after a tab")

	return cmd
}
