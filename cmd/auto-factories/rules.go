package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newRulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the effective annotation to registry key table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ANNOTATION\tKEY\tINTERFACE ONLY")

			for _, r := range a.cfg.Rules {
				fmt.Fprintf(tw, "%s\t%s\t%t\n", r.Annotation, r.Key, r.RequireInterface)
			}

			fmt.Fprintf(tw, "\nbase namespaces: %v, max depth: %d, dedup: %s\n",
				a.cfg.BaseNamespaces, a.cfg.MaxDepth, a.cfg.DedupMode())

			return tw.Flush()
		},
	}
}
