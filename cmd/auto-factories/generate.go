package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"auto-factories/internal/filer"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write spring.factories and spring-devtools.properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, diags, err := a.loadManifest(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			p, runErr := a.process(m, filer.New(nil, a.cfg.Output), a.logger, diags)

			printDiagnostics(cmd.ErrOrStderr(), diags, a.cfg.Debug)

			if runErr != nil {
				return runErr
			}

			res := p.Result()
			for _, f := range res.Files {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f)
			}

			if len(res.Files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to register")
			}

			if diags.HasErrors() {
				return fmt.Errorf("generation reported errors: %w", diags.Error())
			}

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "build output root (default build/classes/java/main)")
	cmd.Flags().Bool("continuation", false, "put each implementor on its own line")
	_ = a.v.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = a.v.BindPFlag("continuation", cmd.Flags().Lookup("continuation"))

	return cmd
}
