package main

import (
	"github.com/spf13/cobra"

	"auto-factories/internal/manifest"
)

func newNormalizeCmd(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Print the manifest with every default spelled out",
		Long: `normalize validates the manifest and prints it with the version and every element kind filled in.
With --write the manifest file is rewritten in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, diags, err := a.loadManifest(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			printDiagnostics(cmd.ErrOrStderr(), diags, a.cfg.Debug)

			if write {
				if err := manifest.WriteFile(m, a.cfg.Manifest); err != nil {
					return err
				}

				a.logger.Info("normalized manifest", "path", a.cfg.Manifest)

				return nil
			}

			data, err := manifest.Marshal(m)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the manifest file in place")

	return cmd
}
