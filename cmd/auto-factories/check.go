package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"auto-factories/internal/logging"
	"auto-factories/internal/registry"
)

// checkRoot is a placeholder output root that always yields a project name.
const checkRoot = "/check/project/build/classes/"

// nopOutput accepts the terminal pass without touching the filesystem.
type nopOutput struct{}

func (nopOutput) Location(rel string) (string, error) {
	return "file://" + checkRoot + rel, nil
}

func (nopOutput) WriteResource(string, []byte) error {
	return nil
}

func (nopOutput) Remove(string) error {
	return nil
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the manifest and print the registry without writing files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, diags, err := a.loadManifest(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			logger := logging.Discard()
			if a.cfg.Debug {
				logger = a.logger
			}

			p, err := a.process(m, nopOutput{}, logger, diags)

			printDiagnostics(cmd.ErrOrStderr(), diags, a.cfg.Debug)

			if err != nil {
				return err
			}

			if err := registry.WriteRegistry(cmd.OutOrStdout(), p.Aggregator(), a.cfg.FormatOptions()); err != nil {
				return err
			}

			if diags.HasErrors() {
				return fmt.Errorf("check failed: %w", diags.Error())
			}

			return nil
		},
	}
}
