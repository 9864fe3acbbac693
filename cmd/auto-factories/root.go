package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"auto-factories/internal/config"
	"auto-factories/internal/diagnostic"
	"auto-factories/internal/logging"
	"auto-factories/internal/manifest"
	"auto-factories/internal/processor"
)

var version = "dev"

// app carries per-invocation state shared by subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:           "auto-factories",
		Short:         "Generate spring.factories from annotated elements",
		Long:          `auto-factories inspects the classes and interfaces recorded in an element manifest and writes the Spring Boot registry and devtools files for the ones carrying a configured annotation, directly or through meta-annotations.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ./auto-factories.yaml if present)")
	root.PersistentFlags().Bool("debug", false, "enable debug logging")
	root.PersistentFlags().StringP("manifest", "m", "", "element manifest (YAML)")
	_ = a.v.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))
	_ = a.v.BindPFlag("manifest", root.PersistentFlags().Lookup("manifest"))

	root.AddCommand(newGenerateCmd(a), newCheckCmd(a), newRulesCmd(a), newNormalizeCmd(a))

	return root
}

func (a *app) init(stderr io.Writer) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if _, err := os.Stat("auto-factories.yaml"); err == nil {
		a.v.SetConfigFile("auto-factories.yaml")
	}

	if a.v.ConfigFileUsed() != "" {
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	a.cfg = cfg
	a.logger = logging.New(stderr, cfg.Debug)

	return nil
}

// loadManifest loads and validates the configured manifest. Validation
// errors are printed and fail the load; the remaining diagnostics are
// returned for the caller to report alongside its own.
func (a *app) loadManifest(stderr io.Writer) (*manifest.Manifest, *diagnostic.Diagnostics, error) {
	if a.cfg.Manifest == "" {
		return nil, nil, errors.New("no manifest given (use --manifest)")
	}

	m, err := manifest.LoadFile(a.cfg.Manifest)
	if err != nil {
		return nil, nil, err
	}

	diags := manifest.Validate(m)
	if diags.HasErrors() {
		printDiagnostics(stderr, diags, false)
		return nil, nil, fmt.Errorf("invalid manifest %s: %w", a.cfg.Manifest, diags.Error())
	}

	return m, diags, nil
}

// process runs every pass of m and merges the processor's diagnostics into
// the manifest's.
func (a *app) process(m *manifest.Manifest, out processor.Output, logger *slog.Logger, diags *diagnostic.Diagnostics) (*processor.Processor, error) {
	opts := processor.OptionsFromConfig(a.cfg, logger)
	opts.KnownAnnotations = m.AnnotationNames()

	p := processor.New(m.Symbols(), out, opts)
	err := p.Run(m.Batches())

	diags.Merge(*p.Diagnostics())

	return p, err
}

func printDiagnostics(w io.Writer, d *diagnostic.Diagnostics, verbose bool) {
	for _, e := range d.All() {
		if e.Severity == diagnostic.SeverityInfo && !verbose {
			continue
		}

		fmt.Fprintf(w, "%s: %s\n", e.Severity, e)
	}
}
