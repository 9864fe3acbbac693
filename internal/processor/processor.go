package processor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"auto-factories/internal/config"
	"auto-factories/internal/diagnostic"
	"auto-factories/internal/element"
	"auto-factories/internal/filer"
	"auto-factories/internal/logging"
	"auto-factories/internal/match"
	"auto-factories/internal/registry"
)

var (
	// ErrFinalize wraps every error raised while writing output.
	ErrFinalize = errors.New("generating factories files")
	// ErrAlreadyFinalized is returned for passes after the terminal one.
	ErrAlreadyFinalized = errors.New("processor already finalized")
)

// maxSuggestions bounds "did you mean" hints for unused rules.
const maxSuggestions = 3

// Output creates resources under the build output root.
type Output interface {
	Location(rel string) (string, error)
	WriteResource(rel string, data []byte) error
	Remove(rel string) error
}

// Options configures a Processor.
type Options struct {
	Rules  []config.Rule
	Match  match.Options
	Dedup  registry.DedupMode
	Format registry.FormatOptions
	Logger *slog.Logger
	// KnownAnnotations are names the build is known to use besides those
	// seen on elements. They feed "did you mean" hints for unused rules.
	KnownAnnotations []string
}

// OptionsFromConfig builds Options from a loaded Config.
func OptionsFromConfig(cfg *config.Config, logger *slog.Logger) Options {
	return Options{
		Rules:  cfg.Rules,
		Match:  cfg.MatchOptions(),
		Dedup:  cfg.DedupMode(),
		Format: cfg.FormatOptions(),
		Logger: logger,
	}
}

// Result summarizes a finished run.
type Result struct {
	Entries []registry.Entry
	Project string
	Files   []string
}

// Processor collects annotated elements across passes and writes the
// registry on the terminal pass.
type Processor struct {
	opts    Options
	symbols *element.SymbolTable
	matcher *match.Matcher
	agg     *registry.Aggregator
	out     Output
	log     *slog.Logger
	diags   diagnostic.Diagnostics

	state    State
	passes   int
	seen     map[string]struct{} // annotation names observed on elements
	used     map[string]struct{} // rule annotations that matched something
	rejected map[string]struct{} // elements already reported invalid
	result   Result
}

// New creates a Processor. Rules default to config.DefaultRules.
func New(symbols *element.SymbolTable, out Output, opts Options) *Processor {
	if len(opts.Rules) == 0 {
		opts.Rules = config.DefaultRules()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &Processor{
		opts:     opts,
		symbols:  symbols,
		matcher:  match.NewMatcher(symbols, opts.Match),
		agg:      registry.NewAggregator(opts.Dedup),
		out:      out,
		log:      logger,
		seen:     make(map[string]struct{}),
		used:     make(map[string]struct{}),
		rejected: make(map[string]struct{}),
	}
}

// State returns the current lifecycle state.
func (p *Processor) State() State {
	return p.state
}

// Aggregator returns the collected registry entries.
func (p *Processor) Aggregator() *registry.Aggregator {
	return p.agg
}

// Diagnostics returns the diagnostics reported so far.
func (p *Processor) Diagnostics() *diagnostic.Diagnostics {
	return &p.diags
}

// Result returns the outcome of the terminal pass.
func (p *Processor) Result() Result {
	res := p.result
	res.Entries = p.agg.Entries()

	return res
}

// Run feeds every batch as a non-terminal pass, then runs the terminal pass.
func (p *Processor) Run(batches [][]element.Element) error {
	for _, b := range batches {
		if err := p.Process(b, false); err != nil {
			return err
		}
	}

	return p.Process(nil, true)
}

// Process handles one compilation pass. On the terminal pass the batch is
// ignored and output is written if anything was recorded.
func (p *Processor) Process(batch []element.Element, final bool) error {
	if p.state.Terminal() {
		return ErrAlreadyFinalized
	}

	if final {
		return p.finalize()
	}

	p.passes++
	p.collect(batch)

	return nil
}

func (p *Processor) collect(batch []element.Element) {
	log := p.log.With("pass", p.passes)

	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("all elements", "batch", spew.Sdump(batch))
	}

	for i := range batch {
		for _, u := range batch[i].Annotations {
			p.seen[u.Name] = struct{}{}
		}
	}

	eligible := element.Filter(batch)
	if len(eligible) == 0 {
		log.Debug("no class or interface elements")
		return
	}

	for _, el := range eligible {
		for _, rule := range p.opts.Rules {
			chain := p.matcher.Explain(el, rule.Annotation)
			if chain == nil {
				continue
			}

			p.used[rule.Annotation] = struct{}{}
			log.Debug("found annotated element", "element", el.Name, "annotation", rule.Annotation,
				"via", strings.Join(chain, " -> "))
			p.apply(log, el, rule)

			break
		}
	}
}

func (p *Processor) apply(log *slog.Logger, el *element.Element, rule config.Rule) {
	if !element.ValidName(el.Name) {
		if _, reported := p.rejected[el.Name]; !reported {
			p.rejected[el.Name] = struct{}{}
			p.diags.AddError(diagnostic.CodeInvalidName,
				fmt.Sprintf("%s name %q contains a separator or whitespace", el.Kind, el.Name), el.Name)
			log.Error("rejected element", "element", el.Name, "annotation", rule.Annotation)
		}

		return
	}

	if rule.RequireInterface && !el.IsInterface() {
		if _, reported := p.rejected[el.Name]; !reported {
			p.rejected[el.Name] = struct{}{}
			p.diags.AddError(diagnostic.CodeNotAnInterface,
				fmt.Sprintf("@%s %s %s is not an interface", shortName(rule.Annotation), el.Kind, el.Name), el.Name)
			log.Error("rejected element", "element", el.Name, "annotation", rule.Annotation)
		}

		return
	}

	if !p.agg.Record(rule.Key, el.Name) {
		key := rule.Key
		if p.agg.Mode() == registry.DedupGlobal {
			key, _ = p.agg.KeyOf(el.Name)
		}

		p.diags.AddInfo(diagnostic.CodeAlreadyRegistered, "already registered under "+key, el.Name)
		log.Debug("already registered", "key", key, "element", el.Name)

		return
	}

	p.diags.AddInfo(diagnostic.CodeRegistered, "registered under "+rule.Key, el.Name)
	log.Debug("registered", "key", rule.Key, "element", el.Name)
}

func (p *Processor) finalize() error {
	p.state = StateFinalizing
	p.reportUnusedRules()

	if p.agg.IsEmpty() {
		p.log.Debug("nothing to register, no files written")
		p.state = StateDone

		return nil
	}

	var factories bytes.Buffer
	if err := registry.WriteRegistry(&factories, p.agg, p.opts.Format); err != nil {
		return p.fail(err)
	}

	location, err := p.out.Location(filer.FactoriesResource)
	if err != nil {
		return p.fail(err)
	}

	project, err := filer.ProjectName(location)
	if err != nil {
		return p.fail(err)
	}

	var devtools bytes.Buffer
	if err := registry.WriteDevToolsMarker(&devtools, project); err != nil {
		return p.fail(err)
	}

	if err := p.out.WriteResource(filer.FactoriesResource, factories.Bytes()); err != nil {
		return p.fail(err)
	}

	if err := p.out.WriteResource(filer.DevToolsResource, devtools.Bytes()); err != nil {
		if rmErr := p.out.Remove(filer.FactoriesResource); rmErr != nil {
			err = errors.Join(err, rmErr)
		}

		return p.fail(err)
	}

	p.result.Project = project
	p.result.Files = []string{filer.FactoriesResource, filer.DevToolsResource}
	p.state = StateDone

	p.log.Info("wrote factories", "project", project, "entries", p.agg.Len(), "location", location)

	return nil
}

func (p *Processor) fail(err error) error {
	p.state = StateFailed
	p.log.Error("generation failed", "error", err)

	return fmt.Errorf("%w: %w", ErrFinalize, err)
}

// reportUnusedRules warns about rules whose annotation never showed up,
// which usually means a misspelled annotation name.
func (p *Processor) reportUnusedRules() {
	known := make(map[string]struct{}, len(p.seen)+len(p.opts.KnownAnnotations))
	candidates := p.symbols.Names()

	for _, name := range candidates {
		known[name] = struct{}{}
	}

	for _, name := range p.opts.KnownAnnotations {
		if _, ok := known[name]; !ok && name != "" {
			known[name] = struct{}{}
			candidates = append(candidates, name)
		}
	}

	for name := range p.seen {
		if _, ok := known[name]; !ok {
			known[name] = struct{}{}
			candidates = append(candidates, name)
		}
	}

	for _, rule := range p.opts.Rules {
		if _, ok := p.used[rule.Annotation]; ok {
			continue
		}

		if _, ok := known[rule.Annotation]; ok {
			continue
		}

		suggestions := match.Suggest(rule.Annotation, candidates, maxSuggestions)
		if len(suggestions) == 0 {
			continue
		}

		p.diags.AddWarning(diagnostic.CodeUnusedRule, "rule annotation never observed", rule.Annotation, suggestions...)
	}
}

func shortName(fqn string) string {
	if i := strings.LastIndexByte(fqn, '.'); i >= 0 {
		return fqn[i+1:]
	}

	return fqn
}
