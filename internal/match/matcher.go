package match

import (
	"strings"

	"auto-factories/internal/element"
)

// DefaultBaseNamespaces are never traversed. Platform meta-annotations
// such as @Retention and @Target live there and annotate each other.
var DefaultBaseNamespaces = []string{"java.lang"}

// DefaultMaxDepth caps meta-annotation nesting.
const DefaultMaxDepth = 16

// Options configures a Matcher.
type Options struct {
	// BaseNamespaces are name prefixes whose definitions are not entered.
	BaseNamespaces []string
	// MaxDepth is the deepest meta-annotation level entered. 0 means no cap;
	// a name is only re-entered at a shallower level, so the search still
	// terminates on cycles.
	MaxDepth int
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		BaseNamespaces: append([]string(nil), DefaultBaseNamespaces...),
		MaxDepth:       DefaultMaxDepth,
	}
}

// Matcher resolves annotations against a symbol table.
type Matcher struct {
	symbols *element.SymbolTable
	opts    Options
}

// NewMatcher creates a Matcher. A nil table makes every usage a leaf.
func NewMatcher(symbols *element.SymbolTable, opts Options) *Matcher {
	return &Matcher{symbols: symbols, opts: opts}
}

// Matches returns true if el is annotated with target directly or through
// any chain of meta-annotations outside the base namespaces.
func (m *Matcher) Matches(el *element.Element, target string) bool {
	return m.Explain(el, target) != nil
}

// Explain returns the annotation names leading from el to target, ending
// with target, or nil if there is no match. For a direct annotation the
// result is just [target].
func (m *Matcher) Explain(el *element.Element, target string) []string {
	if el == nil || target == "" {
		return nil
	}

	// visited holds the shallowest level each definition was entered at.
	visited := make(map[string]int)

	return m.search(el.Annotations, target, 0, visited)
}

func (m *Matcher) search(usages []element.Usage, target string, depth int, visited map[string]int) []string {
	for _, u := range usages {
		if u.Name == target {
			return []string{target}
		}
	}

	if m.opts.MaxDepth > 0 && depth >= m.opts.MaxDepth {
		return nil
	}

	for _, u := range usages {
		if m.isBase(u.Name) {
			continue
		}

		// A longer branch may have reached this name close to the cap; a
		// shorter path to it gets another go with the remaining budget.
		if prev, seen := visited[u.Name]; seen && prev <= depth+1 {
			continue
		}

		visited[u.Name] = depth + 1

		def := m.symbols.Lookup(u.Name)
		if def == nil {
			continue
		}

		if chain := m.search(def.Annotations, target, depth+1, visited); chain != nil {
			return append([]string{u.Name}, chain...)
		}
	}

	return nil
}

func (m *Matcher) isBase(name string) bool {
	for _, ns := range m.opts.BaseNamespaces {
		if ns == "" {
			continue
		}

		if name == ns || strings.HasPrefix(name, ns+".") {
			return true
		}
	}

	return false
}
