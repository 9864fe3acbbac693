package manifest

import (
	"auto-factories/internal/element"
)

// CurrentVersion is the only supported manifest version.
const CurrentVersion = "1"

// Manifest is the root of an element manifest file.
type Manifest struct {
	// Version of the manifest schema.
	Version string `yaml:"version"`
	// Annotations are annotation definitions reachable from element usages.
	Annotations []ElementDef `yaml:"annotations,omitempty"`
	// Passes are the element batches of each non-terminal compilation pass.
	Passes []Pass `yaml:"passes"`
}

// Pass is one compilation pass.
type Pass struct {
	Elements []ElementDef `yaml:"elements"`
}

// ElementDef describes a program element or annotation definition.
type ElementDef struct {
	Name        string        `yaml:"name"`
	Kind        string        `yaml:"kind,omitempty"`
	Annotations StringOrArray `yaml:"annotations,omitempty"`
}

// Element converts the definition. Unknown kinds become element.KindOther.
func (d ElementDef) Element() element.Element {
	kind, _ := element.ParseKind(d.Kind)

	return element.Element{
		Name:        d.Name,
		Kind:        kind,
		Annotations: element.Usages(d.Annotations...),
	}
}

// Symbols builds the annotation symbol table.
func (m *Manifest) Symbols() *element.SymbolTable {
	defs := make([]element.Element, 0, len(m.Annotations))
	for _, a := range m.Annotations {
		defs = append(defs, a.Element())
	}

	return element.NewSymbolTable(defs...)
}

// Batches returns the elements of every pass in order.
func (m *Manifest) Batches() [][]element.Element {
	out := make([][]element.Element, 0, len(m.Passes))
	for _, p := range m.Passes {
		batch := make([]element.Element, 0, len(p.Elements))
		for _, e := range p.Elements {
			batch = append(batch, e.Element())
		}

		out = append(out, batch)
	}

	return out
}

// AnnotationNames returns every annotation name the manifest mentions,
// definitions first, in first-seen order.
func (m *Manifest) AnnotationNames() []string {
	seen := map[string]struct{}{}

	var out []string

	add := func(name string) {
		if _, ok := seen[name]; ok || name == "" {
			return
		}

		seen[name] = struct{}{}
		out = append(out, name)
	}

	for _, a := range m.Annotations {
		add(a.Name)
	}

	for _, a := range m.Annotations {
		for _, u := range a.Annotations {
			add(u)
		}
	}

	for _, p := range m.Passes {
		for _, e := range p.Elements {
			for _, u := range e.Annotations {
				add(u)
			}
		}
	}

	return out
}
