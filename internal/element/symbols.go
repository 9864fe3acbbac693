package element

import "sort"

// SymbolTable holds annotation definitions keyed by fully-qualified name.
type SymbolTable struct {
	defs map[string]*Element
}

// NewSymbolTable creates a table from the given annotation definitions.
// Later definitions with the same name replace earlier ones.
func NewSymbolTable(defs ...Element) *SymbolTable {
	t := &SymbolTable{defs: make(map[string]*Element, len(defs))}
	for i := range defs {
		t.Define(defs[i])
	}

	return t
}

// Define adds or replaces an annotation definition.
func (t *SymbolTable) Define(def Element) {
	if def.Kind == KindOther {
		def.Kind = KindAnnotation
	}

	t.defs[def.Name] = &def
}

// Lookup returns the definition for name, or nil if it is unknown.
func (t *SymbolTable) Lookup(name string) *Element {
	if t == nil {
		return nil
	}

	return t.defs[name]
}

// Len returns the number of definitions.
func (t *SymbolTable) Len() int {
	if t == nil {
		return 0
	}

	return len(t.defs)
}

// Names returns all defined annotation names, sorted.
func (t *SymbolTable) Names() []string {
	if t == nil {
		return nil
	}

	names := make([]string, 0, len(t.defs))
	for n := range t.defs {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}
