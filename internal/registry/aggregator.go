package registry

import (
	"fmt"
	"slices"
)

// DedupMode controls how duplicate implementors are detected.
type DedupMode int

const (
	// DedupGlobal records an implementor under at most one key. The first
	// key it was recorded under wins.
	DedupGlobal DedupMode = iota
	// DedupPerKey only rejects an implementor already present under the
	// same key.
	DedupPerKey
)

// String returns the configuration name of the mode.
func (m DedupMode) String() string {
	switch m {
	case DedupGlobal:
		return "global"
	case DedupPerKey:
		return "per-key"
	default:
		return fmt.Sprintf("DedupMode(%d)", int(m))
	}
}

// ParseDedupMode parses "global" or "per-key". Empty selects DedupGlobal.
func ParseDedupMode(s string) (DedupMode, error) {
	switch s {
	case "", "global":
		return DedupGlobal, nil
	case "per-key":
		return DedupPerKey, nil
	default:
		return DedupGlobal, fmt.Errorf("unknown dedup mode %q (want global or per-key)", s)
	}
}

// Entry is one registry key with its implementors in recorded order.
type Entry struct {
	Key          string
	Implementors []string
}

// Aggregator is a multi-valued map from registry key to implementor names.
// It is not safe for concurrent use.
type Aggregator struct {
	mode   DedupMode
	keys   []string
	values map[string][]string
	byKey  map[string]map[string]struct{}
	all    map[string]struct{}
}

// NewAggregator creates an empty Aggregator.
func NewAggregator(mode DedupMode) *Aggregator {
	return &Aggregator{
		mode:   mode,
		values: make(map[string][]string),
		byKey:  make(map[string]map[string]struct{}),
		all:    make(map[string]struct{}),
	}
}

// Mode returns the dedup mode.
func (a *Aggregator) Mode() DedupMode {
	return a.mode
}

// Record adds implementor under key and reports whether anything changed.
func (a *Aggregator) Record(key, implementor string) bool {
	if a.mode == DedupGlobal && a.ContainsImplementor(implementor) {
		return false
	}

	set, ok := a.byKey[key]
	if !ok {
		set = make(map[string]struct{})
		a.byKey[key] = set
		a.keys = append(a.keys, key)
	}

	if _, dup := set[implementor]; dup {
		return false
	}

	set[implementor] = struct{}{}
	a.values[key] = append(a.values[key], implementor)
	a.all[implementor] = struct{}{}

	return true
}

// ContainsImplementor reports whether name was recorded under any key.
func (a *Aggregator) ContainsImplementor(name string) bool {
	_, ok := a.all[name]
	return ok
}

// KeyOf returns the first key name was recorded under.
func (a *Aggregator) KeyOf(name string) (string, bool) {
	for _, k := range a.keys {
		if _, ok := a.byKey[k][name]; ok {
			return k, true
		}
	}

	return "", false
}

// IsEmpty returns true if nothing has been recorded.
func (a *Aggregator) IsEmpty() bool {
	return len(a.all) == 0
}

// Len returns the number of (key, implementor) pairs.
func (a *Aggregator) Len() int {
	n := 0
	for _, k := range a.keys {
		n += len(a.values[k])
	}

	return n
}

// Get returns a copy of the implementors recorded under key.
func (a *Aggregator) Get(key string) []string {
	return slices.Clone(a.values[key])
}

// Entries returns all keys in insertion order with copies of their values.
func (a *Aggregator) Entries() []Entry {
	out := make([]Entry, 0, len(a.keys))
	a.Each(func(key string, impls []string) {
		out = append(out, Entry{Key: key, Implementors: impls})
	})

	return out
}

// Each calls fn for every key in insertion order.
func (a *Aggregator) Each(fn func(key string, implementors []string)) {
	for _, k := range a.keys {
		fn(k, slices.Clone(a.values[k]))
	}
}
