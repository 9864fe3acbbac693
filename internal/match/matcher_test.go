package match

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"auto-factories/internal/element"
)

const (
	configuration = "org.springframework.context.annotation.Configuration"
	feignClient   = "org.springframework.cloud.openfeign.FeignClient"
	retention     = "java.lang.annotation.Retention"
	documented    = "java.lang.annotation.Documented"
)

func springSymbols() *element.SymbolTable {
	return element.NewSymbolTable(
		element.Element{Name: retention, Annotations: element.Usages(documented, retention)},
		element.Element{Name: documented, Annotations: element.Usages(documented, retention)},
		element.Element{Name: configuration, Annotations: element.Usages(retention, documented, "org.springframework.stereotype.Component")},
		element.Element{Name: "org.springframework.stereotype.Component", Annotations: element.Usages(retention)},
		element.Element{Name: "com.example.AutoConfig", Annotations: element.Usages(retention, configuration)},
		element.Element{Name: "com.example.Starter", Annotations: element.Usages("com.example.AutoConfig")},
	)
}

func TestMatcher_Matches(t *testing.T) {
	m := NewMatcher(springSymbols(), DefaultOptions())

	tests := []struct {
		name        string
		annotations []string
		target      string
		expected    bool
	}{
		{"direct", []string{configuration}, configuration, true},
		{"meta one level", []string{"com.example.AutoConfig"}, configuration, true},
		{"meta two levels", []string{"com.example.Starter"}, configuration, true},
		{"unrelated", []string{"com.example.Other"}, configuration, false},
		{"base namespace not entered", []string{retention}, configuration, false},
		{"no annotations", nil, configuration, false},
		{"other target", []string{"com.example.Starter"}, feignClient, false},
		{"base target direct", []string{documented}, documented, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := &element.Element{Name: "com.example.AppConfig", Kind: element.KindClass, Annotations: element.Usages(tt.annotations...)}
			assert.Equal(t, tt.expected, m.Matches(el, tt.target))
		})
	}
}

func TestMatcher_Explain(t *testing.T) {
	m := NewMatcher(springSymbols(), DefaultOptions())
	el := &element.Element{Name: "com.example.AppConfig", Kind: element.KindClass, Annotations: element.Usages("com.example.Starter")}

	assert.Equal(t, []string{"com.example.Starter", "com.example.AutoConfig", configuration}, m.Explain(el, configuration))
	assert.Nil(t, m.Explain(el, feignClient))
	assert.Nil(t, m.Explain(nil, feignClient))
	assert.Nil(t, m.Explain(el, ""))
}

func TestMatcher_Cycle(t *testing.T) {
	symbols := element.NewSymbolTable(
		element.Element{Name: "x.A", Annotations: element.Usages("x.B")},
		element.Element{Name: "x.B", Annotations: element.Usages("x.A")},
	)

	for _, depth := range []int{0, DefaultMaxDepth} {
		m := NewMatcher(symbols, Options{MaxDepth: depth})
		el := &element.Element{Name: "x.C", Kind: element.KindClass, Annotations: element.Usages("x.A")}
		assert.False(t, m.Matches(el, configuration))
	}
}

func TestMatcher_MaxDepth(t *testing.T) {
	symbols := element.NewSymbolTable(
		element.Element{Name: "x.L1", Annotations: element.Usages("x.L2")},
		element.Element{Name: "x.L2", Annotations: element.Usages("x.L3")},
		element.Element{Name: "x.L3", Annotations: element.Usages(configuration)},
	)
	el := &element.Element{Name: "x.C", Kind: element.KindClass, Annotations: element.Usages("x.L1")}

	assert.True(t, NewMatcher(symbols, Options{MaxDepth: 3}).Matches(el, configuration))
	assert.False(t, NewMatcher(symbols, Options{MaxDepth: 2}).Matches(el, configuration))
	assert.True(t, NewMatcher(symbols, Options{}).Matches(el, configuration))
}

func TestMatcher_CustomBaseNamespaces(t *testing.T) {
	symbols := element.NewSymbolTable(
		element.Element{Name: "kotlin.annotation.Wrapper", Annotations: element.Usages(configuration)},
	)
	el := &element.Element{Name: "x.C", Kind: element.KindClass, Annotations: element.Usages("kotlin.annotation.Wrapper")}

	assert.True(t, NewMatcher(symbols, DefaultOptions()).Matches(el, configuration))
	assert.False(t, NewMatcher(symbols, Options{BaseNamespaces: []string{"java.lang", "kotlin"}}).Matches(el, configuration))
}

func TestMatcher_NilSymbols(t *testing.T) {
	m := NewMatcher(nil, DefaultOptions())
	el := &element.Element{Name: "x.C", Kind: element.KindClass, Annotations: element.Usages("x.Meta", configuration)}

	assert.True(t, m.Matches(el, configuration))
	assert.False(t, m.Matches(el, feignClient))
}

func TestMatcher_ShorterPathAfterCappedBranch(t *testing.T) {
	symbols := element.NewSymbolTable(
		element.Element{Name: "x.A", Annotations: element.Usages("x.Z")},
		element.Element{Name: "x.Z", Annotations: element.Usages("x.W")},
		element.Element{Name: "x.W", Annotations: element.Usages(configuration)},
	)
	m := NewMatcher(symbols, Options{MaxDepth: 2})

	onlyZ := &element.Element{Name: "x.C", Kind: element.KindClass, Annotations: element.Usages("x.Z")}
	aThenZ := &element.Element{Name: "x.C", Kind: element.KindClass, Annotations: element.Usages("x.A", "x.Z")}

	assert.True(t, m.Matches(onlyZ, configuration))
	assert.True(t, m.Matches(aThenZ, configuration))
	assert.Equal(t, []string{"x.Z", "x.W", configuration}, m.Explain(aThenZ, configuration))
}

func TestMatcher_LongDetourBeforeDirectUsage(t *testing.T) {
	defs := []element.Element{
		{Name: "x.Z", Annotations: element.Usages("x.W")},
		{Name: "x.W", Annotations: element.Usages(configuration)},
	}

	// x.D0 -> x.D1 -> ... -> x.D14 -> x.Z reaches x.Z at the default cap.
	for i := 0; i < 15; i++ {
		next := fmt.Sprintf("x.D%d", i+1)
		if i == 14 {
			next = "x.Z"
		}

		defs = append(defs, element.Element{Name: fmt.Sprintf("x.D%d", i), Annotations: element.Usages(next)})
	}

	m := NewMatcher(element.NewSymbolTable(defs...), DefaultOptions())
	el := &element.Element{Name: "x.C", Kind: element.KindClass, Annotations: element.Usages("x.D0", "x.Z")}

	assert.True(t, m.Matches(el, configuration))
}

// reachable is a reference breadth-first search over the annotation graph
// that expands at most maxDepth levels of definitions (0 means no cap).
func reachable(symbols *element.SymbolTable, start []element.Usage, target string, base func(string) bool, maxDepth int) bool {
	frontier := start
	seen := map[string]bool{}

	for depth := 0; len(frontier) > 0; depth++ {
		for _, u := range frontier {
			if u.Name == target {
				return true
			}
		}

		if maxDepth > 0 && depth >= maxDepth {
			return false
		}

		var next []element.Usage

		for _, u := range frontier {
			if base(u.Name) || seen[u.Name] {
				continue
			}

			seen[u.Name] = true

			if def := symbols.Lookup(u.Name); def != nil {
				next = append(next, def.Annotations...)
			}
		}

		frontier = next
	}

	return false
}

func checkMatchesIffReachable(t *rapid.T, maxDepth int) {
	n := rapid.IntRange(1, 8).Draw(t, "annotations")
	names := make([]string, n)
	for i := range names {
		if rapid.Bool().Draw(t, fmt.Sprintf("base-%d", i)) {
			names[i] = fmt.Sprintf("java.lang.annotation.A%d", i)
		} else {
			names[i] = fmt.Sprintf("com.example.A%d", i)
		}
	}

	pick := rapid.SampledFrom(names)

	var defs []element.Element
	for i, name := range names {
		edges := rapid.IntRange(0, 3).Draw(t, fmt.Sprintf("edges-%d", i))
		var usages []string
		for e := 0; e < edges; e++ {
			usages = append(usages, pick.Draw(t, fmt.Sprintf("edge-%d-%d", i, e)))
		}
		defs = append(defs, element.Element{Name: name, Annotations: element.Usages(usages...)})
	}

	symbols := element.NewSymbolTable(defs...)
	target := pick.Draw(t, "target")
	direct := element.Usages(rapid.SliceOfN(pick, 1, 3).Draw(t, "direct")...)
	m := NewMatcher(symbols, Options{BaseNamespaces: DefaultBaseNamespaces, MaxDepth: maxDepth})

	expected := reachable(symbols, direct, target, m.isBase, maxDepth)
	got := m.Matches(&element.Element{Name: "com.example.Subject", Kind: element.KindClass, Annotations: direct}, target)

	if got != expected {
		t.Fatalf("MaxDepth %d: Matches = %v, reachable = %v", maxDepth, got, expected)
	}
}

func TestMatcher_MatchesIffReachable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		checkMatchesIffReachable(t, 0)
	})
}

func TestMatcher_MatchesIffReachableWithinMaxDepth(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		checkMatchesIffReachable(t, rapid.IntRange(1, 4).Draw(t, "max-depth"))
	})
}
