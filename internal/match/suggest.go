package match

import (
	"sort"
	"strings"

	"auto-factories/internal/element"
)

// MinSuggestionScore is the lowest similarity reported by Suggest.
const MinSuggestionScore = 0.8

// simpleNameWeight is the share of the score taken by the simple name. A
// typo in the simple name is the common mistake; namespaces mostly tell
// unrelated annotations with similar simple names apart.
const simpleNameWeight = 0.75

// Suggest returns up to n candidates most similar to name, best first.
// Exact matches and candidates scoring below MinSuggestionScore are
// dropped. n <= 0 returns every candidate above the threshold.
func Suggest(name string, candidates []string, n int) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if c == name {
			continue
		}

		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}

		score := Similarity(name, c)
		if score < MinSuggestionScore {
			continue
		}

		ranked = append(ranked, scored{name: c, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.name)
	}

	return out
}

// Similarity scores two fully-qualified annotation names between 0 and 1.
// Simple names are compared ignoring case and weigh more than namespaces.
func Similarity(a, b string) float64 {
	nsA, nsB := element.Namespace(a), element.Namespace(b)
	simpleA, simpleB := simpleName(a), simpleName(b)

	simple := ratio(strings.ToLower(simpleA), strings.ToLower(simpleB))

	return simpleNameWeight*simple + (1-simpleNameWeight)*ratio(nsA, nsB)
}

func simpleName(name string) string {
	return name[strings.LastIndexByte(name, '.')+1:]
}

// ratio is 1 minus the edit distance scaled by the longer input.
func ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)

	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1
	}

	return 1 - float64(editDistance(ra, rb))/float64(longest)
}

// editDistance counts single-rune insertions, deletions and substitutions
// turning a into b, keeping one row of the table.
func editDistance(a, b []rune) int {
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i, ca := range a {
		diag := row[0]
		row[0] = i + 1

		for j, cb := range b {
			up := row[j+1]

			cost := 1
			if ca == cb {
				cost = 0
			}

			row[j+1] = min(up+1, row[j]+1, diag+cost)
			diag = up
		}
	}

	return row[len(b)]
}
