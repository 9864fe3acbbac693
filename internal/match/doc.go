// Package match decides whether a program element carries a target
// annotation, directly or through meta-annotations.
//
// Key functions:
//   - Matcher.Matches: transitive annotation lookup with a visited set
//   - Matcher.Explain: the annotation chain that produced a match
//   - Suggest: closest known annotation names for a misspelled one
package match
