// Package diagnostic provides structured build diagnostics attached to
// program elements.
//
// Key capabilities:
//   - Validation errors for matched elements that break a rule's
//     preconditions (e.g. a @FeignClient class)
//   - Manifest and configuration problems with "did you mean" suggestions
//   - Informational records of each registration decision
package diagnostic
