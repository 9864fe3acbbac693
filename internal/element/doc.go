// Package element provides the in-memory model of the program elements
// handed to the generator by the host compilation.
//
// Key types:
//   - Element: a class, interface or annotation definition with its
//     ordered annotation usages
//   - Usage: a reference to an annotation definition by fully-qualified name
//   - SymbolTable: annotation definitions keyed by name, used to follow
//     meta-annotations
package element
