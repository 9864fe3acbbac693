// Package filer writes generated resources under a build output root and
// derives the project identifier from a resource location.
//
// Files go through an afero.Fs so that callers and tests can swap the OS
// filesystem for an in-memory one.
package filer
