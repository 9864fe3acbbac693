// Package main provides the CLI entrypoint for auto-factories.
//
// auto-factories replays the compilation passes recorded in an element
// manifest and writes:
//   - META-INF/spring.factories, mapping auto-configuration keys to the
//     classes and interfaces carrying the configured annotations
//   - META-INF/spring-devtools.properties, excluding the project jar from
//     devtools restarts
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code. Cobra's own error
// printing is silenced so every failure is reported here, once.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	return 0
}
