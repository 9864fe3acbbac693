package registry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmptyProject is returned when the devtools marker has no project name.
var ErrEmptyProject = errors.New("empty project identifier")

// FormatOptions controls cosmetic aspects of the registry file.
type FormatOptions struct {
	// Continuation puts every implementor on its own backslash-continued line.
	Continuation bool
}

// WriteRegistry renders one "key=a,b,c" line per non-empty key.
func WriteRegistry(w io.Writer, agg *Aggregator, opts FormatOptions) error {
	bw := bufio.NewWriter(w)

	var lineErr error

	agg.Each(func(key string, impls []string) {
		if lineErr != nil || len(impls) == 0 {
			return
		}

		lineErr = writeLine(bw, key, impls, opts)
	})

	if lineErr != nil {
		return fmt.Errorf("writing registry: %w", lineErr)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing registry: %w", err)
	}

	return nil
}

func writeLine(w *bufio.Writer, key string, impls []string, opts FormatOptions) error {
	var line string
	if opts.Continuation {
		line = key + "=\\\n  " + strings.Join(impls, ",\\\n  ") + "\n"
	} else {
		line = key + "=" + strings.Join(impls, ",") + "\n"
	}

	_, err := w.WriteString(line)

	return err
}

// DevToolsMarker returns the restart exclusion line for project.
func DevToolsMarker(project string) string {
	return fmt.Sprintf("restart.exclude.%s=/%s[\\\\w-]+\\\\.jar\n", project, project)
}

// WriteDevToolsMarker writes the spring-devtools.properties line that keeps
// the project's jar out of the restart class loader.
func WriteDevToolsMarker(w io.Writer, project string) error {
	if strings.TrimSpace(project) == "" {
		return ErrEmptyProject
	}

	if _, err := io.WriteString(w, DevToolsMarker(project)); err != nil {
		return fmt.Errorf("writing devtools marker: %w", err)
	}

	return nil
}
