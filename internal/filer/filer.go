package filer

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Output resource locations, relative to the output root.
const (
	FactoriesResource = "META-INF/spring.factories"
	DevToolsResource  = "META-INF/spring-devtools.properties"
)

// classesDir is the build output segment that the project directory sits above.
const classesDir = "classes"

// ErrProjectPath is returned when no project identifier can be derived
// from a resource location.
var ErrProjectPath = errors.New("cannot derive project from resource location")

// Filer creates resources under an output root.
type Filer struct {
	fs   afero.Fs
	root string
}

// New creates a Filer rooted at root on fs. A nil fs selects the OS filesystem.
func New(fs afero.Fs, root string) *Filer {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &Filer{fs: fs, root: filepath.Clean(root)}
}

// Root returns the output root.
func (f *Filer) Root() string {
	return f.root
}

// Location returns the file URI a resource would be written to.
func (f *Filer) Location(rel string) (string, error) {
	abs, err := filepath.Abs(f.path(rel))
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", rel, err)
	}

	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}

	return u.String(), nil
}

// WriteResource writes data to rel, creating parent directories.
func (f *Filer) WriteResource(rel string, data []byte) error {
	p := f.path(rel)

	if err := f.fs.MkdirAll(filepath.Dir(p), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := afero.WriteFile(f.fs, p, data, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", rel, err)
	}

	return nil
}

// ReadResource returns the contents of rel.
func (f *Filer) ReadResource(rel string) ([]byte, error) {
	return afero.ReadFile(f.fs, f.path(rel))
}

// Remove deletes rel. A missing file is not an error.
func (f *Filer) Remove(rel string) error {
	err := f.fs.Remove(f.path(rel))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", rel, err)
	}

	return nil
}

func (f *Filer) path(rel string) string {
	return filepath.Join(f.root, filepath.FromSlash(rel))
}

// ProjectName derives the project identifier from a resource location:
// the name of the directory above the one holding "classes". Both
// build/classes/java/main (Gradle) and target/classes (Maven) layouts
// resolve to the project directory. Location may be a file URI or a path.
func ProjectName(location string) (string, error) {
	p := location
	if strings.Contains(location, "://") || strings.HasPrefix(location, "file:") {
		u, err := url.Parse(location)
		if err != nil {
			return "", fmt.Errorf("%w %q: %w", ErrProjectPath, location, err)
		}

		p = u.Path
	}

	segments := strings.Split(path.Clean(filepath.ToSlash(p)), "/")

	idx := -1
	for i, s := range segments {
		if s == classesDir {
			idx = i
			break
		}
	}

	// Need at least <project>/<build dir>/classes.
	if idx < 2 || segments[idx-2] == "" {
		return "", fmt.Errorf("%w %q", ErrProjectPath, location)
	}

	return segments[idx-2], nil
}
