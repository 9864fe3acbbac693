package element

import (
	"strings"
	"unicode"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind represents the kind of a program element.
type Kind int

const (
	KindOther      Kind = iota // other
	KindClass                  // class
	KindInterface              // interface
	KindAnnotation             // annotation
	KindEnum                   // enum
	KindRecord                 // record
)

// ParseKind returns the Kind named by s. The second result is false when
// s does not name a known kind.
func ParseKind(s string) (Kind, bool) {
	for k := KindOther; k <= KindRecord; k++ {
		if k.String() == strings.ToLower(strings.TrimSpace(s)) {
			return k, true
		}
	}

	return KindOther, false
}

// Usage is an annotation applied to an element.
type Usage struct {
	Name string // fully-qualified name of the annotation definition
}

// Namespace returns the package part of the usage name.
func (u Usage) Namespace() string {
	return Namespace(u.Name)
}

// Element is an opaque handle to a compiled-program construct.
type Element struct {
	Name        string  // fully-qualified name, e.g. "com.example.AppConfig"
	Kind        Kind    // class, interface, annotation, ...
	Annotations []Usage // directly applied annotations, in source order
}

// String returns the element name.
func (e *Element) String() string {
	return e.Name
}

// IsInterface returns true if the element is an interface.
func (e *Element) IsInterface() bool {
	return e.Kind == KindInterface
}

// ValidName reports whether name can be written into a registry line. The
// list separator, the key separator, the line continuation and whitespace
// would all change how the line is read back.
func ValidName(name string) bool {
	return name != "" && !strings.ContainsAny(name, ",=\\") && strings.IndexFunc(name, unicode.IsSpace) < 0
}

// Eligible reports whether an element is a class or interface and should
// be inspected for annotations. Fields, methods, packages and annotation
// definitions are skipped.
func Eligible(e *Element) bool {
	return e != nil && (e.Kind == KindClass || e.Kind == KindInterface)
}

// Filter returns the eligible elements of a batch, preserving order.
func Filter(batch []Element) []*Element {
	var out []*Element

	for i := range batch {
		if Eligible(&batch[i]) {
			out = append(out, &batch[i])
		}
	}

	return out
}

// Namespace returns everything before the last '.' of a fully-qualified
// name, or "" if the name has no package.
func Namespace(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return ""
	}

	return name[:idx]
}

// Usages builds a Usage slice from annotation names.
func Usages(names ...string) []Usage {
	out := make([]Usage, 0, len(names))
	for _, n := range names {
		out = append(out, Usage{Name: n})
	}

	return out
}
