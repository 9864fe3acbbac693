package manifest

import (
	"fmt"

	"auto-factories/internal/diagnostic"
	"auto-factories/internal/element"
)

// Validate checks the manifest for structural problems. Errors make the
// manifest unusable; warnings are informational.
func Validate(m *Manifest) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if m == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "")
		return res
	}

	if m.Version != CurrentVersion {
		res.AddError(diagnostic.CodeUnsupportedVersion,
			fmt.Sprintf("unsupported manifest version %q (want %q)", m.Version, CurrentVersion), "")
	}

	seenDefs := map[string]struct{}{}

	for i, a := range m.Annotations {
		where := fmt.Sprintf("annotations[%d]", i)
		validateDef(res, where, a)

		if a.Name == "" {
			continue
		}

		if _, ok := seenDefs[a.Name]; ok {
			res.AddError(diagnostic.CodeDuplicateDef, fmt.Sprintf("duplicate annotation definition at %s", where), a.Name)
			continue
		}

		seenDefs[a.Name] = struct{}{}
	}

	for p, pass := range m.Passes {
		seen := map[string]struct{}{}

		for i, e := range pass.Elements {
			where := fmt.Sprintf("passes[%d].elements[%d]", p, i)
			validateDef(res, where, e)

			if e.Name == "" {
				continue
			}

			if _, ok := seen[e.Name]; ok {
				res.AddWarning(diagnostic.CodeDuplicateElement, fmt.Sprintf("element listed twice in pass %d", p), e.Name)
				continue
			}

			seen[e.Name] = struct{}{}
		}
	}

	return res
}

func validateDef(res *diagnostic.Diagnostics, where string, d ElementDef) {
	if d.Name == "" {
		res.AddError(diagnostic.CodeEmptyName, fmt.Sprintf("%s has no name", where), "")
	} else if !element.ValidName(d.Name) {
		res.AddError(diagnostic.CodeInvalidName,
			fmt.Sprintf("%s name %q contains a separator or whitespace", where, d.Name), d.Name)
	}

	if _, ok := element.ParseKind(d.Kind); !ok {
		res.AddError(diagnostic.CodeUnknownKind, fmt.Sprintf("%s has unknown kind %q", where, d.Kind), d.Name)
	}

	for j, u := range d.Annotations {
		switch {
		case u == "":
			res.AddError(diagnostic.CodeEmptyName, fmt.Sprintf("%s.annotations[%d] is empty", where, j), d.Name)
		case !element.ValidName(u):
			res.AddError(diagnostic.CodeInvalidName,
				fmt.Sprintf("%s.annotations[%d] %q contains a separator or whitespace", where, j, u), d.Name)
		}
	}
}
