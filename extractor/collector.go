package extractor

import "docmine/doctree"

// rootTypeName is the universal root of the class hierarchy. Its own methods
// never appear in extracted output.
const rootTypeName = "java.lang.Object"

// CollectMembers returns the ordered, de-duplicated callable members of t:
// declared constructors first (compiler-synthesized default constructors
// excluded), then methods gathered by walking the superclass chain from t
// upward, keyed by name+signature so that an override shadows the
// declaration it overrides. The walk stops at java.lang.Object.
func CollectMembers(p Provider, t *doctree.Type) []*doctree.Executable {
	var members []*doctree.Executable

	for _, e := range t.Executables {
		if !e.Constructor {
			continue
		}
		if isDefaultConstructor(e, t) {
			continue
		}
		members = append(members, e)
	}

	seen := make(map[string]bool)
	visited := make(map[string]bool)
	for cur := t; cur != nil && cur.QualifiedName != rootTypeName; cur = p.Superclass(cur) {
		if visited[cur.QualifiedName] {
			break
		}
		visited[cur.QualifiedName] = true

		for _, e := range cur.Executables {
			if e.Constructor || e.Synthetic {
				continue
			}
			key := e.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			members = append(members, e)
		}
	}

	return members
}

// isDefaultConstructor detects a compiler-synthesized default constructor:
// the front end assigns it the declared position of the class itself rather
// than a position of its own.
func isDefaultConstructor(e *doctree.Executable, t *doctree.Type) bool {
	if e.Position.IsZero() {
		return false
	}
	return e.Position == t.Position
}
