package doctree

import (
	"fmt"

	"docmine/javadoc"
)

// Registry holds the declaration tree for one extraction run. Types are
// registered by qualified name; superclass and interface links resolve
// through the registry, and unresolvable names act as chain ends.
type Registry struct {
	types map[string]*Type
	names []string // registration order
}

func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*Type)}
}

// Add registers a type and wires the back pointers of its executables.
func (r *Registry) Add(t *Type) error {
	if t == nil {
		return fmt.Errorf("doctree: cannot register nil type")
	}
	if t.QualifiedName == "" {
		return fmt.Errorf("doctree: cannot register type without qualified name")
	}
	if _, ok := r.types[t.QualifiedName]; ok {
		return fmt.Errorf("doctree: type %s already registered", t.QualifiedName)
	}
	for _, e := range t.Executables {
		e.declaring = t
	}
	r.types[t.QualifiedName] = t
	r.names = append(r.names, t.QualifiedName)
	return nil
}

// Lookup returns the registered type with the given qualified name, or nil.
func (r *Registry) Lookup(qualifiedName string) *Type {
	return r.types[qualifiedName]
}

// Loadable reports whether the qualified name denotes a registered type.
func (r *Registry) Loadable(qualifiedName string) bool {
	_, ok := r.types[qualifiedName]
	return ok
}

// Resolve resolves a possibly-simple type name written in documentation
// against the registry: first as written, then qualified by the context
// type's package. Returns the empty string when the name does not resolve.
func (r *Registry) Resolve(name string, ctx *Type) string {
	if name == "" {
		return ""
	}
	if r.Loadable(name) {
		return name
	}
	if ctx != nil && ctx.Package() != "" {
		qualified := ctx.Package() + "." + name
		if r.Loadable(qualified) {
			return qualified
		}
	}
	return ""
}

// TypeNames returns the qualified names of all registered types in
// registration order.
func (r *Registry) TypeNames() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Superclass returns the registered superclass of t, or nil when t has none
// or it is not registered.
func (r *Registry) Superclass(t *Type) *Type {
	if t == nil || t.Superclass == "" {
		return nil
	}
	return r.types[t.Superclass]
}

// Interfaces returns the registered interfaces t declares, in declaration
// order. Unregistered names are skipped.
func (r *Registry) Interfaces(t *Type) []*Type {
	if t == nil {
		return nil
	}
	var out []*Type
	for _, name := range t.Interfaces {
		if it := r.types[name]; it != nil {
			out = append(out, it)
		}
	}
	return out
}

// Tags returns the raw block tags of the given kinds declared on e, in
// per-source declaration order.
func (r *Registry) Tags(e *Executable, kinds ...string) []RawTag {
	if e == nil {
		return nil
	}
	want := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}

	var tags []RawTag
	for i, node := range e.Doc().BlockTags {
		var kind string
		switch node.(type) {
		case javadoc.Throws:
			kind = TagThrows
		case javadoc.Param:
			kind = TagParam
		default:
			continue
		}
		if want[kind] {
			tags = append(tags, RawTag{Kind: kind, Node: node, Member: e, Index: i})
		}
	}
	return tags
}

// ResolveHolder returns the declaration supplying the effective
// documentation for e: e itself when its comment carries content and does
// not delegate, otherwise the nearest ancestor declaration with comment
// content, searching the superclass chain before interfaces. Falls back to
// e when no ancestor supplies documentation.
func (r *Registry) ResolveHolder(e *Executable) *Executable {
	if e == nil {
		return nil
	}
	if e.Constructor {
		return e
	}
	doc := e.Doc()
	if !doc.IsBlank() && !doc.Delegates() {
		return e
	}
	seen := make(map[string]bool)
	if t := e.Declaring(); t != nil {
		seen[t.QualifiedName] = true
		if h := r.searchHolder(r.Superclass(t), e.Key(), seen); h != nil {
			return h
		}
		for _, it := range r.Interfaces(t) {
			if h := r.searchHolder(it, e.Key(), seen); h != nil {
				return h
			}
		}
	}
	return e
}

func (r *Registry) searchHolder(t *Type, key string, seen map[string]bool) *Executable {
	if t == nil || seen[t.QualifiedName] {
		return nil
	}
	seen[t.QualifiedName] = true

	for _, m := range t.Executables {
		if m.Constructor || m.Key() != key {
			continue
		}
		if doc := m.Doc(); !doc.IsBlank() && !doc.Delegates() {
			return m
		}
	}
	if h := r.searchHolder(r.Superclass(t), key, seen); h != nil {
		return h
	}
	for _, it := range r.Interfaces(t) {
		if h := r.searchHolder(it, key, seen); h != nil {
			return h
		}
	}
	return nil
}

// ImplementedMethods returns the interface declarations e implements,
// directly or transitively through superinterfaces and the superclass
// chain. Each interface contributes at most one declaration, in encounter
// order starting from the declaring type.
func (r *Registry) ImplementedMethods(e *Executable) []*Executable {
	if e == nil || e.Constructor {
		return nil
	}
	var out []*Executable
	seen := make(map[string]bool)
	visited := make(map[string]bool)
	for t := e.Declaring(); t != nil && !visited[t.QualifiedName]; t = r.Superclass(t) {
		visited[t.QualifiedName] = true
		for _, it := range r.Interfaces(t) {
			r.collectImplemented(it, e.Key(), seen, &out)
		}
	}
	return out
}

func (r *Registry) collectImplemented(t *Type, key string, seen map[string]bool, out *[]*Executable) {
	if t == nil || seen[t.QualifiedName] {
		return
	}
	seen[t.QualifiedName] = true

	for _, m := range t.Executables {
		if !m.Constructor && m.Key() == key {
			*out = append(*out, m)
			break
		}
	}
	for _, super := range r.Interfaces(t) {
		r.collectImplemented(super, key, seen, out)
	}
}
