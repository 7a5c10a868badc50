package doctree

import "docmine/javadoc"

// RenderTag renders a raw tag's description into a flat HTML fragment,
// expanding {@inheritDoc} from the corresponding tag on the nearest ancestor
// declaration. Residual markup is left in place for the caller to strip.
func (r *Registry) RenderTag(raw RawTag) string {
	desc := tagDescription(raw.Node)
	if javadoc.ContainsInherit(desc) {
		desc = javadoc.ExpandInherit(desc, r.inheritedDescription(raw, make(map[string]bool)))
	}
	return javadoc.RenderHTML(desc)
}

func tagDescription(node javadoc.Node) []javadoc.Node {
	switch n := node.(type) {
	case javadoc.Throws:
		return n.Description
	case javadoc.Param:
		return n.Description
	case javadoc.Return:
		return n.Description
	case javadoc.UnknownBlock:
		return n.Content
	default:
		return nil
	}
}

// inheritedDescription locates the description the raw tag inherits: the
// matching tag (same exception simple name for throws, same parameter name
// for param) on the nearest ancestor declaration of the same member.
func (r *Registry) inheritedDescription(raw RawTag, seen map[string]bool) []javadoc.Node {
	member := raw.Member
	if member == nil || member.Declaring() == nil {
		return nil
	}
	t := member.Declaring()
	seen[t.QualifiedName] = true

	if desc := r.findTagDescription(r.Superclass(t), raw, seen); desc != nil {
		return desc
	}
	for _, it := range r.Interfaces(t) {
		if desc := r.findTagDescription(it, raw, seen); desc != nil {
			return desc
		}
	}
	return nil
}

func (r *Registry) findTagDescription(t *Type, raw RawTag, seen map[string]bool) []javadoc.Node {
	if t == nil || seen[t.QualifiedName] {
		return nil
	}
	seen[t.QualifiedName] = true

	key := raw.Member.Key()
	for _, m := range t.Executables {
		if m.Constructor || m.Key() != key {
			continue
		}
		for _, node := range m.Doc().BlockTags {
			if !tagsCorrespond(raw.Node, node) {
				continue
			}
			desc := tagDescription(node)
			if javadoc.ContainsInherit(desc) {
				inner := RawTag{Kind: raw.Kind, Node: node, Member: m}
				desc = javadoc.ExpandInherit(desc, r.inheritedDescription(inner, seen))
			}
			return desc
		}
	}

	if desc := r.findTagDescription(r.Superclass(t), raw, seen); desc != nil {
		return desc
	}
	for _, it := range r.Interfaces(t) {
		if desc := r.findTagDescription(it, raw, seen); desc != nil {
			return desc
		}
	}
	return nil
}

// tagsCorrespond reports whether an ancestor tag documents the same thing as
// the given tag: the same exception for throws tags, the same parameter for
// param tags.
func tagsCorrespond(tag, ancestor javadoc.Node) bool {
	switch t := tag.(type) {
	case javadoc.Throws:
		a, ok := ancestor.(javadoc.Throws)
		return ok && javadoc.SimpleReference(a.Exception) == javadoc.SimpleReference(t.Exception)
	case javadoc.Param:
		a, ok := ancestor.(javadoc.Param)
		return ok && a.Name == t.Name
	case javadoc.Return:
		_, ok := ancestor.(javadoc.Return)
		return ok
	default:
		return false
	}
}
