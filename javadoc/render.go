package javadoc

import (
	"html"
	"strings"
)

// RenderHTML renders nodes into a single-line HTML fragment, the shape a
// doclet taglet writer would produce. HTML elements present in the source
// comment are re-serialized verbatim; {@code} and {@literal} content is
// escaped and code content is wrapped in <code> elements. InheritDoc nodes
// render as empty; expand them with ExpandInherit before rendering.
func RenderHTML(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(renderNode(n))
	}
	return sb.String()
}

func renderNode(n Node) string {
	switch n := n.(type) {
	case Text:
		return n.Content
	case Code:
		return "<code>" + html.EscapeString(n.Content) + "</code>"
	case Literal:
		return html.EscapeString(n.Content)
	case Link:
		if len(n.Label) > 0 {
			if n.Plain {
				return RenderHTML(n.Label)
			}
			return "<code>" + RenderHTML(n.Label) + "</code>"
		}
		ref := SimpleReference(n.Reference)
		if n.Plain {
			return ref
		}
		return "<code>" + ref + "</code>"
	case InheritDoc:
		return ""
	case UnknownInline:
		return n.Content
	case StartElement:
		return serializeStart(n)
	case EndElement:
		return "</" + n.Name + ">"
	case Entity:
		return "&" + n.Name + ";"
	case Erroneous:
		return n.Content
	default:
		return ""
	}
}

func serializeStart(e StartElement) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(e.Name)
	for _, a := range e.Attributes {
		sb.WriteString(" ")
		sb.WriteString(a.Name)
		if a.Value != "" {
			sb.WriteString(`="`)
			sb.WriteString(a.Value)
			sb.WriteString(`"`)
		}
	}
	if e.SelfClose {
		sb.WriteString("/")
	}
	sb.WriteString(">")
	return sb.String()
}

// SimpleReference reduces a reference like java.util.List#add(E) to its
// member or class simple name.
func SimpleReference(ref string) string {
	if idx := strings.LastIndex(ref, "#"); idx >= 0 {
		member := ref[idx+1:]
		if paren := strings.Index(member, "("); paren >= 0 {
			member = member[:paren]
		}
		return member
	}
	if idx := strings.LastIndex(ref, "."); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}

// ExpandInherit returns nodes with every InheritDoc node replaced by the
// inherited nodes. The input slices are not modified.
func ExpandInherit(nodes []Node, inherited []Node) []Node {
	var out []Node
	for _, n := range nodes {
		if _, ok := n.(InheritDoc); ok {
			out = append(out, inherited...)
			continue
		}
		out = append(out, n)
	}
	return out
}

// ContainsInherit reports whether any node in nodes is an InheritDoc tag.
func ContainsInherit(nodes []Node) bool {
	for _, n := range nodes {
		if _, ok := n.(InheritDoc); ok {
			return true
		}
	}
	return false
}
