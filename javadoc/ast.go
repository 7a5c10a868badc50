// Package javadoc parses Javadoc comments into a small AST and renders
// tag descriptions back into flat text.
package javadoc

import "strings"

// Node is the interface implemented by all Javadoc AST nodes.
type Node interface {
	node()
}

// DocComment represents a complete Javadoc comment: free-form description
// followed by block tags.
type DocComment struct {
	Body      []Node
	BlockTags []Node
}

func (DocComment) node() {}

// Text represents plain text content.
type Text struct {
	Content string
}

func (Text) node() {}

// Code represents an {@code ...} inline tag.
type Code struct {
	Content string
}

func (Code) node() {}

// Literal represents an {@literal ...} inline tag.
type Literal struct {
	Content string
}

func (Literal) node() {}

// Link represents an {@link ...} or {@linkplain ...} inline tag.
type Link struct {
	Reference string
	Label     []Node
	Plain     bool
}

func (Link) node() {}

// InheritDoc represents an {@inheritDoc} inline tag.
type InheritDoc struct {
	Reference string
}

func (InheritDoc) node() {}

// UnknownInline represents an inline tag this parser does not recognize.
type UnknownInline struct {
	Name    string
	Content string
}

func (UnknownInline) node() {}

// StartElement represents the start of an HTML element.
type StartElement struct {
	Name       string
	Attributes []Attribute
	SelfClose  bool
}

func (StartElement) node() {}

// EndElement represents the end of an HTML element.
type EndElement struct {
	Name string
}

func (EndElement) node() {}

// Attribute represents an HTML attribute.
type Attribute struct {
	Name  string
	Value string
}

// Entity represents an HTML entity like &nbsp; or &#160;.
type Entity struct {
	Name string
}

func (Entity) node() {}

// Erroneous represents malformed content.
type Erroneous struct {
	Content string
	Message string
}

func (Erroneous) node() {}

// Param represents a @param block tag.
type Param struct {
	Name        string
	IsTypeParam bool
	Description []Node
}

func (Param) node() {}

// Throws represents a @throws or @exception block tag.
type Throws struct {
	Exception   string
	Description []Node
}

func (Throws) node() {}

// Return represents a @return block tag.
type Return struct {
	Description []Node
}

func (Return) node() {}

// UnknownBlock represents a block tag this parser does not recognize.
type UnknownBlock struct {
	Name    string
	Content []Node
}

func (UnknownBlock) node() {}

// ThrowsTags returns the @throws and @exception block tags in declaration order.
func (d *DocComment) ThrowsTags() []Throws {
	var tags []Throws
	for _, t := range d.BlockTags {
		if th, ok := t.(Throws); ok {
			tags = append(tags, th)
		}
	}
	return tags
}

// ParamTags returns the @param block tags in declaration order.
func (d *DocComment) ParamTags() []Param {
	var tags []Param
	for _, t := range d.BlockTags {
		if pt, ok := t.(Param); ok {
			tags = append(tags, pt)
		}
	}
	return tags
}

// IsBlank reports whether the comment carries no description and no block tags.
func (d *DocComment) IsBlank() bool {
	if d == nil {
		return true
	}
	if len(d.BlockTags) > 0 {
		return false
	}
	for _, n := range d.Body {
		if t, ok := n.(Text); ok {
			if strings.TrimSpace(t.Content) == "" {
				continue
			}
		}
		return false
	}
	return true
}

// Delegates reports whether the comment's description consists solely of
// {@inheritDoc}, i.e. the comment defers to an ancestor declaration.
func (d *DocComment) Delegates() bool {
	if d == nil {
		return false
	}
	sawInherit := false
	for _, n := range d.Body {
		switch t := n.(type) {
		case Text:
			if strings.TrimSpace(t.Content) != "" {
				return false
			}
		case InheritDoc:
			sawInherit = true
		default:
			return false
		}
	}
	return sawInherit
}
