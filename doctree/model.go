// Package doctree models the declaration tree a documentation front end
// produces: types, their callable members, parameters, annotations, and the
// raw Javadoc comment attached to each declaration. The Registry type
// answers the inheritance-aware queries the extraction engine needs.
package doctree

import (
	"fmt"
	"strings"

	"docmine/javadoc"
)

type Kind string

const (
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
)

// Position is a source position. Default constructors synthesized by a
// compiler front end carry the position of their declaring class.
type Position struct {
	Line   int
	Column int
}

func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Type is one declared class or interface.
type Type struct {
	QualifiedName string
	Kind          Kind
	Position      Position
	Superclass    string   // qualified name, empty when none is declared
	Interfaces    []string // qualified names
	Imports       []string // qualified names of single-type imports
	Comment       string   // raw Javadoc comment text, may be empty
	Executables   []*Executable
}

func (t *Type) SimpleName() string {
	if idx := strings.LastIndex(t.QualifiedName, "."); idx >= 0 {
		return t.QualifiedName[idx+1:]
	}
	return t.QualifiedName
}

func (t *Type) Package() string {
	if idx := strings.LastIndex(t.QualifiedName, "."); idx >= 0 {
		return t.QualifiedName[:idx]
	}
	return ""
}

func (t *Type) IsInterface() bool {
	return t.Kind == KindInterface
}

// Annotation is a marker attached to a parameter or member declaration.
type Annotation struct {
	Name string // simple or qualified name as written in source
}

func (a Annotation) SimpleName() string {
	if idx := strings.LastIndex(a.Name, "."); idx >= 0 {
		return a.Name[idx+1:]
	}
	return a.Name
}

// Param is one formal parameter declaration. For variadic members the last
// parameter's Type holds the element type, as a source-level front end
// reports it.
type Param struct {
	Name        string
	Type        string // qualified type name, [] suffixes allowed
	Annotations []Annotation
}

// Executable is one declared constructor or method.
type Executable struct {
	Name        string
	Constructor bool
	ReturnType  string // qualified name with [] dimension, empty for constructors
	Params      []Param
	VarArgs     bool
	Synthetic   bool // compiler-generated (bridge or synthetic)
	Position    Position
	Comment     string // raw Javadoc comment text, may be empty

	declaring *Type
	doc       *javadoc.DocComment
}

// Declaring returns the type this executable is declared on. It is set when
// the type is registered.
func (e *Executable) Declaring() *Type {
	return e.declaring
}

// Signature returns the parenthesized erased parameter type list,
// e.g. "(java.lang.String,int)".
func (e *Executable) Signature() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range e.Params {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(p.Type)
	}
	sb.WriteString(")")
	return sb.String()
}

// Key returns the name+signature key that identifies an executable across a
// class hierarchy; overrides share the key of the declaration they override.
func (e *Executable) Key() string {
	return e.Name + e.Signature()
}

// Doc returns the parsed Javadoc comment of this executable. Parsing happens
// once; an empty comment parses to a blank DocComment.
func (e *Executable) Doc() *javadoc.DocComment {
	if e.doc == nil {
		e.doc = javadoc.Parse(e.Comment)
	}
	return e.doc
}

// RawTag is one raw block tag collected from a member's documentation,
// before rendering and markup stripping.
type RawTag struct {
	Kind   string       // tag kind: "throws", "param"
	Node   javadoc.Node // the parsed block tag
	Member *Executable  // the declaration the tag was read from
	Index  int          // position within that declaration's tag list
}

// Raw tag kinds.
const (
	TagThrows = "throws"
	TagParam  = "param"
)
