// Package extractor builds the canonical model of a type's documented
// callable surface: its constructors and methods, their parameters, and the
// exception documentation resolved across the inheritance chain.
package extractor

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// TypeRef is a name-based reference to a declared type. The qualified name
// keeps its [] dimension suffix as a front end reports it. References are
// pure values: equality is structural, over qualified name and array-ness.
type TypeRef struct {
	QualifiedName string `json:"qualifiedName"`
	DisplayName   string `json:"name"`
	IsArray       bool   `json:"isArray"`
}

// NewTypeRef builds a reference from a qualified type name, which may carry
// [] dimension suffixes.
func NewTypeRef(qualifiedName string) TypeRef {
	elem := qualifiedName
	dim := ""
	for strings.HasSuffix(elem, "[]") {
		elem = elem[:len(elem)-2]
		dim += "[]"
	}
	display := elem
	if idx := strings.LastIndex(elem, "."); idx >= 0 {
		display = elem[idx+1:]
	}
	return TypeRef{
		QualifiedName: qualifiedName,
		DisplayName:   display + dim,
		IsArray:       dim != "",
	}
}

func (t TypeRef) Equal(o TypeRef) bool {
	return t.QualifiedName == o.QualifiedName && t.IsArray == o.IsArray
}

func (t TypeRef) String() string {
	return t.QualifiedName
}

// Parameter is one formal parameter of a documented executable. Nullable is
// nil when no nullability annotation was found on the declaration.
type Parameter struct {
	Type     TypeRef `json:"type"`
	Name     string  `json:"name"`
	Position int     `json:"position"`
	Nullable *bool   `json:"nullable,omitempty"`
}

func (p Parameter) Equal(o Parameter) bool {
	if !p.Type.Equal(o.Type) || p.Name != o.Name || p.Position != o.Position {
		return false
	}
	if (p.Nullable == nil) != (o.Nullable == nil) {
		return false
	}
	return p.Nullable == nil || *p.Nullable == *o.Nullable
}

// ThrowsTag is one documented exception condition: the exception type and
// the plain-text condition description, markup removed. The comment may be
// empty.
type ThrowsTag struct {
	ExceptionType TypeRef `json:"exception"`
	Comment       string  `json:"comment"`
}

func (t ThrowsTag) Equal(o ThrowsTag) bool {
	return t.ExceptionType.Equal(o.ExceptionType) && t.Comment == o.Comment
}

// DocumentedExecutable is the canonical record of one constructor or method.
// ReturnType is nil exactly for constructors. Instances are created once by
// the extractor and not mutated afterwards.
type DocumentedExecutable struct {
	ContainingType TypeRef     `json:"containingType"`
	Name           string      `json:"name"`
	Signature      string      `json:"signature"`
	ReturnType     *TypeRef    `json:"returnType,omitempty"`
	Parameters     []Parameter `json:"parameters"`
	IsVarArgs      bool        `json:"varargs"`
	ThrowsTags     []ThrowsTag `json:"throwsTags"`
}

func (e DocumentedExecutable) Equal(o DocumentedExecutable) bool {
	if !e.ContainingType.Equal(o.ContainingType) || e.Name != o.Name ||
		e.Signature != o.Signature || e.IsVarArgs != o.IsVarArgs {
		return false
	}
	if (e.ReturnType == nil) != (o.ReturnType == nil) {
		return false
	}
	if e.ReturnType != nil && !e.ReturnType.Equal(*o.ReturnType) {
		return false
	}
	if len(e.Parameters) != len(o.Parameters) || len(e.ThrowsTags) != len(o.ThrowsTags) {
		return false
	}
	for i := range e.Parameters {
		if !e.Parameters[i].Equal(o.Parameters[i]) {
			return false
		}
	}
	for i := range e.ThrowsTags {
		if !e.ThrowsTags[i].Equal(o.ThrowsTags[i]) {
			return false
		}
	}
	return true
}

// DocumentedType is one documented class or interface with its executables.
// It owns its executable list; equality and hashing are structural over the
// declared type and the list.
type DocumentedType struct {
	DeclaredType TypeRef                `json:"type"`
	Executables  []DocumentedExecutable `json:"executables"`
}

func (d *DocumentedType) Equal(o *DocumentedType) bool {
	if d == nil || o == nil {
		return d == o
	}
	if !d.DeclaredType.Equal(o.DeclaredType) || len(d.Executables) != len(o.Executables) {
		return false
	}
	for i := range d.Executables {
		if !d.Executables[i].Equal(o.Executables[i]) {
			return false
		}
	}
	return true
}

// Hash returns a structural hash consistent with Equal.
func (d *DocumentedType) Hash() uint64 {
	h := fnv.New64a()
	if d == nil {
		return h.Sum64()
	}
	writeString := func(parts ...string) {
		for _, s := range parts {
			h.Write([]byte(s))
			h.Write([]byte{0})
		}
	}
	writeRef := func(r TypeRef) {
		writeString(r.QualifiedName, strconv.FormatBool(r.IsArray))
	}

	writeRef(d.DeclaredType)
	for _, e := range d.Executables {
		writeRef(e.ContainingType)
		writeString(e.Name, e.Signature, strconv.FormatBool(e.IsVarArgs))
		if e.ReturnType != nil {
			writeRef(*e.ReturnType)
		} else {
			writeString("<constructor>")
		}
		for _, p := range e.Parameters {
			writeRef(p.Type)
			writeString(p.Name, strconv.Itoa(p.Position))
			if p.Nullable != nil {
				writeString(strconv.FormatBool(*p.Nullable))
			} else {
				writeString("")
			}
		}
		for _, t := range e.ThrowsTags {
			writeRef(t.ExceptionType)
			writeString(t.Comment)
		}
	}
	return h.Sum64()
}
