package extractor

import (
	"fmt"

	"github.com/tliron/commonlog"

	"docmine/doctree"
	"docmine/javadoc"
)

// Provider supplies the declaration tree: type links, per-member raw tags,
// and the inheritance-aware documentation queries. doctree.Registry
// implements it.
type Provider interface {
	Superclass(t *doctree.Type) *doctree.Type
	Resolve(name string, ctx *doctree.Type) string
	Tags(e *doctree.Executable, kinds ...string) []doctree.RawTag
	ResolveHolder(e *doctree.Executable) *doctree.Executable
	ImplementedMethods(e *doctree.Executable) []*doctree.Executable
}

// Renderer expands a raw tag's inline documentation directives into flat
// text; the result may still carry literal markup for StripMarkup.
type Renderer interface {
	RenderTag(raw doctree.RawTag) string
}

// Emitter receives each completed DocumentedType.
type Emitter interface {
	Emit(dt *DocumentedType) error
}

// Extractor builds DocumentedTypes from a declaration tree. Extraction is
// synchronous and side-effect-free apart from emission; a fresh Extractor
// over the same tree produces identical output.
type Extractor struct {
	provider Provider
	renderer Renderer
	emitter  Emitter
	log      commonlog.Logger
}

type Option func(*Extractor)

// WithEmitter makes the extractor hand each completed DocumentedType to e.
func WithEmitter(e Emitter) Option {
	return func(x *Extractor) {
		x.emitter = e
	}
}

func New(provider Provider, renderer Renderer, opts ...Option) *Extractor {
	x := &Extractor{
		provider: provider,
		renderer: renderer,
		log:      commonlog.GetLogger("docmine.extractor"),
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Extract builds the DocumentedType for t and, when an emitter is
// configured, emits it. A malformed raw tag aborts the whole type: no
// partial result is emitted or returned.
func (x *Extractor) Extract(t *doctree.Type) (*DocumentedType, error) {
	if t == nil {
		return nil, ErrNilType
	}

	members := CollectMembers(x.provider, t)
	executables := make([]DocumentedExecutable, 0, len(members))
	for _, member := range members {
		exec, err := x.extractMember(member)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", t.QualifiedName, err)
		}
		executables = append(executables, *exec)
	}

	dt := &DocumentedType{
		DeclaredType: NewTypeRef(t.QualifiedName),
		Executables:  executables,
	}
	x.log.Debugf("extracted %s: %d executables", t.QualifiedName, len(executables))

	if x.emitter != nil {
		if err := x.emitter.Emit(dt); err != nil {
			return nil, fmt.Errorf("emit %s: %w", t.QualifiedName, err)
		}
	}
	return dt, nil
}

func (x *Extractor) extractMember(member *doctree.Executable) (*DocumentedExecutable, error) {
	containing := member.Declaring()
	if containing == nil {
		return nil, fmt.Errorf("member %s has no declaring type", member.Key())
	}

	raws := x.collectThrowsTags(member)
	throws := make([]ThrowsTag, 0, len(raws))
	for _, raw := range raws {
		tag, ok := raw.Node.(javadoc.Throws)
		if !ok {
			return nil, &InvariantError{Member: member.Key(), TagIndex: raw.Index, Kind: raw.Kind}
		}
		comment := StripMarkup(x.renderer.RenderTag(raw))
		name := x.exceptionName(tag.Exception, member)
		throws = append(throws, ThrowsTag{ExceptionType: NewTypeRef(name), Comment: comment})
	}

	var returnType *TypeRef
	if !member.Constructor {
		name := member.ReturnType
		if name == "" {
			name = "void"
		}
		ref := NewTypeRef(name)
		returnType = &ref
	}

	return &DocumentedExecutable{
		ContainingType: NewTypeRef(containing.QualifiedName),
		Name:           member.Name,
		Signature:      member.Key(),
		ReturnType:     returnType,
		Parameters:     buildParameters(member),
		IsVarArgs:      member.VarArgs,
		ThrowsTags:     throws,
	}, nil
}
