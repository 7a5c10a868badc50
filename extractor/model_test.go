package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTypeRef(t *testing.T) {
	ref := NewTypeRef("java.lang.Object")
	assert.Equal(t, "java.lang.Object", ref.QualifiedName)
	assert.Equal(t, "Object", ref.DisplayName)
	assert.False(t, ref.IsArray)

	arr := NewTypeRef("java.lang.Object[]")
	assert.Equal(t, "java.lang.Object[]", arr.QualifiedName)
	assert.Equal(t, "Object[]", arr.DisplayName)
	assert.True(t, arr.IsArray)

	matrix := NewTypeRef("int[][]")
	assert.Equal(t, "int[][]", matrix.QualifiedName)
	assert.Equal(t, "int[][]", matrix.DisplayName)
	assert.True(t, matrix.IsArray)

	prim := NewTypeRef("boolean")
	assert.Equal(t, "boolean", prim.DisplayName)
	assert.False(t, prim.IsArray)
}

func TestTypeRefEqual(t *testing.T) {
	assert.True(t, NewTypeRef("java.util.List").Equal(NewTypeRef("java.util.List")))
	assert.False(t, NewTypeRef("java.util.List").Equal(NewTypeRef("java.util.Set")))
	assert.False(t, NewTypeRef("int").Equal(NewTypeRef("int[]")))
}

func TestParameterEqual(t *testing.T) {
	yes, no := true, false
	base := Parameter{Type: NewTypeRef("java.lang.Object"), Name: "v", Position: 0}

	assert.True(t, base.Equal(Parameter{Type: NewTypeRef("java.lang.Object"), Name: "v", Position: 0}))
	assert.False(t, base.Equal(Parameter{Type: NewTypeRef("java.lang.Object"), Name: "w", Position: 0}))
	assert.False(t, base.Equal(Parameter{Type: NewTypeRef("java.lang.Object"), Name: "v", Position: 1}))
	assert.False(t, base.Equal(Parameter{Type: NewTypeRef("java.lang.Object"), Name: "v", Position: 0, Nullable: &yes}))

	nullable := base
	nullable.Nullable = &yes
	other := base
	other.Nullable = &no
	same := base
	v := true
	same.Nullable = &v
	assert.True(t, nullable.Equal(same))
	assert.False(t, nullable.Equal(other))
}

func TestDocumentedTypeEqualAndHash(t *testing.T) {
	build := func() *DocumentedType {
		ret := NewTypeRef("boolean")
		return &DocumentedType{
			DeclaredType: NewTypeRef("com.example.Graph"),
			Executables: []DocumentedExecutable{
				{
					ContainingType: NewTypeRef("com.example.Graph"),
					Name:           "addEdge",
					Signature:      "addEdge(java.lang.Object)",
					ReturnType:     &ret,
					Parameters:     []Parameter{{Type: NewTypeRef("java.lang.Object"), Name: "e", Position: 0}},
					ThrowsTags: []ThrowsTag{
						{ExceptionType: NewTypeRef("java.lang.NullPointerException"), Comment: "e is null"},
					},
				},
			},
		}
	}

	a, b := build(), build()
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	b.Executables[0].ThrowsTags[0].Comment = "changed"
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestDocumentedTypeEqualNil(t *testing.T) {
	dt := &DocumentedType{DeclaredType: NewTypeRef("com.example.A")}
	assert.False(t, dt.Equal(nil))
	var none *DocumentedType
	assert.True(t, none.Equal(nil))
}

func TestDocumentedExecutableEqualReturnType(t *testing.T) {
	ret := NewTypeRef("void")
	method := DocumentedExecutable{Name: "run", Signature: "run()", ReturnType: &ret}
	ctor := DocumentedExecutable{Name: "run", Signature: "run()"}

	require.False(t, method.Equal(ctor))
	require.False(t, ctor.Equal(method))
	assert.True(t, ctor.Equal(DocumentedExecutable{Name: "run", Signature: "run()"}))
}
