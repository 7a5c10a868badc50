package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docmine/doctree"
)

func memberKeys(members []*doctree.Executable) []string {
	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = m.Key()
	}
	return keys
}

func TestCollectMembersConstructorsFirst(t *testing.T) {
	typ := &doctree.Type{
		QualifiedName: "com.example.Graph",
		Position:      doctree.Position{Line: 12, Column: 1},
		Executables: []*doctree.Executable{
			{Name: "addEdge", Position: doctree.Position{Line: 30}},
			{Name: "Graph", Constructor: true, Position: doctree.Position{Line: 20}},
			{Name: "clear", Position: doctree.Position{Line: 40}},
		},
	}
	reg := newRegistry(t, typ)

	got := memberKeys(CollectMembers(reg, typ))
	assert.Equal(t, []string{"Graph()", "addEdge()", "clear()"}, got)
}

func TestCollectMembersExcludesDefaultConstructor(t *testing.T) {
	typ := &doctree.Type{
		QualifiedName: "com.example.Graph",
		Position:      doctree.Position{Line: 12, Column: 1},
		Executables: []*doctree.Executable{
			{Name: "Graph", Constructor: true, Position: doctree.Position{Line: 12, Column: 1}},
			{Name: "size", Position: doctree.Position{Line: 18}},
		},
	}
	reg := newRegistry(t, typ)

	got := memberKeys(CollectMembers(reg, typ))
	assert.Equal(t, []string{"size()"}, got)
}

func TestCollectMembersKeepsConstructorWithoutPosition(t *testing.T) {
	typ := &doctree.Type{
		QualifiedName: "com.example.Graph",
		Position:      doctree.Position{Line: 12, Column: 1},
		Executables: []*doctree.Executable{
			{Name: "Graph", Constructor: true},
		},
	}
	reg := newRegistry(t, typ)

	got := memberKeys(CollectMembers(reg, typ))
	assert.Equal(t, []string{"Graph()"}, got)
}

func TestCollectMembersOverrideShadowsInherited(t *testing.T) {
	baseFoo := &doctree.Executable{Name: "foo", Position: doctree.Position{Line: 8}}
	baseBar := &doctree.Executable{Name: "bar", Position: doctree.Position{Line: 12}}
	base := &doctree.Type{
		QualifiedName: "com.example.Base",
		Position:      doctree.Position{Line: 1, Column: 1},
		Executables:   []*doctree.Executable{baseFoo, baseBar},
	}
	subFoo := &doctree.Executable{Name: "foo", Position: doctree.Position{Line: 9}}
	sub := &doctree.Type{
		QualifiedName: "com.example.Sub",
		Position:      doctree.Position{Line: 1, Column: 1},
		Superclass:    "com.example.Base",
		Executables:   []*doctree.Executable{subFoo},
	}
	reg := newRegistry(t, base, sub)

	members := CollectMembers(reg, sub)
	require.Len(t, members, 2)
	assert.Same(t, subFoo, members[0])
	assert.Same(t, baseBar, members[1])
}

func TestCollectMembersStopsAtObject(t *testing.T) {
	object := &doctree.Type{
		QualifiedName: "java.lang.Object",
		Executables: []*doctree.Executable{
			{Name: "toString", Position: doctree.Position{Line: 3}},
			{Name: "hashCode", Position: doctree.Position{Line: 7}},
		},
	}
	typ := &doctree.Type{
		QualifiedName: "com.example.Graph",
		Superclass:    "java.lang.Object",
		Executables: []*doctree.Executable{
			{Name: "size", Position: doctree.Position{Line: 18}},
		},
	}
	reg := newRegistry(t, object, typ)

	got := memberKeys(CollectMembers(reg, typ))
	assert.Equal(t, []string{"size()"}, got)
}

func TestCollectMembersSkipsSyntheticAndInheritedConstructors(t *testing.T) {
	base := &doctree.Type{
		QualifiedName: "com.example.Base",
		Position:      doctree.Position{Line: 1, Column: 1},
		Executables: []*doctree.Executable{
			{Name: "Base", Constructor: true, Position: doctree.Position{Line: 3}},
			{Name: "access$000", Synthetic: true, Position: doctree.Position{Line: 5}},
			{Name: "real", Position: doctree.Position{Line: 9}},
		},
	}
	sub := &doctree.Type{
		QualifiedName: "com.example.Sub",
		Position:      doctree.Position{Line: 1, Column: 1},
		Superclass:    "com.example.Base",
	}
	reg := newRegistry(t, base, sub)

	got := memberKeys(CollectMembers(reg, sub))
	assert.Equal(t, []string{"real()"}, got)
}

func TestCollectMembersSurvivesSuperclassCycle(t *testing.T) {
	a := &doctree.Type{
		QualifiedName: "com.example.A",
		Superclass:    "com.example.B",
		Executables:   []*doctree.Executable{{Name: "fromA", Position: doctree.Position{Line: 2}}},
	}
	b := &doctree.Type{
		QualifiedName: "com.example.B",
		Superclass:    "com.example.A",
		Executables:   []*doctree.Executable{{Name: "fromB", Position: doctree.Position{Line: 2}}},
	}
	reg := newRegistry(t, a, b)

	got := memberKeys(CollectMembers(reg, a))
	assert.Equal(t, []string{"fromA()", "fromB()"}, got)
}
