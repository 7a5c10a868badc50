package doctree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const graphSnapshot = `{
  "types": [
    {
      "name": "com.example.Graph",
      "kind": "class",
      "line": 12,
      "column": 1,
      "superclass": "com.example.AbstractGraph",
      "interfaces": ["com.example.DirectedGraph"],
      "imports": ["java.lang.IllegalArgumentException", "java.util.List"],
      "members": [
        {
          "name": "Graph",
          "constructor": true,
          "line": 20,
          "comment": "/**\n * Creates a graph.\n * @throws IllegalArgumentException g==null\n */",
          "params": [
            {"name": "g", "type": "com.example.Graph"}
          ]
        },
        {
          "name": "addEdge",
          "returnType": "boolean",
          "line": 31,
          "params": [
            {"name": "sourceVertex", "type": "java.lang.Object"},
            {"name": "targetVertex", "type": "java.lang.Object", "annotations": ["Nullable"]},
            {"name": "e", "type": "java.lang.Object"}
          ]
        },
        {
          "name": "addVertices",
          "returnType": "void",
          "varargs": true,
          "line": 44,
          "params": [
            {"name": "vertices", "type": "java.lang.Object"}
          ]
        }
      ]
    }
  ]
}`

func TestReadSnapshot(t *testing.T) {
	reg, err := ReadSnapshot(strings.NewReader(graphSnapshot))
	require.NoError(t, err)

	typ := reg.Lookup("com.example.Graph")
	require.NotNil(t, typ)
	assert.Equal(t, KindClass, typ.Kind)
	assert.Equal(t, Position{Line: 12, Column: 1}, typ.Position)
	assert.Equal(t, "com.example.AbstractGraph", typ.Superclass)
	assert.Equal(t, []string{"com.example.DirectedGraph"}, typ.Interfaces)
	assert.Len(t, typ.Imports, 2)
	require.Len(t, typ.Executables, 3)

	ctor := typ.Executables[0]
	assert.True(t, ctor.Constructor)
	assert.Same(t, typ, ctor.Declaring())
	require.Len(t, ctor.Params, 1)
	assert.Equal(t, "g", ctor.Params[0].Name)
	require.Len(t, ctor.Doc().ThrowsTags(), 1)

	addEdge := typ.Executables[1]
	assert.Equal(t, "boolean", addEdge.ReturnType)
	require.Len(t, addEdge.Params, 3)
	require.Len(t, addEdge.Params[1].Annotations, 1)
	assert.Equal(t, "Nullable", addEdge.Params[1].Annotations[0].SimpleName())

	addVertices := typ.Executables[2]
	assert.True(t, addVertices.VarArgs)
}

func TestReadSnapshotDefaultsKindToClass(t *testing.T) {
	reg, err := ReadSnapshot(strings.NewReader(`{"types": [{"name": "com.example.A"}]}`))
	require.NoError(t, err)
	assert.Equal(t, KindClass, reg.Lookup("com.example.A").Kind)
}

func TestReadSnapshotRejectsUnknownKind(t *testing.T) {
	_, err := ReadSnapshot(strings.NewReader(`{"types": [{"name": "com.example.A", "kind": "enum"}]}`))
	assert.ErrorContains(t, err, "unknown kind")
}

func TestReadSnapshotRejectsMalformedJSON(t *testing.T) {
	_, err := ReadSnapshot(strings.NewReader(`{"types": [`))
	assert.Error(t, err)
}

func TestLoadSnapshotFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(graphSnapshot), 0o644))

	reg, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.True(t, reg.Loadable("com.example.Graph"))

	_, err = LoadSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
