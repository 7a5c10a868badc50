package doctree

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Snapshot is the JSON shape a documentation front end serializes its
// declaration tree into. One snapshot holds every type visible to one
// extraction run.
type Snapshot struct {
	Types []SnapshotType `json:"types"`
}

type SnapshotType struct {
	Name       string           `json:"name"`
	Kind       string           `json:"kind"`
	Line       int              `json:"line,omitempty"`
	Column     int              `json:"column,omitempty"`
	Superclass string           `json:"superclass,omitempty"`
	Interfaces []string         `json:"interfaces,omitempty"`
	Imports    []string         `json:"imports,omitempty"`
	Comment    string           `json:"comment,omitempty"`
	Members    []SnapshotMember `json:"members,omitempty"`
}

type SnapshotMember struct {
	Name        string          `json:"name"`
	Constructor bool            `json:"constructor,omitempty"`
	ReturnType  string          `json:"returnType,omitempty"`
	VarArgs     bool            `json:"varargs,omitempty"`
	Synthetic   bool            `json:"synthetic,omitempty"`
	Line        int             `json:"line,omitempty"`
	Column      int             `json:"column,omitempty"`
	Comment     string          `json:"comment,omitempty"`
	Params      []SnapshotParam `json:"params,omitempty"`
}

type SnapshotParam struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Annotations []string `json:"annotations,omitempty"`
}

// LoadSnapshot reads a declaration-tree snapshot file into a fresh Registry.
func LoadSnapshot(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	return ReadSnapshot(f)
}

// ReadSnapshot decodes a declaration-tree snapshot into a fresh Registry.
func ReadSnapshot(r io.Reader) (*Registry, error) {
	var snap Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	reg := NewRegistry()
	for _, st := range snap.Types {
		t, err := typeFromSnapshot(st)
		if err != nil {
			return nil, err
		}
		if err := reg.Add(t); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func typeFromSnapshot(st SnapshotType) (*Type, error) {
	kind := Kind(st.Kind)
	switch kind {
	case KindClass, KindInterface:
	case "":
		kind = KindClass
	default:
		return nil, fmt.Errorf("snapshot type %s: unknown kind %q", st.Name, st.Kind)
	}

	t := &Type{
		QualifiedName: st.Name,
		Kind:          kind,
		Position:      Position{Line: st.Line, Column: st.Column},
		Superclass:    st.Superclass,
		Interfaces:    st.Interfaces,
		Imports:       st.Imports,
		Comment:       st.Comment,
	}
	for _, sm := range st.Members {
		e := &Executable{
			Name:        sm.Name,
			Constructor: sm.Constructor,
			ReturnType:  sm.ReturnType,
			VarArgs:     sm.VarArgs,
			Synthetic:   sm.Synthetic,
			Position:    Position{Line: sm.Line, Column: sm.Column},
			Comment:     sm.Comment,
		}
		for _, sp := range sm.Params {
			param := Param{Name: sp.Name, Type: sp.Type}
			for _, a := range sp.Annotations {
				param.Annotations = append(param.Annotations, Annotation{Name: a})
			}
			e.Params = append(e.Params, param)
		}
		t.Executables = append(t.Executables, e)
	}
	return t, nil
}
