// Package output serializes extraction results into versioned JSON
// artifacts for the downstream specification-mining stage.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"docmine/extractor"
)

// SchemaVersion identifies the artifact shape. Bump on incompatible changes.
const SchemaVersion = 1

// Artifact is the persisted result of extracting one type.
type Artifact struct {
	SchemaVersion int                              `json:"schemaVersion"`
	RunID         string                           `json:"runId"`
	GeneratedAt   time.Time                        `json:"generatedAt"`
	Class         string                           `json:"class"`
	Executables   []extractor.DocumentedExecutable `json:"executables"`
}

// Writer emits one artifact per documented type, either as a file per class
// in a directory or onto a single stream. It implements extractor.Emitter.
type Writer struct {
	dir   string
	w     io.Writer
	runID string
	now   func() time.Time
	log   commonlog.Logger
}

// NewWriter returns a Writer that stores one <class>.json file per emitted
// type under dir.
func NewWriter(dir string) *Writer {
	w := newWriter()
	w.dir = dir
	return w
}

// NewStreamWriter returns a Writer that appends each artifact to out.
func NewStreamWriter(out io.Writer) *Writer {
	w := newWriter()
	w.w = out
	return w
}

func newWriter() *Writer {
	return &Writer{
		runID: uuid.NewString(),
		now:   time.Now,
		log:   commonlog.GetLogger("docmine.output"),
	}
}

// Emit serializes dt. An empty executable list is still a valid surface and
// still produces an artifact.
func (w *Writer) Emit(dt *extractor.DocumentedType) error {
	if dt == nil {
		return fmt.Errorf("output: nil documented type")
	}

	art := Artifact{
		SchemaVersion: SchemaVersion,
		RunID:         w.runID,
		GeneratedAt:   w.now().UTC(),
		Class:         dt.DeclaredType.QualifiedName,
		Executables:   dt.Executables,
	}
	data, err := json.MarshalIndent(art, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact for %s: %w", art.Class, err)
	}
	data = append(data, '\n')

	if w.w != nil {
		if _, err := w.w.Write(data); err != nil {
			return fmt.Errorf("write artifact for %s: %w", art.Class, err)
		}
		return nil
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(w.dir, art.Class+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write artifact for %s: %w", art.Class, err)
	}
	w.log.Infof("wrote %s (%d executables)", path, len(art.Executables))
	return nil
}
