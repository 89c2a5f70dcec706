package doc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/feattree/feattree/internal/tracker"
)

const (
	// FeaturesDoc is the derived document filename for the feature tree.
	FeaturesDoc = "FEATURES.md"
	// WorkflowsDoc is the derived document filename for the workflow tree.
	WorkflowsDoc = "WORKFLOWS.md"
)

// Publisher regenerates the derived Markdown documents from a store.
//
// Publishing is a best-effort side effect of a successful mutation: a
// render or write failure is reported to the caller as a warning but the
// mutation itself stands. Files are replaced via write-then-rename, so a
// failed publish never corrupts the previously rendered document.
type Publisher struct {
	dir string
}

// NewPublisher creates a Publisher writing into dir.
func NewPublisher(dir string) *Publisher {
	return &Publisher{dir: dir}
}

// Publish renders both trees and rewrites the documents on disk.
func (p *Publisher) Publish(store *tracker.Store) error {
	features, err := store.ListForest(tracker.KindFeature)
	if err != nil {
		return fmt.Errorf("doc: list features: %w", err)
	}
	if err := p.write(FeaturesDoc, Render("Features", features)); err != nil {
		return err
	}

	workflows, err := store.ListForest(tracker.KindWorkflow)
	if err != nil {
		return fmt.Errorf("doc: list workflows: %w", err)
	}
	return p.write(WorkflowsDoc, Render("Workflows", workflows))
}

// write replaces name atomically: the content lands in a temp file first
// and only a successful write renames over the old document.
func (p *Publisher) write(name, content string) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("doc: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(p.dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("doc: temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("doc: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("doc: close %s: %w", name, err)
	}

	if err := os.Rename(tmpName, filepath.Join(p.dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("doc: replace %s: %w", name, err)
	}
	return nil
}

// Path returns the on-disk path of a published document.
func (p *Publisher) Path(name string) string {
	return filepath.Join(p.dir, name)
}
