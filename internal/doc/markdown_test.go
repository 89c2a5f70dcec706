package doc_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/feattree/feattree/internal/doc"
	"github.com/feattree/feattree/internal/tracker"
)

func node(rec tracker.Record, children ...*tracker.Node) *tracker.Node {
	return &tracker.Node{Record: rec, Children: children}
}

func TestRender_Deterministic(t *testing.T) {
	forest := []*tracker.Node{
		node(tracker.Record{ID: "auth", Name: "Authentication", Status: tracker.StatusPlanned},
			node(tracker.Record{ID: "auth-login", Name: "Login", Status: tracker.StatusDone}),
		),
	}

	first := doc.Render("Features", forest)
	second := doc.Render("Features", forest)
	if first != second {
		t.Error("Render is not byte-identical across calls on the same forest")
	}
}

func TestRender_Header(t *testing.T) {
	out := doc.Render("Features", nil)

	if !strings.HasPrefix(out, "# Features\n") {
		t.Errorf("missing title header:\n%s", out)
	}
	if !strings.Contains(out, "> Auto-generated. Do not edit") {
		t.Errorf("missing do-not-edit banner:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output does not end with a newline")
	}
}

func TestRender_NestingDepth(t *testing.T) {
	forest := []*tracker.Node{
		node(tracker.Record{ID: "a", Name: "A", Status: tracker.StatusPlanned},
			node(tracker.Record{ID: "a-b", Name: "B", Status: tracker.StatusPlanned},
				node(tracker.Record{ID: "a-b-c", Name: "C", Status: tracker.StatusPlanned}),
			),
		),
	}

	out := doc.Render("Features", forest)

	// Each level nests exactly one heading deeper than its parent.
	for _, want := range []string{"\n## a\n", "\n### a-b\n", "\n#### a-b-c\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing heading %q in:\n%s", strings.TrimSpace(want), out)
		}
	}
}

func TestRender_MetadataBullets(t *testing.T) {
	forest := []*tracker.Node{
		node(tracker.Record{
			ID:          "auth",
			Name:        "Authentication",
			Description: "All authentication concerns",
			Status:      tracker.StatusPlanned,
		},
			node(tracker.Record{
				ID:          "auth-login",
				Name:        "Login",
				Status:      tracker.StatusDone,
				CodeSymbols: []string{"loginUser"},
				Files:       []string{"auth/login.go"},
			}),
		),
	}

	out := doc.Render("Features", forest)

	for _, want := range []string{
		"**Authentication**",
		"All authentication concerns",
		"- **Status:** done",
		"- **Symbols:** loginUser",
		"- **Files:** auth/login.go",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRender_OmitsEmptyListFields(t *testing.T) {
	forest := []*tracker.Node{
		node(tracker.Record{ID: "bare", Name: "Bare", Status: tracker.StatusPlanned}),
	}

	out := doc.Render("Features", forest)

	if !strings.Contains(out, "- **Status:** planned") {
		t.Errorf("status bullet must always be present:\n%s", out)
	}
	for _, label := range []string{"Symbols", "Files", "Commits", "Uses", "Notes"} {
		if strings.Contains(out, "**"+label+":**") {
			t.Errorf("empty field %s rendered:\n%s", label, out)
		}
	}
}

func TestRender_JoinsListsWithCommas(t *testing.T) {
	forest := []*tracker.Node{
		node(tracker.Record{
			ID:     "f",
			Name:   "F",
			Status: tracker.StatusPlanned,
			Uses:   []string{"infra-db", "infra-cache"},
		}),
	}

	out := doc.Render("Features", forest)
	if !strings.Contains(out, "- **Uses:** infra-db, infra-cache") {
		t.Errorf("uses list not comma-joined:\n%s", out)
	}
}

// ─── Publisher ──────────────────────────────────────────────────────────────

func newPublishedStore(t *testing.T) (*tracker.Store, *doc.Publisher, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := tracker.New(tracker.Config{DataDir: dir, MaxSearchResults: 50})
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, doc.NewPublisher(dir), dir
}

func TestPublisher_WritesBothDocuments(t *testing.T) {
	s, pub, dir := newPublishedStore(t)
	if _, err := s.Create(tracker.CreateParams{ID: "auth", Kind: tracker.KindFeature, Name: "Authentication"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(tracker.CreateParams{ID: "onboarding", Kind: tracker.KindWorkflow, Name: "Onboarding"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := pub.Publish(s); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	features, err := os.ReadFile(filepath.Join(dir, doc.FeaturesDoc))
	if err != nil {
		t.Fatalf("read features doc: %v", err)
	}
	if !strings.Contains(string(features), "## auth") {
		t.Errorf("features doc missing record:\n%s", features)
	}

	workflows, err := os.ReadFile(filepath.Join(dir, doc.WorkflowsDoc))
	if err != nil {
		t.Fatalf("read workflows doc: %v", err)
	}
	if !strings.Contains(string(workflows), "## onboarding") {
		t.Errorf("workflows doc missing record:\n%s", workflows)
	}
	if strings.Contains(string(workflows), "## auth") {
		t.Error("feature leaked into workflows doc")
	}
}

func TestPublisher_RepublishIsStable(t *testing.T) {
	s, pub, dir := newPublishedStore(t)
	if _, err := s.Create(tracker.CreateParams{ID: "auth", Kind: tracker.KindFeature, Name: "Authentication"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := pub.Publish(s); err != nil {
		t.Fatalf("first publish: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(dir, doc.FeaturesDoc))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if err := pub.Publish(s); err != nil {
		t.Fatalf("second publish: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(dir, doc.FeaturesDoc))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if string(first) != string(second) {
		t.Error("republishing an unchanged store altered the document")
	}
}

func TestPublisher_ExcludesDeletedRecords(t *testing.T) {
	s, pub, dir := newPublishedStore(t)
	if _, err := s.Create(tracker.CreateParams{ID: "keep", Kind: tracker.KindFeature, Name: "Keep"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(tracker.CreateParams{ID: "drop", Kind: tracker.KindFeature, Name: "Drop"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Delete("drop"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := pub.Publish(s); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, doc.FeaturesDoc))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(content), "## drop") {
		t.Errorf("deleted record rendered:\n%s", content)
	}
	if !strings.Contains(string(content), "## keep") {
		t.Errorf("live record missing:\n%s", content)
	}
}

func TestPublisher_LeavesNoTempFiles(t *testing.T) {
	s, pub, dir := newPublishedStore(t)
	if err := pub.Publish(s); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "."+doc.FeaturesDoc) || strings.HasPrefix(e.Name(), "."+doc.WorkflowsDoc) {
			t.Errorf("stale temp file left behind: %s", e.Name())
		}
	}
}
