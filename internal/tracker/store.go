// Package tracker implements the persistent record store for feattree.
//
// It uses SQLite with FTS5 full-text search to store the hierarchical
// feature and workflow records of a project. The FTS index is maintained
// by triggers, so every mutation and its index update commit in the same
// transaction — a reader never observes a record without its index entry.
package tracker

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// ─── Types ───────────────────────────────────────────────────────────────────

// Kind discriminates the two record trees.
type Kind string

const (
	// KindFeature marks atomic, implementable code units.
	KindFeature Kind = "feature"
	// KindWorkflow marks user-facing experiences composed of features.
	KindWorkflow Kind = "workflow"
)

// Valid reports whether k is a known record kind.
func (k Kind) Valid() bool {
	return k == KindFeature || k == KindWorkflow
}

// Status is the lifecycle state of a record. "deleted" is a soft-delete
// marker: the record stays in storage but leaves every derived surface.
type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
	StatusDeleted    Status = "deleted"
)

// Valid reports whether s is one of the four allowed status values.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusDone, StatusDeleted:
		return true
	}
	return false
}

// Record is a feature or workflow entry. ParentID relates records into a
// forest; a dangling ParentID degrades the record to a root rather than
// erroring, since parents may themselves be deleted.
type Record struct {
	ID             string   `json:"id"`
	Kind           Kind     `json:"kind"`
	ParentID       string   `json:"parent_id,omitempty"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Status         Status   `json:"status"`
	CodeSymbols    []string `json:"code_symbols,omitempty"`
	Files          []string `json:"files,omitempty"`
	CommitIDs      []string `json:"commit_ids,omitempty"`
	Uses           []string `json:"uses,omitempty"`
	TechnicalNotes string   `json:"technical_notes,omitempty"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

// Node is a record with its resolved children, ordered by id.
type Node struct {
	Record
	Children []*Node `json:"children,omitempty"`
}

// SearchResult embeds a Record with its FTS5 rank score. Lower rank is a
// better match; rank is 0 for LIKE-fallback results.
type SearchResult struct {
	Record
	Rank float64 `json:"rank"`
}

// CreateParams holds the input for creating a new record.
type CreateParams struct {
	ID          string   `json:"id"`
	Kind        Kind     `json:"kind"`
	Name        string   `json:"name"`
	ParentID    string   `json:"parent_id,omitempty"`
	Description string   `json:"description,omitempty"`
	Status      Status   `json:"status,omitempty"`
	Uses        []string `json:"uses,omitempty"`
}

// UpdateParams holds partial update fields. Nil pointers keep the prior
// value; list fields are replaced wholesale, never merged.
type UpdateParams struct {
	Name           *string   `json:"name,omitempty"`
	ParentID       *string   `json:"parent_id,omitempty"`
	Description    *string   `json:"description,omitempty"`
	Status         *Status   `json:"status,omitempty"`
	CodeSymbols    *[]string `json:"code_symbols,omitempty"`
	Files          *[]string `json:"files,omitempty"`
	CommitIDs      *[]string `json:"commit_ids,omitempty"`
	Uses           *[]string `json:"uses,omitempty"`
	TechnicalNotes *string   `json:"technical_notes,omitempty"`
}

// Stats holds aggregate record counts.
type Stats struct {
	Features   int `json:"features"`
	Workflows  int `json:"workflows"`
	Planned    int `json:"planned"`
	InProgress int `json:"in_progress"`
	Done       int `json:"done"`
	Deleted    int `json:"deleted"`
}

// ─── Config ──────────────────────────────────────────────────────────────────

// Config holds record store configuration. The store carries no ambient
// global state: multiple instances with different data dirs can coexist.
type Config struct {
	DataDir          string
	MaxSearchResults int
}

// DefaultConfig returns the store configuration for a project root.
func DefaultConfig(projectRoot string) Config {
	return Config{
		DataDir:          filepath.Join(projectRoot, ".feat-tree"),
		MaxSearchResults: 50,
	}
}

// ─── Store ───────────────────────────────────────────────────────────────────

// Store is the durable record store backed by SQLite + FTS5.
type Store struct {
	db  *sql.DB
	cfg Config
}

// New creates a Store with the given configuration. It creates the data
// directory if needed, opens SQLite with WAL mode, and runs migrations.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("tracker: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "features.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("tracker: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("tracker: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("tracker: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ─── Migrations ──────────────────────────────────────────────────────────────

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			id              TEXT PRIMARY KEY,
			kind            TEXT NOT NULL DEFAULT 'feature',
			parent_id       TEXT,
			name            TEXT NOT NULL,
			description     TEXT,
			status          TEXT NOT NULL DEFAULT 'planned',
			code_symbols    TEXT,
			files           TEXT,
			commit_ids      TEXT,
			uses            TEXT,
			technical_notes TEXT,
			created_at      TEXT NOT NULL,
			updated_at      TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_records_parent ON records(parent_id);
		CREATE INDEX IF NOT EXISTS idx_records_kind   ON records(kind, status);

		CREATE VIRTUAL TABLE IF NOT EXISTS records_fts USING fts5(
			id, name, description, technical_notes
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// FTS triggers (idempotent). Triggers run inside the transaction of
	// the statement that fired them, so the index commits with the data.
	var name string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='trigger' AND name='records_fts_insert'",
	).Scan(&name)

	if err == sql.ErrNoRows {
		triggers := `
			CREATE TRIGGER records_fts_insert AFTER INSERT ON records BEGIN
				INSERT INTO records_fts(id, name, description, technical_notes)
				VALUES (new.id, new.name, new.description, new.technical_notes);
			END;

			CREATE TRIGGER records_fts_update AFTER UPDATE ON records BEGIN
				DELETE FROM records_fts WHERE id = old.id;
				INSERT INTO records_fts(id, name, description, technical_notes)
				VALUES (new.id, new.name, new.description, new.technical_notes);
			END;

			CREATE TRIGGER records_fts_delete AFTER DELETE ON records BEGIN
				DELETE FROM records_fts WHERE id = old.id;
			END;
		`
		if _, err := s.db.Exec(triggers); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	return nil
}

// ─── CRUD ────────────────────────────────────────────────────────────────────

const recordColumns = `id, kind, ifnull(parent_id, ''), name, ifnull(description, ''),
	status, ifnull(code_symbols, ''), ifnull(files, ''), ifnull(commit_ids, ''),
	ifnull(uses, ''), ifnull(technical_notes, ''), created_at, updated_at`

// recordColumnsR is recordColumns with every column qualified by the "r"
// alias, for queries that join records against the FTS table.
const recordColumnsR = `r.id, r.kind, ifnull(r.parent_id, ''), r.name, ifnull(r.description, ''),
	r.status, ifnull(r.code_symbols, ''), ifnull(r.files, ''), ifnull(r.commit_ids, ''),
	ifnull(r.uses, ''), ifnull(r.technical_notes, ''), r.created_at, r.updated_at`

// Create inserts a new record. The id must be unique across live and
// soft-deleted records alike; deletion never frees an id for reuse.
func (s *Store) Create(p CreateParams) (*Record, error) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	kind := p.Kind
	if kind == "" {
		kind = KindFeature
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrValidation, p.Kind)
	}
	status := p.Status
	if status == "" {
		status = StatusPlanned
	}
	if !status.Valid() || status == StatusDeleted {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, p.Status)
	}
	parentID := strings.TrimSpace(p.ParentID)
	if parentID == id {
		return nil, fmt.Errorf("%w: record %q cannot be its own parent", ErrCycle, id)
	}

	usesJSON, err := marshalList(p.Uses)
	if err != nil {
		return nil, fmt.Errorf("%w: uses: %v", ErrValidation, err)
	}

	// created_at == updated_at on create, by construction.
	now := Now()
	_, err = s.db.Exec(
		`INSERT INTO records (id, kind, parent_id, name, description, status, uses, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, string(kind), nullableString(parentID), p.Name,
		nullableString(p.Description), string(status), usesJSON, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		return nil, fmt.Errorf("tracker: create %q: %w", id, err)
	}

	return s.Get(id)
}

// Get retrieves a record by id. Soft-deleted records are returned too:
// they remain visible for audit even though search and render skip them.
func (s *Store) Get(id string) (*Record, error) {
	row := s.db.QueryRow(`SELECT `+recordColumns+` FROM records WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("tracker: get %q: %w", id, err)
	}
	return rec, nil
}

// Update applies a partial update to a record. Unset fields keep their
// prior value; list fields are replaced wholesale. The id and created_at
// are immutable, and a soft-deleted record cannot be mutated — "deleted"
// is terminal except for re-creation outside the normal tool surface.
func (s *Store) Update(id string, p UpdateParams) (*Record, error) {
	cur, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if cur.Status == StatusDeleted {
		return nil, fmt.Errorf("%w: record %q is deleted", ErrValidation, id)
	}

	next := *cur
	if p.Name != nil {
		if strings.TrimSpace(*p.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		next.Name = *p.Name
	}
	if p.Description != nil {
		next.Description = *p.Description
	}
	if p.TechnicalNotes != nil {
		next.TechnicalNotes = *p.TechnicalNotes
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, *p.Status)
		}
		next.Status = *p.Status
	}
	if p.CodeSymbols != nil {
		next.CodeSymbols = *p.CodeSymbols
	}
	if p.Files != nil {
		next.Files = *p.Files
	}
	if p.CommitIDs != nil {
		next.CommitIDs = *p.CommitIDs
	}
	if p.Uses != nil {
		next.Uses = *p.Uses
	}
	if p.ParentID != nil {
		parentID := strings.TrimSpace(*p.ParentID)
		if err := s.checkCycle(id, parentID); err != nil {
			return nil, err
		}
		next.ParentID = parentID
	}

	symbolsJSON, err := marshalList(next.CodeSymbols)
	if err != nil {
		return nil, fmt.Errorf("%w: code_symbols: %v", ErrValidation, err)
	}
	filesJSON, err := marshalList(next.Files)
	if err != nil {
		return nil, fmt.Errorf("%w: files: %v", ErrValidation, err)
	}
	commitsJSON, err := marshalList(next.CommitIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: commit_ids: %v", ErrValidation, err)
	}
	usesJSON, err := marshalList(next.Uses)
	if err != nil {
		return nil, fmt.Errorf("%w: uses: %v", ErrValidation, err)
	}

	// Single statement: the FTS trigger fires in the same transaction.
	_, err = s.db.Exec(
		`UPDATE records
		 SET name = ?,
		     parent_id = ?,
		     description = ?,
		     status = ?,
		     code_symbols = ?,
		     files = ?,
		     commit_ids = ?,
		     uses = ?,
		     technical_notes = ?,
		     updated_at = ?
		 WHERE id = ?`,
		next.Name, nullableString(next.ParentID), nullableString(next.Description),
		string(next.Status), symbolsJSON, filesJSON, commitsJSON, usesJSON,
		nullableString(next.TechnicalNotes), Now(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("tracker: update %q: %w", id, err)
	}

	return s.Get(id)
}

// Delete soft-deletes a record: status flips to "deleted", every other
// field is retained for audit and recovery. Idempotent — deleting an
// already-deleted record returns it unchanged, timestamps untouched.
func (s *Store) Delete(id string) (*Record, error) {
	cur, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if cur.Status == StatusDeleted {
		return cur, nil
	}

	_, err = s.db.Exec(
		`UPDATE records SET status = ?, updated_at = ? WHERE id = ?`,
		string(StatusDeleted), Now(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("tracker: delete %q: %w", id, err)
	}
	return s.Get(id)
}

// checkCycle rejects a re-parenting that would make id its own ancestor.
// The walk stops at roots and dangling parents; the step cap guards
// against a corrupted parent chain.
func (s *Store) checkCycle(id, newParentID string) error {
	if newParentID == "" {
		return nil
	}
	if newParentID == id {
		return fmt.Errorf("%w: record %q cannot be its own parent", ErrCycle, id)
	}

	cur := newParentID
	for steps := 0; steps < 1000; steps++ {
		var parent sql.NullString
		err := s.db.QueryRow(`SELECT parent_id FROM records WHERE id = ?`, cur).Scan(&parent)
		if err == sql.ErrNoRows {
			return nil // dangling parent, treated as root
		}
		if err != nil {
			return fmt.Errorf("tracker: cycle check at %q: %w", cur, err)
		}
		if !parent.Valid || parent.String == "" {
			return nil
		}
		if parent.String == id {
			return fmt.Errorf("%w: %q is an ancestor of %q", ErrCycle, id, newParentID)
		}
		cur = parent.String
	}
	return fmt.Errorf("%w: parent chain from %q exceeds depth limit", ErrCycle, newParentID)
}

// ─── Forest ──────────────────────────────────────────────────────────────────

// ListForest returns the non-deleted records of a kind as a forest.
// Rows are ordered by id, which makes roots and children lexicographic
// and the renderer's output diff-stable.
func (s *Store) ListForest(kind Kind) ([]*Node, error) {
	records, err := s.listLive(kind)
	if err != nil {
		return nil, err
	}
	return BuildForest(records), nil
}

func (s *Store) listLive(kind Kind) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT `+recordColumns+` FROM records WHERE kind = ? AND status != ? ORDER BY id`,
		string(kind), string(StatusDeleted),
	)
	if err != nil {
		return nil, fmt.Errorf("tracker: list %s records: %w", kind, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("tracker: scan record: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// BuildForest links records into trees by parent_id. Records whose parent
// is missing from the input (dangling or deleted) become roots. Input
// order is preserved, so id-ordered input yields an id-ordered forest.
func BuildForest(records []Record) []*Node {
	byID := make(map[string]*Node, len(records))
	for i := range records {
		byID[records[i].ID] = &Node{Record: records[i]}
	}

	var roots []*Node
	for i := range records {
		node := byID[records[i].ID]
		if parent, ok := byID[records[i].ParentID]; ok && records[i].ParentID != records[i].ID {
			parent.Children = append(parent.Children, node)
		} else {
			roots = append(roots, node)
		}
	}
	return roots
}

// Children returns the direct, non-deleted children of a record, by id.
func (s *Store) Children(id string) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT `+recordColumns+` FROM records WHERE parent_id = ? AND status != ? ORDER BY id`,
		id, string(StatusDeleted),
	)
	if err != nil {
		return nil, fmt.Errorf("tracker: children of %q: %w", id, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("tracker: scan record: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// ─── Search ──────────────────────────────────────────────────────────────────

// Search runs a full-text query over name, description, and technical
// notes. Deleted records are always excluded. Results come best-match
// first (FTS5 rank), ties broken by most-recently-updated, then id for
// determinism. An empty or whitespace-only query returns no results
// rather than everything.
func (s *Store) Search(kind Kind, query string) ([]SearchResult, error) {
	ftsQuery := sanitizeFTS(query)
	if ftsQuery == "" {
		return nil, nil
	}

	limit := s.cfg.MaxSearchResults
	if limit <= 0 {
		limit = 50
	}

	results, err := s.searchFTS(kind, ftsQuery, limit)
	if err != nil {
		// FTS5 rejects some raw syntax; degrade to a LIKE scan.
		return s.searchLike(kind, query, limit)
	}
	return results, nil
}

func (s *Store) searchFTS(kind Kind, ftsQuery string, limit int) ([]SearchResult, error) {
	rows, err := s.db.Query(
		`SELECT `+recordColumnsR+`, fts.rank
		 FROM records_fts fts
		 JOIN records r ON r.id = fts.id
		 WHERE records_fts MATCH ? AND r.kind = ? AND r.status != ?
		 ORDER BY fts.rank, datetime(r.updated_at) DESC, r.id
		 LIMIT ?`,
		ftsQuery, string(kind), string(StatusDeleted), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var sr SearchResult
		rec, err := scanRecordInto(rows, &sr.Rank)
		if err != nil {
			return nil, err
		}
		sr.Record = *rec
		results = append(results, sr)
	}
	return results, rows.Err()
}

// searchLike is the fallback substring search used when FTS5 cannot
// parse the query.
func (s *Store) searchLike(kind Kind, query string, limit int) ([]SearchResult, error) {
	like := "%" + strings.TrimSpace(query) + "%"
	rows, err := s.db.Query(
		`SELECT `+recordColumns+` FROM records
		 WHERE kind = ? AND status != ?
		   AND (name LIKE ? OR description LIKE ? OR technical_notes LIKE ?)
		 ORDER BY datetime(updated_at) DESC, id
		 LIMIT ?`,
		string(kind), string(StatusDeleted), like, like, like, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("tracker: fallback search: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("tracker: scan search result: %w", err)
		}
		results = append(results, SearchResult{Record: *rec})
	}
	return results, rows.Err()
}

// ─── Dependency links ────────────────────────────────────────────────────────

// UsedBy returns the non-deleted records whose uses list contains id.
// The uses column is opaque JSON, so the filter runs in Go — record sets
// are small enough that a table scan is fine.
func (s *Store) UsedBy(id string) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT `+recordColumns+` FROM records WHERE status != ? AND uses IS NOT NULL ORDER BY id`,
		string(StatusDeleted),
	)
	if err != nil {
		return nil, fmt.Errorf("tracker: used-by scan: %w", err)
	}
	defer rows.Close()

	var result []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("tracker: scan record: %w", err)
		}
		for _, u := range rec.Uses {
			if u == id {
				result = append(result, *rec)
				break
			}
		}
	}
	return result, rows.Err()
}

// ─── Stats ───────────────────────────────────────────────────────────────────

// Stats returns aggregate record counts. Status counts cover live
// records of both kinds plus the soft-deleted total.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	rows, err := s.db.Query(`SELECT kind, status, COUNT(*) FROM records GROUP BY kind, status`)
	if err != nil {
		return nil, fmt.Errorf("tracker: stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind, status string
		var n int
		if err := rows.Scan(&kind, &status, &n); err != nil {
			return nil, fmt.Errorf("tracker: scan stats: %w", err)
		}
		switch Status(status) {
		case StatusPlanned:
			stats.Planned += n
		case StatusInProgress:
			stats.InProgress += n
		case StatusDone:
			stats.Done += n
		case StatusDeleted:
			stats.Deleted += n
		}
		if Status(status) != StatusDeleted {
			switch Kind(kind) {
			case KindFeature:
				stats.Features += n
			case KindWorkflow:
				stats.Workflows += n
			}
		}
	}
	return stats, rows.Err()
}

// ─── Scanning helpers ────────────────────────────────────────────────────────

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	return scanRecordInto(row)
}

// scanRecordInto scans the recordColumns set plus any extra columns.
func scanRecordInto(row rowScanner, extra ...any) (*Record, error) {
	var rec Record
	var kind, status string
	var symbols, files, commits, uses string

	dest := []any{
		&rec.ID, &kind, &rec.ParentID, &rec.Name, &rec.Description,
		&status, &symbols, &files, &commits, &uses,
		&rec.TechnicalNotes, &rec.CreatedAt, &rec.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	rec.Kind = Kind(kind)
	rec.Status = Status(status)

	var err error
	if rec.CodeSymbols, err = unmarshalList(symbols); err != nil {
		return nil, fmt.Errorf("code_symbols: %w", err)
	}
	if rec.Files, err = unmarshalList(files); err != nil {
		return nil, fmt.Errorf("files: %w", err)
	}
	if rec.CommitIDs, err = unmarshalList(commits); err != nil {
		return nil, fmt.Errorf("commit_ids: %w", err)
	}
	if rec.Uses, err = unmarshalList(uses); err != nil {
		return nil, fmt.Errorf("uses: %w", err)
	}
	return &rec, nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// marshalList serializes a list field for storage. Empty lists store as
// NULL — the serialization format is a storage detail, not contract.
func marshalList(items []string) (*string, error) {
	if len(items) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}

func unmarshalList(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// sanitizeFTS wraps each word in quotes for safe FTS5 queries.
// "login flow" → `"login" "flow"`
func sanitizeFTS(query string) string {
	words := strings.Fields(query)
	for i, w := range words {
		w = strings.Trim(w, `"`)
		words[i] = `"` + w + `"`
	}
	return strings.Join(words, " ")
}

// isUniqueViolation checks if an error is a SQLite UNIQUE constraint violation.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Now returns the current UTC time formatted for SQLite.
func Now() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05")
}
