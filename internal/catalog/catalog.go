// Package catalog records the figure files written into an output directory.
//
// figures.jsonl is the source of truth. On Open it is loaded into a SQLite
// database that serves queries; every change is written back to the JSONL
// file atomically. Both files live in the catalog directory (DirName under
// the output directory).
package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/mathdoc/pkg/types"
)

// File names inside the catalog directory.
const (
	DirName     = ".mathdoc"
	figuresFile = "figures.jsonl"
	dbFile      = "catalog.db"
)

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Catalog implements types.Catalog on SQLite with a JSONL source of truth.
type Catalog struct {
	mu   sync.RWMutex
	dir  string
	db   *sql.DB
	open bool

	// now is replaced in tests.
	now func() time.Time
}

var _ types.Catalog = (*Catalog)(nil)

// Open creates dir if needed, rebuilds the SQLite index from figures.jsonl,
// and returns an open Catalog.
func Open(dir string) (*Catalog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create catalog dir: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	// The database is an index over the JSONL file; start from scratch.
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	if _, err := db.Exec(createFigures); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	c := &Catalog{
		dir:  dir,
		db:   db,
		open: true,
		now:  time.Now,
	}
	if err := c.load(); err != nil {
		db.Close()
		return nil, fmt.Errorf("load %s: %w", figuresFile, err)
	}
	return c, nil
}

// OpenFor opens the catalog kept under outputDir.
func OpenFor(outputDir string) (*Catalog, error) {
	return Open(filepath.Join(outputDir, DirName))
}

// Dir returns the catalog directory.
func (c *Catalog) Dir() string { return c.dir }

// BeginRun returns a fresh UUID v7 run ID. The exercise name is not stored
// until a figure is added.
func (c *Catalog) BeginRun(exercise string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.open {
		return "", types.ErrCatalogClosed
	}
	if exercise == "" {
		return "", types.ErrInvalidRecord
	}
	return newUUID(), nil
}

// Add stores rec and persists the catalog. Empty ID and CreatedAt are filled.
func (c *Catalog) Add(rec types.FigureRecord) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return "", types.ErrCatalogClosed
	}
	if rec.ID == "" {
		rec.ID = newUUID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = c.now()
	}
	if err := c.insert(c.db, rec); err != nil {
		return "", err
	}
	if err := c.persistLocked(); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// List returns records for exercise, or every record when exercise is empty.
func (c *Catalog) List(exercise string) ([]types.FigureRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.open {
		return nil, types.ErrCatalogClosed
	}
	return c.query(exercise)
}

// Forget deletes the records for exercise (all when empty) and returns them.
// Figure files are left to the caller.
func (c *Catalog) Forget(exercise string) ([]types.FigureRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return nil, types.ErrCatalogClosed
	}
	removed, err := c.query(exercise)
	if err != nil {
		return nil, err
	}
	if len(removed) == 0 {
		return nil, nil
	}

	q := "DELETE FROM figures"
	var args []any
	if exercise != "" {
		q += " WHERE exercise = ?"
		args = append(args, exercise)
	}
	if _, err := c.db.Exec(q, args...); err != nil {
		return nil, fmt.Errorf("delete figures: %w", err)
	}
	if err := c.persistLocked(); err != nil {
		return nil, err
	}
	return removed, nil
}

// Close releases the database. Idempotent.
func (c *Catalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return nil
	}
	c.open = false
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close catalog db: %w", err)
	}
	return nil
}

// load inserts every record in figures.jsonl into the database.
func (c *Catalog) load() error {
	raws, err := readJSONL(filepath.Join(c.dir, figuresFile))
	if err != nil {
		return err
	}
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	for _, raw := range raws {
		var rec types.FigureRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		if rec.ID == "" || rec.Validate() != nil {
			continue
		}
		if err := c.insert(tx, rec); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func (c *Catalog) insert(db execer, rec types.FigureRecord) error {
	_, err := db.Exec(
		`INSERT OR REPLACE INTO figures (figure_id, run_id, exercise, seq, file, format, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.RunID, rec.Exercise, rec.Seq, rec.File, rec.Format,
		rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert figure %s: %w", rec.File, err)
	}
	return nil
}

func (c *Catalog) query(exercise string) ([]types.FigureRecord, error) {
	var b strings.Builder
	b.WriteString(selectFigures)
	var args []any
	if exercise != "" {
		b.WriteString(" WHERE exercise = ?")
		args = append(args, exercise)
	}
	b.WriteString(orderFigures)

	rows, err := c.db.Query(b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query figures: %w", err)
	}
	defer rows.Close()

	var out []types.FigureRecord
	for rows.Next() {
		var (
			rec     types.FigureRecord
			created string
		)
		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.Exercise, &rec.Seq, &rec.File, &rec.Format, &created); err != nil {
			return nil, fmt.Errorf("scan figure: %w", err)
		}
		rec.CreatedAt, err = time.Parse(timeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", created, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// persistLocked rewrites figures.jsonl from the database.
// The caller must hold c.mu.
func (c *Catalog) persistLocked() error {
	recs, err := c.query("")
	if err != nil {
		return err
	}
	raws := make([]json.RawMessage, 0, len(recs))
	for _, rec := range recs {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal figure %s: %w", rec.File, err)
		}
		raws = append(raws, data)
	}
	if err := writeJSONL(filepath.Join(c.dir, figuresFile), raws); err != nil {
		return fmt.Errorf("persist %s: %w", figuresFile, err)
	}
	return nil
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}
