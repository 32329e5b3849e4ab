// Package registry records generated deposit batches in a SQLite database
// so past batch ids and output files can be listed and audited.
package registry

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Batch is one recorded deposit generation.
type Batch struct {
	ID        string    `json:"id"`
	BatchID   string    `json:"batch_id"`
	Filename  string    `json:"filename"`
	Articles  int       `json:"articles"`
	CreatedAt time.Time `json:"created_at"`
}

// Registry is a handle to the batch log database.
type Registry struct {
	db *sql.DB
}

const schema = `CREATE TABLE IF NOT EXISTS batches (
  id TEXT PRIMARY KEY,
  batch_id TEXT NOT NULL,
  filename TEXT NOT NULL,
  articles INTEGER NOT NULL,
  created_at TEXT NOT NULL
)`

// Open opens (creating if needed) the batch registry at path.
func Open(path string) (*Registry, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening registry database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating registry schema: %w", err)
	}
	return &Registry{db: db}, nil
}

// Close closes the underlying database.
func (r *Registry) Close() error {
	return r.db.Close()
}

// Record logs one generated batch and returns the stored row.
func (r *Registry) Record(batchID, filename string, articles int) (Batch, error) {
	b := Batch{
		ID:        uuid.NewString(),
		BatchID:   batchID,
		Filename:  filename,
		Articles:  articles,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.db.Exec(
		`INSERT INTO batches (id, batch_id, filename, articles, created_at) VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.BatchID, b.Filename, b.Articles, b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return Batch{}, fmt.Errorf("recording batch: %w", err)
	}
	return b, nil
}

// List returns recorded batches, most recent first.
func (r *Registry) List() ([]Batch, error) {
	rows, err := r.db.Query(
		`SELECT id, batch_id, filename, articles, created_at FROM batches ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing batches: %w", err)
	}
	defer rows.Close()

	var batches []Batch
	for rows.Next() {
		var b Batch
		var createdAt string
		if err := rows.Scan(&b.ID, &b.BatchID, &b.Filename, &b.Articles, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning batch row: %w", err)
		}
		b.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing batch timestamp: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}
