// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists recommendation runs to a local SQLite database.
// The engine itself is stateless; history lives entirely on the CLI side
// so earlier shortlists can be reviewed or exported later.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/drivematch/internal/engine"
	"github.com/pdiddy/drivematch/pkg/types"
)

const dbFile = "history.db"

// timeFormat is RFC3339 with fixed-width nanoseconds so the stored
// strings sort lexicographically in timestamp order.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Store manages the run-history SQLite database.
type Store struct {
	db  *sql.DB
	dir string
}

// NewStore opens or creates the history database at dir/history.db,
// creating the schema if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dir: dir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			method TEXT NOT NULL,
			result_count INTEGER NOT NULL,
			profile TEXT NOT NULL,
			financial TEXT NOT NULL,
			ranking TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RunSummary is the listing view of a stored run.
type RunSummary struct {
	ID          string    `json:"id" yaml:"id"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	Method      string    `json:"method" yaml:"method"`
	ResultCount int       `json:"result_count" yaml:"result_count"`
}

// RunRecord is a fully loaded stored run.
type RunRecord struct {
	RunSummary `yaml:",inline"`

	Profile   types.UserProfile      `json:"profile" yaml:"profile"`
	Financial types.FinancialProfile `json:"financial" yaml:"financial"`
	Ranking   types.Ranking          `json:"ranking" yaml:"ranking"`
}

// Save persists one recommendation result and returns its assigned ID.
func (s *Store) Save(ctx context.Context, res *engine.Result) (string, error) {
	profileJSON, err := json.Marshal(res.Profile)
	if err != nil {
		return "", fmt.Errorf("marshaling profile: %w", err)
	}
	financialJSON, err := json.Marshal(res.Financial)
	if err != nil {
		return "", fmt.Errorf("marshaling financial profile: %w", err)
	}
	rankingJSON, err := json.Marshal(res.Ranking)
	if err != nil {
		return "", fmt.Errorf("marshaling ranking: %w", err)
	}

	id := uuid.NewString()
	createdAt := time.Now().UTC().Format(timeFormat)

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, method, result_count, profile, financial, ranking)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, createdAt, string(res.Ranking.Method), res.Ranking.ResultCount,
		string(profileJSON), string(financialJSON), string(rankingJSON),
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}
	return id, nil
}

// List returns stored runs newest first, up to limit (0 = all).
func (s *Store) List(ctx context.Context, limit int) ([]RunSummary, error) {
	query := `SELECT id, created_at, method, result_count FROM runs ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var sum RunSummary
		var created string
		if err := rows.Scan(&sum.ID, &created, &sum.Method, &sum.ResultCount); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		sum.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Get loads one run by ID.
func (s *Store) Get(ctx context.Context, id string) (*RunRecord, error) {
	var rec RunRecord
	var created, profileJSON, financialJSON, rankingJSON string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, method, result_count, profile, financial, ranking
		 FROM runs WHERE id = ?`, id,
	).Scan(&rec.ID, &created, &rec.Method, &rec.ResultCount,
		&profileJSON, &financialJSON, &rankingJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying run: %w", err)
	}

	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, fmt.Errorf("parsing run timestamp: %w", err)
	}
	if err := json.Unmarshal([]byte(profileJSON), &rec.Profile); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	if err := json.Unmarshal([]byte(financialJSON), &rec.Financial); err != nil {
		return nil, fmt.Errorf("decoding financial profile: %w", err)
	}
	if err := json.Unmarshal([]byte(rankingJSON), &rec.Ranking); err != nil {
		return nil, fmt.Errorf("decoding ranking: %w", err)
	}
	return &rec, nil
}

// Delete removes one run by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("run %s not found", id)
	}
	return nil
}
