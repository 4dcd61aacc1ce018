package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded run. The journal is write-only from the simulator's
// point of view: nothing in the engine ever reads it back.
type Entry struct {
	RunID      string        `json:"run_id"`
	ModelPath  string        `json:"model_path"`
	Format     string        `json:"format"`
	Input      string        `json:"input"`
	FinalState string        `json:"final_state"`
	Accepted   bool          `json:"accepted"`
	Steps      int           `json:"steps"`
	Duration   time.Duration `json:"duration"`
	Tape       string        `json:"tape"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Store persists run entries in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens (and if needed creates) the journal database at path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id      TEXT PRIMARY KEY,
		model_path  TEXT NOT NULL,
		format      TEXT NOT NULL,
		input       TEXT NOT NULL,
		final_state TEXT NOT NULL,
		accepted    INTEGER NOT NULL,
		steps       INTEGER NOT NULL,
		duration_ns INTEGER NOT NULL,
		tape        TEXT NOT NULL,
		created_at  TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// Record inserts one run entry. A zero CreatedAt is filled with now.
func (s *Store) Record(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (run_id, model_path, format, input, final_state,
			accepted, steps, duration_ns, tape, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID, entry.ModelPath, entry.Format, entry.Input,
		entry.FinalState, entry.Accepted, entry.Steps,
		entry.Duration.Nanoseconds(), entry.Tape, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, model_path, format, input, final_state,
			accepted, steps, duration_ns, tape, created_at
		FROM runs ORDER BY created_at DESC, run_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		var durationNS int64
		if err := rows.Scan(&e.RunID, &e.ModelPath, &e.Format, &e.Input,
			&e.FinalState, &e.Accepted, &e.Steps, &durationNS,
			&e.Tape, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		e.Duration = time.Duration(durationNS)
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// Prune deletes entries older than the given age and reports how many were
// removed.
func (s *Store) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}
	return res.RowsAffected()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
