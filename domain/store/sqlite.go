package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/Shengwang-Community/ShengwangBeautyView/domain/beauty"
)

// SQLiteStore keeps module snapshots in a SQLite database.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex // guards entropy
	entropy *ulid.MonotonicEntropy
}

// NewSQLiteStore opens or creates the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// newID returns an id that sorts after every earlier id, including ids
// minted in the same millisecond.
func (s *SQLiteStore) newID(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id         TEXT PRIMARY KEY,
		module     INTEGER NOT NULL,
		template   TEXT NOT NULL DEFAULT '',
		params     TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_snapshots_module ON snapshots(module, id DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

type storedParams struct {
	Floats map[string]float64 `json:"floats,omitempty"`
	Ints   map[string]int     `json:"ints,omitempty"`
	Areas  map[int]int        `json:"areas,omitempty"`
}

// SaveSnapshot assigns an id and creation time to snap and stores it.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, snap Snapshot) (Snapshot, error) {
	if !snap.Module.Valid() {
		return Snapshot{}, fmt.Errorf("save snapshot: invalid module %d", int(snap.Module))
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now().UTC()
	}
	snap.ID = s.newID(snap.CreatedAt)

	blob, err := json.Marshal(storedParams{Floats: snap.Floats, Ints: snap.Ints, Areas: snap.Areas})
	if err != nil {
		return Snapshot{}, fmt.Errorf("encode params: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, module, template, params, created_at) VALUES (?, ?, ?, ?, ?)`,
		snap.ID, int(snap.Module), snap.Template, string(blob), snap.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Snapshot{}, fmt.Errorf("insert snapshot: %w", err)
	}
	return snap, nil
}

// LatestSnapshot returns the newest snapshot for m, or ErrNotFound.
func (s *SQLiteStore) LatestSnapshot(ctx context.Context, m beauty.Module) (Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, module, template, params, created_at FROM snapshots WHERE module = ? ORDER BY id DESC LIMIT 1`,
		int(m))
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, ErrNotFound
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("latest snapshot: %w", err)
	}
	return snap, nil
}

// ListSnapshots returns snapshots newest first. A zero module lists every
// module; limit <= 0 means no limit.
func (s *SQLiteStore) ListSnapshots(ctx context.Context, m beauty.Module, limit int) ([]Snapshot, error) {
	query := `SELECT id, module, template, params, created_at FROM snapshots`
	var args []any
	if m != 0 {
		query += ` WHERE module = ?`
		args = append(args, int(m))
	}
	query += ` ORDER BY id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// DeleteSnapshots removes every snapshot of m and returns how many were
// deleted.
func (s *SQLiteStore) DeleteSnapshots(ctx context.Context, m beauty.Module) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE module = ?`, int(m))
	if err != nil {
		return 0, fmt.Errorf("delete snapshots: %w", err)
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(sc scanner) (Snapshot, error) {
	var (
		snap    Snapshot
		module  int
		blob    string
		created string
	)
	if err := sc.Scan(&snap.ID, &module, &snap.Template, &blob, &created); err != nil {
		return Snapshot{}, err
	}
	snap.Module = beauty.Module(module)
	var p storedParams
	if err := json.Unmarshal([]byte(blob), &p); err != nil {
		return Snapshot{}, fmt.Errorf("decode params: %w", err)
	}
	snap.Floats, snap.Ints, snap.Areas = p.Floats, p.Ints, p.Areas
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parse created_at: %w", err)
	}
	snap.CreatedAt = t
	return snap, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
