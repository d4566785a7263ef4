// Package history keeps past rankings in SQLite so standings can show how
// far each kingdom moved since the previous snapshot.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/riordanpawley/kingdoms/internal/domain"
)

// Store persists ranked snapshots
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Entry is one kingdom's position in a recorded snapshot
type Entry struct {
	SnapshotID string
	Season     string
	TakenAt    time.Time
	Rank       int
	Score      int
}

// Open opens (creating if needed) the history database at path
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, &domain.StoreError{Op: "open", Err: err}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &domain.StoreError{Op: "open", Err: err}
	}
	// one connection: sqlite has a single writer and :memory: is per connection
	db.SetMaxOpenConns(1)

	s := &Store{db: db, logger: logger}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`PRAGMA foreign_keys=ON;`,
		`CREATE TABLE IF NOT EXISTS snapshots (
			id TEXT PRIMARY KEY,
			season TEXT NOT NULL,
			taken_utc TEXT NOT NULL,
			recorded_utc TEXT NOT NULL,
			UNIQUE(season, taken_utc)
		);`,
		`CREATE TABLE IF NOT EXISTS ranks (
			snapshot_id TEXT NOT NULL,
			kingdom_id TEXT NOT NULL,
			rank INTEGER NOT NULL,
			score INTEGER NOT NULL,
			PRIMARY KEY(snapshot_id, kingdom_id),
			FOREIGN KEY(snapshot_id) REFERENCES snapshots(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_taken ON snapshots(taken_utc);`,
		`CREATE INDEX IF NOT EXISTS idx_ranks_kingdom ON ranks(kingdom_id);`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return &domain.StoreError{Op: "migrate", Err: err}
		}
	}
	return nil
}

// timeLayout is fixed width so stored timestamps sort lexically
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(v string) time.Time {
	t, _ := time.Parse(timeLayout, v)
	return t
}

// Record stores the standings of a snapshot. Recording the same season and
// timestamp twice is a no-op that returns the existing snapshot ID.
func (s *Store) Record(ctx context.Context, season string, takenAt time.Time, standings []domain.Standing) (id string, created bool, err error) {
	taken := formatTime(takenAt)

	err = s.db.QueryRowContext(ctx,
		`SELECT id FROM snapshots WHERE season = ? AND taken_utc = ?`, season, taken).Scan(&id)
	switch {
	case err == nil:
		s.logger.Debug("snapshot already recorded", "id", id)
		return id, false, nil
	case !errors.Is(err, sql.ErrNoRows):
		return "", false, &domain.StoreError{Op: "record", Err: err}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", false, &domain.StoreError{Op: "record", Err: err}
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	id = uuid.NewString()
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, season, taken_utc, recorded_utc) VALUES (?, ?, ?, ?)`,
		id, season, taken, formatTime(time.Now())); err != nil {
		return "", false, &domain.StoreError{Op: "record", Err: err}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO ranks (snapshot_id, kingdom_id, rank, score) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", false, &domain.StoreError{Op: "record", Err: err}
	}
	defer stmt.Close()

	for _, st := range standings {
		if _, err = stmt.ExecContext(ctx, id, st.ID, st.Rank, st.Score); err != nil {
			return "", false, &domain.StoreError{Op: "record", Err: fmt.Errorf("kingdom %s: %w", st.ID, err)}
		}
	}

	if err = tx.Commit(); err != nil {
		return "", false, &domain.StoreError{Op: "record", Err: err}
	}

	s.logger.Debug("recorded snapshot", "id", id, "season", season, "count", len(standings))
	return id, true, nil
}

// LatestRanks returns kingdom ID → rank for the most recent snapshot, or an
// empty map when nothing has been recorded
func (s *Store) LatestRanks(ctx context.Context) (map[string]int, error) {
	return s.ranksWhere(ctx, `SELECT id FROM snapshots ORDER BY taken_utc DESC, recorded_utc DESC LIMIT 1`)
}

// RanksBefore returns kingdom ID → rank for the latest snapshot taken
// strictly before t
func (s *Store) RanksBefore(ctx context.Context, t time.Time) (map[string]int, error) {
	return s.ranksWhere(ctx,
		`SELECT id FROM snapshots WHERE taken_utc < ? ORDER BY taken_utc DESC, recorded_utc DESC LIMIT 1`,
		formatTime(t))
}

func (s *Store) ranksWhere(ctx context.Context, snapshotQuery string, args ...any) (map[string]int, error) {
	ranks := make(map[string]int)

	var id string
	err := s.db.QueryRowContext(ctx, snapshotQuery, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return ranks, nil
	}
	if err != nil {
		return nil, &domain.StoreError{Op: "ranks", Err: err}
	}

	rows, err := s.db.QueryContext(ctx, `SELECT kingdom_id, rank FROM ranks WHERE snapshot_id = ?`, id)
	if err != nil {
		return nil, &domain.StoreError{Op: "ranks", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var kingdomID string
		var rank int
		if err := rows.Scan(&kingdomID, &rank); err != nil {
			return nil, &domain.StoreError{Op: "ranks", Err: err}
		}
		ranks[kingdomID] = rank
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "ranks", Err: err}
	}
	return ranks, nil
}

// Trend returns up to limit most recent entries for a kingdom, oldest first
func (s *Store) Trend(ctx context.Context, kingdomID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.season, s.taken_utc, r.rank, r.score
		FROM ranks r JOIN snapshots s ON s.id = r.snapshot_id
		WHERE r.kingdom_id = ?
		ORDER BY s.taken_utc DESC
		LIMIT ?`, kingdomID, limit)
	if err != nil {
		return nil, &domain.StoreError{Op: "trend", Err: err}
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var taken string
		if err := rows.Scan(&e.SnapshotID, &e.Season, &taken, &e.Rank, &e.Score); err != nil {
			return nil, &domain.StoreError{Op: "trend", Err: err}
		}
		e.TakenAt = parseTime(taken)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "trend", Err: err}
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Count returns the number of recorded snapshots
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM snapshots`).Scan(&n); err != nil {
		return 0, &domain.StoreError{Op: "count", Err: err}
	}
	return n, nil
}

// Clear deletes all recorded history
func (s *Store) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &domain.StoreError{Op: "clear", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{`DELETE FROM ranks`, `DELETE FROM snapshots`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return &domain.StoreError{Op: "clear", Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return &domain.StoreError{Op: "clear", Err: err}
	}

	s.logger.Debug("cleared history")
	return nil
}
