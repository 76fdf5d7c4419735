package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// GetOriginal returns the raw pattern persisted for a hashed motif.
// The second return is false when the hash is not in the store.
func (s *Store) GetOriginal(ctx context.Context, hashed string) (string, bool, error) {
	var original string
	err := s.db.QueryRowContext(ctx, `
		SELECT original FROM registry_entries WHERE hashed = ?
	`, hashed).Scan(&original)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get original: %w", err)
	}
	return original, true, nil
}

// LoadEntries returns all persisted registry entries as hashed -> original.
// Returns an empty map (not nil) for an empty store.
func (s *Store) LoadEntries(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT hashed, original FROM registry_entries
		ORDER BY hashed COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]string)
	for rows.Next() {
		var hashed, original string
		if err := rows.Scan(&hashed, &original); err != nil {
			return nil, fmt.Errorf("load entries: %w", err)
		}
		entries[hashed] = original
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	return entries, nil
}

// ListRuns returns all mining runs in deterministic order:
// ORDER BY seq ASC, id ASC COLLATE BINARY.
//
// Returns an empty slice (not nil) if no runs are recorded.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, trace_id, motif_count, seq
		FROM mining_runs
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.TraceID, &run.MotifCount, &run.Seq); err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	return runs, nil
}
