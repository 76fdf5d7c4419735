package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SaveEntries inserts registry entries into the store.
// Uses ON CONFLICT(hashed) DO NOTHING: the persisted registry keeps the
// same first-writer-wins collision policy as the in-memory one, so saving
// is idempotent and later colliding patterns are silently absorbed.
func (s *Store) SaveEntries(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save entries: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO registry_entries (hashed, original)
		VALUES (?, ?)
		ON CONFLICT(hashed) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("save entries: %w", err)
	}
	defer stmt.Close()

	for hashed, original := range entries {
		if _, err := stmt.ExecContext(ctx, hashed, original); err != nil {
			return fmt.Errorf("save entries: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save entries: %w", err)
	}

	return nil
}

// Run is one recorded mining run.
type Run struct {
	ID         string
	TraceID    string
	MotifCount int
	Seq        int64
}

// RecordRun appends a mining run record and returns it. The run ID is a
// fresh UUID; ordering across runs is the store's logical clock.
func (s *Store) RecordRun(ctx context.Context, traceID string, motifCount int) (Run, error) {
	seq, err := s.nextSeq(ctx)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}

	run := Run{
		ID:         uuid.NewString(),
		TraceID:    traceID,
		MotifCount: motifCount,
		Seq:        seq,
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO mining_runs (id, trace_id, motif_count, seq)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.TraceID, run.MotifCount, run.Seq)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}

	return run, nil
}
