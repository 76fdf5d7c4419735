package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "weft.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weft.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	assert.NoError(t, s2.Close())
}

func TestSaveAndLoadEntries(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	entries := map[string]string{
		"M_ca85322e12": "T_A_B",
		"M_c873d2037f": "CYCLE_EV_971c41_EV_46f1a0",
	}
	require.NoError(t, s.SaveEntries(ctx, entries))

	loaded, err := s.LoadEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestSaveEntriesFirstWriterWins(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveEntries(ctx, map[string]string{"M_ca85322e12": "T_A_B"}))
	require.NoError(t, s.SaveEntries(ctx, map[string]string{"M_ca85322e12": "SQ_X_Y"}))

	original, ok, err := s.GetOriginal(ctx, "M_ca85322e12")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "T_A_B", original, "a colliding save is silently absorbed")
}

func TestSaveEntriesEmpty(t *testing.T) {
	s := openTestStore(t)

	assert.NoError(t, s.SaveEntries(context.Background(), nil))
}

func TestGetOriginalMissing(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.GetOriginal(context.Background(), "M_0000000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadEntriesEmptyStore(t *testing.T) {
	s := openTestStore(t)

	entries, err := s.LoadEntries(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestRecordRunLogicalClock(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.RecordRun(ctx, "trace-1", 3)
	require.NoError(t, err)
	second, err := s.RecordRun(ctx, "trace-2", 7)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Seq, "the clock starts at 1")
	assert.Equal(t, int64(2), second.Seq)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestListRunsOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i, traceID := range []string{"trace-a", "trace-b", "trace-c"} {
		_, err := s.RecordRun(ctx, traceID, i)
		require.NoError(t, err)
	}

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)

	require.Len(t, runs, 3)
	assert.Equal(t, "trace-a", runs[0].TraceID)
	assert.Equal(t, "trace-c", runs[2].TraceID)
	assert.Equal(t, []int64{1, 2, 3}, []int64{runs[0].Seq, runs[1].Seq, runs[2].Seq})
}

func TestListRunsEmptyStore(t *testing.T) {
	s := openTestStore(t)

	runs, err := s.ListRuns(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}
