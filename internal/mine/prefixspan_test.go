package mine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequentFloor(t *testing.T) {
	motifs, err := Frequent([]string{"A", "B", "A", "B", "C"}, DefaultParams())

	require.NoError(t, err)
	assert.Equal(t, []string{"PS_A_B"}, motifs,
		"A followed by B recurs twice; everything else is below support")
}

func TestFrequentDiscoveryOrder(t *testing.T) {
	motifs, err := Frequent([]string{"X", "Y", "X", "Y", "X"}, DefaultParams())

	require.NoError(t, err)
	assert.Equal(t, []string{"PS_X_Y", "PS_X_Y_X", "PS_X_X", "PS_Y_X"}, motifs,
		"depth-first discovery order, single symbols dropped")
}

func TestFrequentNothingRecurs(t *testing.T) {
	motifs, err := Frequent([]string{"A", "B", "C", "D"}, DefaultParams())

	require.NoError(t, err)
	assert.Empty(t, motifs)
}

func TestFrequentRespectsMaxPatternLen(t *testing.T) {
	p := DefaultParams()
	p.MaxPatternLen = 2

	motifs, err := Frequent([]string{"X", "Y", "X", "Y", "X"}, p)

	require.NoError(t, err)
	for _, m := range motifs {
		assert.LessOrEqual(t, len(m), len("PS_X_Y"), "patterns stop at length 2: %s", m)
	}
	assert.Contains(t, motifs, "PS_X_Y")
	assert.NotContains(t, motifs, "PS_X_Y_X")
}

func TestFrequentShortSequences(t *testing.T) {
	motifs, err := Frequent([]string{"A"}, DefaultParams())

	require.NoError(t, err)
	assert.Nil(t, motifs)
}

func TestFrequentRejectsPatternLenAboveCeiling(t *testing.T) {
	p := DefaultParams()
	p.MaxPatternLen = MaxPatternLenCeiling + 1

	_, err := Frequent([]string{"A", "B"}, p)

	var perr *ParamError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrCodePatternLenCeiling, perr.Code)
	assert.Equal(t, "max_pattern_len", perr.Param)
	assert.Equal(t, MaxPatternLenCeiling, perr.Limit)
}

func TestFrequentRejectsOverlongSequence(t *testing.T) {
	seq := make([]string, MaxSequenceLenCeiling+1)
	for i := range seq {
		seq[i] = "A"
	}

	_, err := Frequent(seq, DefaultParams())

	var perr *ParamError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrCodeSequenceTooLong, perr.Code)
	assert.Equal(t, MaxSequenceLenCeiling, perr.Limit)
}

func TestFrequentRejectsNonPositiveParams(t *testing.T) {
	p := DefaultParams()
	p.MinSupport = 0

	_, err := Frequent([]string{"A", "B"}, p)

	var perr *ParamError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrCodeNonPositiveParam, perr.Code)
	assert.Equal(t, "min_support", perr.Param)
}

func TestDiscoverAtCeilingDepth(t *testing.T) {
	// A run of one symbol drives the recursion to full depth without
	// blowing up; pattern length never exceeds maxLen.
	seq := make([]string, 20)
	for i := range seq {
		seq[i] = "A"
	}

	patterns := Discover(seq, 2, MaxPatternLenCeiling)

	longest := 0
	for _, p := range patterns {
		if len(p) > longest {
			longest = len(p)
		}
	}
	assert.Equal(t, MaxPatternLenCeiling, longest)
}
