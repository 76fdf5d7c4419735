package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeRegisteredPatterns(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"T_EV_971c41_EV_46f1a0", "Sequential Edit Transition"},
		{"T_A_B", "Edit Transition"},
		{"PS_EV_971c41_EV_46f1a0_EV_df6ad1", "Frequent 3-Step Sequence"},
		{"PS_EV_971c41_EV_46f1a0", "Frequent Edit Sequence"},
		{"SQ_EV_971c41_EV_46f1a0", "Compressed Edit Pattern"},
		{"CYCLE_EV_971c41_EV_46f1a0", "Iterative Edit Cycle"},
		{"HOT_EV_971c41_7", "Edit Hotspot (7x)"},
		{"HIGH_SWITCHING", "High Edit Diversity"},
		{"INTENT_PATTERN_INTENT_DEBUG_EV_971c41_EV_46f1a0", "Debug Intent Signal"},
		{"EV_971c41", "Edit Event"},
		{"SOMETHING_ELSE", "Workflow Pattern"},
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			r := New()
			hashed := "M_0123456789"
			require.True(t, r.Register(tc.pattern, hashed))

			assert.Equal(t, tc.want, r.Describe(hashed))
		})
	}
}

func TestDescribeRawMotifs(t *testing.T) {
	r := New()

	cases := []struct {
		motif string
		want  string
	}{
		{"T_A_B", "Edit Transition"},
		{"PS_A_B", "Frequent Sequence"},
		{"SQ_A_B", "Compression Rule"},
		{"CYCLE_A_B", "Edit Cycle"},
		{"HOT_A_5", "Edit Hotspot (5x)"},
		{"HOTSPOT_6", "Edit Hotspot (6x)"},
		{"INTENT_TYPE_DEBUG", "Debug Intent"},
		{"INTENT_TRANS_INTENT_DEBUG_INTENT_TEST", "Intent Transition"},
		{"INTENT_DEBUG", "Debug Signal"},
		{"DEPENDENCY_CHASE", "Dependency Traversal"},
		{"HIGH_SWITCHING", "High Edit Diversity"},
		{"NG_A_B_C", "N-gram Pattern"},
		{"SHORT_MOTIF", "SHORT_MOTIF"},
	}

	for _, tc := range cases {
		t.Run(tc.motif, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Describe(tc.motif))
		})
	}
}

func TestDescribeTruncatesLongUnknownMotifs(t *testing.T) {
	r := New()

	long := "UNCLASSIFIED_MOTIF_WITH_A_VERY_LONG_NAME"
	desc := r.Describe(long)

	assert.Equal(t, long[:17]+"...", desc)
	assert.Len(t, desc, 20)
}

func TestPseudoLabelDeterministic(t *testing.T) {
	r := New()

	// The label index is the first 4 hex chars mod 8: 0xbeef -> 7.
	assert.Equal(t, "Workflow Step #beef", r.Describe("M_beef123456"))
	assert.Equal(t, "Edit Sequence #0000", r.Describe("M_0000000000"))

	// Same hash, same label, always.
	assert.Equal(t, r.Describe("M_beef123456"), r.Describe("M_beef123456"))
}
