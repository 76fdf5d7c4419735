package mine

import (
	"fmt"
	"strings"
)

// intentPrefix marks intent markers inside a symbol sequence.
const intentPrefix = "INTENT_"

// IntentAnchored emits intent-aware motifs from a sequence containing
// INTENT_* markers:
//
//   - "<INTENT_X>_TO_<next>": the symbol immediately following a marker.
//   - "INTENT_PATTERN_<INTENT_X>_<e1>_<e2>": the two symbols following.
//   - "INTENT_TYPE_<X>": the bare category, once per marker occurrence.
//   - "INTENT_TRANS_<INTENT_A>_<INTENT_B>": consecutive marker pairs.
//
// Sequences without markers yield nil. These motifs are raw (unhashed)
// companions to the statistical miners; the encoder appends them after the
// unified set.
func IntentAnchored(seq []string) []string {
	var indices []int
	for i, sym := range seq {
		if strings.HasPrefix(sym, intentPrefix) {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		return nil
	}

	var motifs []string

	for _, idx := range indices {
		marker := seq[idx]

		if idx+1 < len(seq) {
			motifs = append(motifs, fmt.Sprintf("%s_TO_%s", marker, seq[idx+1]))
		}
		if idx+2 < len(seq) {
			motifs = append(motifs, fmt.Sprintf("INTENT_PATTERN_%s_%s_%s", marker, seq[idx+1], seq[idx+2]))
		}

		motifs = append(motifs, "INTENT_TYPE_"+strings.TrimPrefix(marker, intentPrefix))
	}

	for i := 0; i+1 < len(indices); i++ {
		motifs = append(motifs, fmt.Sprintf("INTENT_TRANS_%s_%s", seq[indices[i]], seq[indices[i+1]]))
	}

	return motifs
}
