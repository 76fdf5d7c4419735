package mine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntentAnchoredFollowers(t *testing.T) {
	seq := []string{"INTENT_DEBUG", "EV_971c41", "EV_46f1a0"}

	motifs := IntentAnchored(seq)

	assert.Equal(t, []string{
		"INTENT_DEBUG_TO_EV_971c41",
		"INTENT_PATTERN_INTENT_DEBUG_EV_971c41_EV_46f1a0",
		"INTENT_TYPE_DEBUG",
	}, motifs)
}

func TestIntentAnchoredMarkerAtEnd(t *testing.T) {
	seq := []string{"EV_971c41", "INTENT_TEST"}

	motifs := IntentAnchored(seq)

	assert.Equal(t, []string{"INTENT_TYPE_TEST"}, motifs,
		"a trailing marker has no followers, only its type motif")
}

func TestIntentAnchoredTransitions(t *testing.T) {
	seq := []string{"INTENT_DEBUG", "EV_971c41", "INTENT_TEST", "EV_46f1a0"}

	motifs := IntentAnchored(seq)

	assert.Contains(t, motifs, "INTENT_TRANS_INTENT_DEBUG_INTENT_TEST",
		"consecutive markers pair up in order")
}

func TestIntentAnchoredTypePerOccurrence(t *testing.T) {
	seq := []string{"INTENT_DEBUG", "EV_971c41", "INTENT_DEBUG", "EV_971c41"}

	motifs := IntentAnchored(seq)

	count := 0
	for _, m := range motifs {
		if m == "INTENT_TYPE_DEBUG" {
			count++
		}
	}
	assert.Equal(t, 2, count, "type motifs are per marker occurrence")
}

func TestIntentAnchoredNoMarkers(t *testing.T) {
	assert.Nil(t, IntentAnchored([]string{"EV_971c41", "EV_46f1a0"}))
	assert.Nil(t, IntentAnchored(nil))
}
