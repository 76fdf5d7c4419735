package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortHashWidth(t *testing.T) {
	h := ShortHash("file")

	assert.Len(t, h, 6, "symbol hashes are 6 hex chars")
	assert.Equal(t, "971c41", h)
}

func TestMotifHashWidth(t *testing.T) {
	h := MotifHash("T_A_B")

	assert.Len(t, h, 10, "motif hashes are 10 hex chars")
	assert.Equal(t, "ca85322e12", h)
}

func TestMotifHashIsPrefixConsistent(t *testing.T) {
	// The two widths truncate the same digest, so the short hash is a
	// prefix of the motif hash for the same input.
	assert.Equal(t, ShortHash("file"), MotifHash("file")[:6])
}
