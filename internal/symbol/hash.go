package symbol

import (
	"crypto/sha1"
	"encoding/hex"
)

// Hash truncation widths for the two identifier spaces.
//
// Symbols use 6 hex chars (24 bits): readable, and wide enough for the small
// alphabet of event-type heads. Motifs use 10 hex chars (40 bits): the motif
// space is much larger, and the unifier dedups on this prefix.
const (
	symbolHashLen = 6
	motifHashLen  = 10
)

// ShortHash returns the 6-hex-char SHA-1 prefix used for canonical symbols.
func ShortHash(s string) string {
	return sha1Prefix(s, symbolHashLen)
}

// MotifHash returns the 10-hex-char SHA-1 prefix used for hashed motifs.
// The unifier and registry agree on this function; nothing else may hash
// motifs.
func MotifHash(s string) string {
	return sha1Prefix(s, motifHashLen)
}

func sha1Prefix(s string, n int) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])[:n]
}
