package mine

import "fmt"

// Transitions emits one "T_<a>_<b>" motif per adjacent pair in seq, in
// order, capped at maxCount. Sequences shorter than 2 yield nil.
//
// Transitions are the Markov 1-step view of the sequence: they capture
// which symbol follows which, with multiplicity (no dedup here; the
// unifier dedups by hash).
func Transitions(seq []string, maxCount int) []string {
	if len(seq) < 2 {
		return nil
	}

	n := len(seq) - 1
	if n > maxCount {
		n = maxCount
	}
	if n < 0 {
		n = 0
	}

	motifs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		motifs = append(motifs, fmt.Sprintf("T_%s_%s", seq[i], seq[i+1]))
	}
	return motifs
}
