package mine

import "fmt"

// Compression emits Sequitur-inspired repeated-window motifs: "SQ_<a>_<b>"
// for every distinct adjacent bigram occurring at least twice, and, when
// the sequence has 3 or more symbols, "SQ_<a>_<b>_<c>" for every distinct
// adjacent trigram occurring at least twice. Sequences shorter than 2
// yield nil.
//
// This is a literal repeated-window detector, not grammar induction: no
// rule substitution or nesting occurs. Windows are emitted once each, in
// first-occurrence order.
func Compression(seq []string) []string {
	if len(seq) < 2 {
		return nil
	}

	var motifs []string
	motifs = append(motifs, repeatedWindows(seq, 2)...)
	if len(seq) >= 3 {
		motifs = append(motifs, repeatedWindows(seq, 3)...)
	}
	return motifs
}

// repeatedWindows returns an SQ_ motif for each distinct width-n window
// occurring at least twice, in first-occurrence order.
func repeatedWindows(seq []string, n int) []string {
	counts := make(map[string]int)
	var order []string

	for i := 0; i+n <= len(seq); i++ {
		key := windowKey(seq[i : i+n])
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}

	var motifs []string
	for _, key := range order {
		if counts[key] >= 2 {
			motifs = append(motifs, fmt.Sprintf("SQ_%s", key))
		}
	}
	return motifs
}

func windowKey(window []string) string {
	key := window[0]
	for _, sym := range window[1:] {
		key += "_" + sym
	}
	return key
}
