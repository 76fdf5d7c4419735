package mine

import "fmt"

// HighSwitching is the singleton motif for high-diversity sequences.
const HighSwitching = "HIGH_SWITCHING"

// Structural emits cycle, hotspot, and switching motifs for seq. Sequences
// shorter than 2 yield nil.
//
// Three independent detectors run over the same pass:
//
//   - Cycles: every index i with seq[i]==seq[i+2] and seq[i]!=seq[i+1]
//     emits "CYCLE_<a>_<b>". One motif per occurrence, not deduplicated;
//     repeat counts carry signal and the unifier dedups by hash anyway.
//   - Hotspots: every distinct symbol occurring at least HotspotThreshold
//     times emits "HOT_<sym>_<count>" once, in first-occurrence order.
//   - Switching: when distinct/total exceeds SwitchingRatio, the singleton
//     HighSwitching is emitted.
func Structural(seq []string) []string {
	if len(seq) < 2 {
		return nil
	}

	var motifs []string

	// Cycles: A -> B -> A.
	for i := 0; i+2 < len(seq); i++ {
		if seq[i] == seq[i+2] && seq[i] != seq[i+1] {
			motifs = append(motifs, fmt.Sprintf("CYCLE_%s_%s", seq[i], seq[i+1]))
		}
	}

	// Hotspots, in first-occurrence order for deterministic output.
	counts := make(map[string]int, len(seq))
	var order []string
	for _, sym := range seq {
		if counts[sym] == 0 {
			order = append(order, sym)
		}
		counts[sym]++
	}
	for _, sym := range order {
		if counts[sym] >= HotspotThreshold {
			motifs = append(motifs, fmt.Sprintf("HOT_%s_%d", sym, counts[sym]))
		}
	}

	// High switching: many distinct symbols relative to length.
	if float64(len(counts))/float64(len(seq)) > SwitchingRatio {
		motifs = append(motifs, HighSwitching)
	}

	return motifs
}
