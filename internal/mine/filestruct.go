package mine

import (
	"fmt"

	"github.com/weftworks/weft/internal/symbol"
)

// File-switching thresholds. Separate from the symbol-level structural
// miner: these read event details directly, because file identity is
// hashed away by canonicalization.
const (
	fileHotspotEdits = 5
	chaseSwitches    = 3
)

// FileStructural emits workflow motifs derived from file switching
// patterns in a trace's event details:
//
//   - "HOTSPOT_<n>": one file received more than fileHotspotEdits edits.
//   - "DEPENDENCY_CHASE": more than chaseSwitches file switches.
//   - "ITERATIVE_REFINE": the trace returns to a file it just left.
//
// Events without a file_path/file details field contribute nothing.
// Traces with fewer than 2 events yield nil.
func FileStructural(trace *symbol.Trace) []string {
	if trace == nil || len(trace.Events) < 2 {
		return nil
	}

	var (
		current  string
		switches [][2]string
		edits    = make(map[string]int)
	)

	for _, event := range trace.Events {
		if event == nil {
			continue
		}

		path := event.Details.Field("file_path")
		if path == "" {
			path = event.Details.Field("file")
		}
		if path == "" {
			continue
		}

		if current != "" && path != current {
			switches = append(switches, [2]string{current, path})
		}
		current = path
		edits[path]++
	}

	var motifs []string

	maxEdits := 0
	for _, n := range edits {
		if n > maxEdits {
			maxEdits = n
		}
	}
	if maxEdits > fileHotspotEdits {
		motifs = append(motifs, fmt.Sprintf("HOTSPOT_%d", maxEdits))
	}

	if len(switches) > chaseSwitches {
		motifs = append(motifs, "DEPENDENCY_CHASE")
	}

	// Back-and-forth: a switch that returns to the file just left.
	for i := 0; i+1 < len(switches); i++ {
		if switches[i][0] == switches[i+1][1] {
			motifs = append(motifs, "ITERATIVE_REFINE")
			break
		}
	}

	return motifs
}
