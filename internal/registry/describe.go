package registry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// pseudoLabels are the canned templates for hashed motifs with no
// registered pattern. The label is chosen by 4 hex chars of the hash, so
// the same unresolved hash always describes the same way.
var pseudoLabels = [8]string{
	"Edit Sequence",
	"Code Change Flow",
	"Multi-File Update",
	"Refactor Pattern",
	"Navigation Sequence",
	"Development Flow",
	"Modification Chain",
	"Workflow Step",
}

var (
	trailingCount = regexp.MustCompile(`_(\d+)$`)
	anyCount      = regexp.MustCompile(`(\d+)`)
	titleCaser    = cases.Title(language.Und)
)

// generateDescription resolves a motif to its phrase. Called with r.mu held.
func (r *Registry) generateDescription(motif string) string {
	if strings.HasPrefix(motif, "M_") {
		if original, ok := r.patterns[motif]; ok {
			return describePattern(original)
		}
	}
	return describeByType(motif)
}

// describePattern phrases a raw (pre-hash) pattern.
func describePattern(pattern string) string {
	switch {
	case strings.HasPrefix(pattern, "T_"):
		// T_EV_xxx_EV_yyy splits into 4+ parts; anything shorter is a
		// transition over bare symbols.
		if len(strings.Split(pattern[2:], "_")) >= 4 {
			return "Sequential Edit Transition"
		}
		return "Edit Transition"

	case strings.HasPrefix(pattern, "PS_"):
		steps := 0
		for _, part := range strings.Split(pattern[3:], "_") {
			if part == "EV" {
				steps++
			}
		}
		if steps >= 3 {
			return fmt.Sprintf("Frequent %d-Step Sequence", steps)
		}
		return "Frequent Edit Sequence"

	case strings.HasPrefix(pattern, "SQ_"):
		return "Compressed Edit Pattern"

	case strings.HasPrefix(pattern, "CYCLE_"):
		return "Iterative Edit Cycle"

	case strings.HasPrefix(pattern, "HOT_"):
		if m := trailingCount.FindStringSubmatch(pattern); m != nil {
			return fmt.Sprintf("Edit Hotspot (%sx)", m[1])
		}
		return "Edit Hotspot"

	case pattern == "HIGH_SWITCHING":
		return "High Edit Diversity"

	case strings.Contains(pattern, "INTENT_"):
		tail := pattern[strings.LastIndex(pattern, "INTENT_")+len("INTENT_"):]
		category := strings.SplitN(tail, "_", 2)[0]
		return titleCaser.String(category) + " Intent Signal"

	case strings.HasPrefix(pattern, "EV_"):
		return "Edit Event"

	default:
		return "Workflow Pattern"
	}
}

// describeByType phrases a motif by its prefix alone, without registry
// lookup. Used for raw motifs and unregistered hashes.
func describeByType(motif string) string {
	switch {
	case strings.HasPrefix(motif, "M_"):
		return pseudoLabel(motif)

	case strings.HasPrefix(motif, "T_"):
		return "Edit Transition"

	case strings.HasPrefix(motif, "PS_"):
		return "Frequent Sequence"

	case strings.HasPrefix(motif, "SQ_"):
		return "Compression Rule"

	case strings.HasPrefix(motif, "CYCLE_"):
		return "Edit Cycle"

	case strings.HasPrefix(motif, "HOT"):
		if m := anyCount.FindStringSubmatch(motif); m != nil {
			return fmt.Sprintf("Edit Hotspot (%sx)", m[1])
		}
		return "Edit Hotspot"

	case strings.HasPrefix(motif, "INTENT_TYPE_"):
		name := strings.ReplaceAll(strings.TrimPrefix(motif, "INTENT_TYPE_"), "_", " ")
		return titleCaser.String(name) + " Intent"

	case strings.HasPrefix(motif, "INTENT_TRANS"):
		return "Intent Transition"

	case strings.HasPrefix(motif, "INTENT_"):
		name := strings.ReplaceAll(strings.TrimPrefix(motif, "INTENT_"), "_", " ")
		return titleCaser.String(name) + " Signal"

	case strings.HasPrefix(motif, "DEPENDENCY"):
		return "Dependency Traversal"

	case strings.Contains(strings.ToUpper(motif), "SWITCHING"):
		return "High Edit Diversity"

	case strings.HasPrefix(motif, "NG_"):
		return "N-gram Pattern"

	case len(motif) <= 20:
		return motif

	default:
		return motif[:17] + "..."
	}
}

// pseudoLabel deterministically labels an unregistered hashed motif using
// 4 hex chars of its identifier.
func pseudoLabel(motif string) string {
	window := motif[2:]
	if len(window) > 4 {
		window = window[:4]
	}

	idx := 0
	if n, err := strconv.ParseUint(window, 16, 32); err == nil {
		idx = int(n % 8)
	}

	return fmt.Sprintf("%s #%s", pseudoLabels[idx], window)
}
