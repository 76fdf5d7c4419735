package registry

import "strings"

// Category names. Coarser than descriptions: several motif prefixes share
// one behavioral bucket.
const (
	CategorySequential  = "Sequential Pattern"
	CategoryFrequent    = "Frequent Sequence"
	CategoryCompression = "Compression Pattern"
	CategoryIterative   = "Iterative Pattern"
	CategoryHotspot     = "Hotspot Pattern"
	CategoryDiversity   = "Diversity Pattern"
	CategoryIntent      = "Intent Signal"
	CategoryDependency  = "Dependency Pattern"
	CategoryMined       = "Mined Pattern"
	CategoryOther       = "Other Pattern"
)

// categorize buckets a motif. Called with r.mu held: hashed motifs are
// categorized by their registered pattern when available.
func (r *Registry) categorize(motif string) string {
	if strings.HasPrefix(motif, "M_") {
		if original, ok := r.patterns[motif]; ok {
			if cat, ok := categorizeRaw(original); ok {
				return cat
			}
		}
		return CategoryMined
	}

	if cat, ok := categorizeRaw(motif); ok {
		return cat
	}

	switch {
	case strings.HasPrefix(motif, "INTENT_"):
		return CategoryIntent
	case strings.HasPrefix(motif, "DEPENDENCY"):
		return CategoryDependency
	case strings.Contains(strings.ToUpper(motif), "SWITCHING"):
		return CategoryDiversity
	case strings.HasPrefix(motif, "TRANS_") || strings.HasPrefix(motif, "NG_"):
		return CategorySequential
	default:
		return CategoryOther
	}
}

// categorizeRaw buckets the miner-emitted prefixes.
func categorizeRaw(pattern string) (string, bool) {
	switch {
	case strings.HasPrefix(pattern, "T_"):
		return CategorySequential, true
	case strings.HasPrefix(pattern, "PS_"):
		return CategoryFrequent, true
	case strings.HasPrefix(pattern, "SQ_"):
		return CategoryCompression, true
	case strings.HasPrefix(pattern, "CYCLE_"):
		return CategoryIterative, true
	case strings.HasPrefix(pattern, "HOT"):
		return CategoryHotspot, true
	case pattern == "HIGH_SWITCHING":
		return CategoryDiversity, true
	default:
		return "", false
	}
}
