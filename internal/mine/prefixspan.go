package mine

import "strings"

// Frequent discovers frequent sequential patterns in seq via PrefixSpan and
// formats them as "PS_<sym1>_<sym2>_..." motifs. Only patterns of length 2
// or more are emitted; single symbols carry no sequential information.
//
// Sequences shorter than 2 yield nil. Params are validated first, and the
// sequence length is checked against MaxSequenceLenCeiling; both violations
// return a *ParamError before any mining work starts. Within those bounds
// the recursion depth is at most MaxPatternLen.
func Frequent(seq []string, p Params) ([]string, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(seq) > MaxSequenceLenCeiling {
		return nil, &ParamError{
			Code:  ErrCodeSequenceTooLong,
			Param: "sequence_len",
			Value: len(seq),
			Limit: MaxSequenceLenCeiling,
		}
	}
	if len(seq) < 2 {
		return nil, nil
	}

	var motifs []string
	for _, pattern := range Discover(seq, p.MinSupport, p.MaxPatternLen) {
		if len(pattern) >= 2 {
			motifs = append(motifs, "PS_"+strings.Join(pattern, "_"))
		}
	}
	return motifs, nil
}

// Discover runs PrefixSpan over a single-row database {seq} and returns
// every frequent pattern of length >= 1, in discovery (depth-first) order.
//
// The algorithm grows a prefix one symbol at a time. At each step it counts
// symbol occurrences across the current projected database, keeps symbols
// with support >= minSupport, records each extended prefix as a pattern,
// and recurses on the projection: every row truncated to the suffix
// strictly after its first occurrence of the extending symbol, rows
// lacking it dropped.
//
// Support is occurrence-based, not row-based: the database starts as the
// single row {seq}, so row-level support could never exceed 1 and a
// minSupport of 2 would match nothing. Counting occurrences is what makes
// single-sequence mining meaningful.
//
// Discover performs no internal bounding beyond maxLen. Callers must bound
// the sequence length and maxLen explicitly; Frequent does so via Params.
func Discover(seq []string, minSupport, maxLen int) [][]string {
	var patterns [][]string
	project(nil, [][]string{seq}, minSupport, maxLen, &patterns)
	return patterns
}

// project is one recursive prefix-growth step.
func project(prefix []string, db [][]string, minSupport, maxLen int, patterns *[][]string) {
	if len(prefix) >= maxLen {
		return
	}

	// Occurrence counting, in first-seen order so discovery order is
	// deterministic.
	counts := make(map[string]int)
	var order []string
	for _, row := range db {
		for _, sym := range row {
			if counts[sym] == 0 {
				order = append(order, sym)
			}
			counts[sym]++
		}
	}

	for _, sym := range order {
		if counts[sym] < minSupport {
			continue
		}

		extended := make([]string, len(prefix)+1)
		copy(extended, prefix)
		extended[len(prefix)] = sym
		*patterns = append(*patterns, extended)

		// Project each row past its first occurrence of sym.
		var projected [][]string
		for _, row := range db {
			for i, s := range row {
				if s == sym {
					projected = append(projected, row[i+1:])
					break
				}
			}
		}

		if len(extended) < maxLen {
			project(extended, projected, minSupport, maxLen, patterns)
		}
	}
}
