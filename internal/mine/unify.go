package mine

import "github.com/weftworks/weft/internal/symbol"

// Registrar records raw-pattern -> hashed-motif mappings as the unifier
// produces them. *registry.Registry implements it; tests substitute fakes.
type Registrar interface {
	// Register stores original under hashed. First writer wins: a hash
	// that is already registered keeps its existing original.
	Register(original, hashed string) bool
}

// Unify merges raw motif lists into the bounded, hashed, externally visible
// motif set.
//
// Lists are concatenated in caller order, each list keeping its internal
// order. Every raw motif is hashed to "M_<10 hex>"; the first occurrence of
// each hash is appended to the output, later occurrences consume no budget.
// Production stops once maxTotal distinct hashes have been emitted.
//
// When reg is non-nil each newly seen hash is registered with its raw
// pattern. Two distinct raw motifs sharing a hash prefix silently collapse
// to one output entry, and the registry keeps the first pattern; this is
// documented lossy behavior, accepted for a human-readability side channel.
func Unify(reg Registrar, maxTotal int, lists ...[]string) []string {
	var out []string
	seen := make(map[string]bool)

	for _, list := range lists {
		for _, raw := range list {
			if len(out) >= maxTotal {
				return out
			}

			h := symbol.MotifHash(raw)
			if seen[h] {
				continue
			}
			seen[h] = true

			hashed := "M_" + h
			out = append(out, hashed)

			if reg != nil {
				reg.Register(raw, hashed)
			}
		}
	}

	return out
}

// FromSequence runs all four miners over seq and unifies their output, in
// the fixed order transitions, structural, frequent, compression. This is
// the core motif extraction entry point.
//
// Sequences shorter than 2 yield nil. The only error source is parameter
// validation in the frequent-sequence miner.
func FromSequence(seq []string, p Params, reg Registrar) ([]string, error) {
	if len(seq) < 2 {
		return nil, nil
	}

	frequent, err := Frequent(seq, p)
	if err != nil {
		return nil, err
	}

	return Unify(reg, p.MaxTotal,
		Transitions(seq, p.MaxTransitions),
		Structural(seq),
		frequent,
		Compression(seq),
	), nil
}
