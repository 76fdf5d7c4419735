// Package mine implements the four motif miners and the unifier.
//
// Each miner is a pure, order-preserving function over one symbol sequence:
//
//   - Transitions: adjacent-pair motifs (Markov 1-step), capped.
//   - Structural: A-B-A cycles, repeat hotspots, diversity switching.
//   - Frequent: PrefixSpan-style recursive prefix projection.
//   - Compression: Sequitur-inspired repeated bigram/trigram rules.
//
// The unifier concatenates miner outputs in caller order, hashes each raw
// motif to its bounded M_ identifier, dedups, and enforces the cardinality
// bound. No miner consults wall-clock time or global state; every bound is
// an explicit parameter.
//
// The only miner with non-linear worst case is the frequent-sequence miner.
// Its recursion is bounded by Params ceilings, enforced up front with coded
// ParamErrors rather than discovered mid-recursion.
package mine
