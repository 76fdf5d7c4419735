// Package harness provides a scenario-driven conformance harness for the
// mining pipeline.
//
// Scenarios are YAML documents describing a trace (event steps and prompt
// text) plus assertions over the mined output: which motifs must or must
// not appear, the expected symbol sequence, and per-category counts.
// Golden files additionally pin the complete mining snapshot (sequence,
// motifs, originals, categories) byte for byte, so any drift in hashing,
// miner order, or unification shows up as a golden diff.
//
// The harness runs the real pipeline end to end: symbol canonicalization,
// all four miners, unification, and registry resolution. Nothing is
// stubbed, so a passing scenario is evidence about the production code
// path, not about the harness.
package harness
