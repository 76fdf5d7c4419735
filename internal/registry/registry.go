// Package registry maintains the reverse index from hashed motifs back to
// their raw patterns, with deterministic human-readable descriptions.
//
// The registry is a human-consumption side channel only: mining never reads
// it. It is an explicit owned object, constructed once per process or test
// and passed by reference, never a hidden singleton.
package registry

import "sync"

// Registry maps hashed motifs ("M_<10 hex>") to the raw patterns that
// produced them, and memoizes description and category lookups.
//
// Entries are append-only and write-once. First writer wins: when two
// distinct raw patterns collide on a hash, the second registration is
// silently absorbed and the first pattern keeps the label. This is
// documented lossy behavior; Register's return value lets callers observe
// the loss if they care.
//
// Thread-safe: all map access is serialized behind one mutex. Entries never
// mutate after the winning write, so concurrent readers cannot observe torn
// values.
type Registry struct {
	mu           sync.Mutex
	patterns     map[string]string // hashed -> original raw pattern
	descriptions map[string]string // motif -> memoized description
	categories   map[string]string // motif -> memoized category
}

// Stats reports registry cache sizes, for tests and introspection.
type Stats struct {
	RegisteredHashes   int
	CachedDescriptions int
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		patterns:     make(map[string]string),
		descriptions: make(map[string]string),
		categories:   make(map[string]string),
	}
}

// Register stores the hashed -> original mapping. Returns true when this
// call won the write, false when the hash was already registered (the
// existing pattern is kept).
func (r *Registry) Register(original, hashed string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.patterns[hashed]; exists {
		return false
	}
	r.patterns[hashed] = original
	return true
}

// GetOriginal returns the raw pattern registered for a hashed motif.
func (r *Registry) GetOriginal(hashed string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	original, ok := r.patterns[hashed]
	return original, ok
}

// Describe returns a natural-language description for a motif (raw or
// hashed). Registered hashes resolve to their raw pattern's phrase;
// unregistered hashes get a deterministic pseudo-label. The result is
// memoized per motif string for the registry's lifetime.
func (r *Registry) Describe(motif string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if desc, ok := r.descriptions[motif]; ok {
		return desc
	}

	desc := r.generateDescription(motif)
	r.descriptions[motif] = desc
	return desc
}

// Category returns the behavioral category for a motif (raw or hashed).
// Memoized like Describe.
func (r *Registry) Category(motif string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cat, ok := r.categories[motif]; ok {
		return cat
	}

	cat := r.categorize(motif)
	r.categories[motif] = cat
	return cat
}

// Clear removes all entries and memoized lookups. Intended for tests.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.patterns = make(map[string]string)
	r.descriptions = make(map[string]string)
	r.categories = make(map[string]string)
}

// Stats returns current cache sizes.
func (r *Registry) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Stats{
		RegisteredHashes:   len(r.patterns),
		CachedDescriptions: len(r.descriptions),
	}
}

// Entries returns a copy of the hashed -> original map, for persistence.
func (r *Registry) Entries() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]string, len(r.patterns))
	for h, o := range r.patterns {
		out[h] = o
	}
	return out
}
