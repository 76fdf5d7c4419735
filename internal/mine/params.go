package mine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults and hard ceilings for mining parameters.
//
// The ceilings exist because PrefixSpan's worst case is exponential in
// pattern length and the projected database grows with sequence length.
// Misconfiguration must be rejected up front, not discovered as unbounded
// recursion.
const (
	DefaultMinSupport     = 2
	DefaultMaxPatternLen  = 4
	DefaultMaxTransitions = 100
	DefaultMaxTotal       = 300

	// MaxPatternLenCeiling is the hard upper bound on MaxPatternLen.
	MaxPatternLenCeiling = 8

	// MaxSequenceLenCeiling is the hard upper bound on the sequence length
	// fed into the frequent-sequence miner. Callers with longer traces must
	// pre-truncate.
	MaxSequenceLenCeiling = 5000

	// HotspotThreshold is the minimum repeat count for a HOT_ motif.
	HotspotThreshold = 5

	// SwitchingRatio is the distinct-symbol ratio above which the
	// structural miner emits HIGH_SWITCHING.
	SwitchingRatio = 0.7
)

// Params bounds a mining run. The zero value is NOT usable; start from
// DefaultParams or LoadParams.
type Params struct {
	// MinSupport is the minimum per-row support for a frequent pattern.
	MinSupport int `yaml:"min_support"`

	// MaxPatternLen bounds frequent-pattern length and recursion depth.
	// Rejected above MaxPatternLenCeiling.
	MaxPatternLen int `yaml:"max_pattern_len"`

	// MaxTransitions caps the transition miner's output.
	MaxTransitions int `yaml:"max_transitions"`

	// MaxTotal bounds the number of distinct hashed motifs the unifier
	// produces per call.
	MaxTotal int `yaml:"max_total"`
}

// DefaultParams returns the standard mining bounds.
func DefaultParams() Params {
	return Params{
		MinSupport:     DefaultMinSupport,
		MaxPatternLen:  DefaultMaxPatternLen,
		MaxTransitions: DefaultMaxTransitions,
		MaxTotal:       DefaultMaxTotal,
	}
}

// Validate checks all bounds. Returns a *ParamError describing the first
// violation, or nil.
func (p Params) Validate() error {
	if p.MinSupport < 1 {
		return &ParamError{Code: ErrCodeNonPositiveParam, Param: "min_support", Value: p.MinSupport, Limit: 1}
	}
	if p.MaxPatternLen < 1 {
		return &ParamError{Code: ErrCodeNonPositiveParam, Param: "max_pattern_len", Value: p.MaxPatternLen, Limit: 1}
	}
	if p.MaxPatternLen > MaxPatternLenCeiling {
		return &ParamError{Code: ErrCodePatternLenCeiling, Param: "max_pattern_len", Value: p.MaxPatternLen, Limit: MaxPatternLenCeiling}
	}
	if p.MaxTransitions < 1 {
		return &ParamError{Code: ErrCodeNonPositiveParam, Param: "max_transitions", Value: p.MaxTransitions, Limit: 1}
	}
	if p.MaxTotal < 1 {
		return &ParamError{Code: ErrCodeNonPositiveParam, Param: "max_total", Value: p.MaxTotal, Limit: 1}
	}
	return nil
}

// LoadParams reads Params from a YAML file. Fields absent from the file
// keep their defaults. The result is validated before being returned.
func LoadParams(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("load params: %w", err)
	}

	p := DefaultParams()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("load params: parse %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return Params{}, fmt.Errorf("load params: %w", err)
	}

	return p, nil
}
