package mine

import "fmt"

// ParamError reports a mining parameter that would make resource usage
// unbounded. These are caller errors, raised before any mining work starts;
// the mining path itself never fails on input data.
type ParamError struct {
	// Code identifies the violated bound.
	Code ParamErrorCode

	// Param is the offending parameter name.
	Param string

	// Value is the rejected value.
	Value int

	// Limit is the enforced ceiling.
	Limit int
}

// ParamErrorCode categorizes parameter errors.
type ParamErrorCode string

const (
	// ErrCodePatternLenCeiling indicates MaxLen above the hard ceiling.
	// PrefixSpan recursion depth equals MaxLen; an unbounded MaxLen risks
	// exponential blow-up.
	ErrCodePatternLenCeiling ParamErrorCode = "PATTERN_LEN_CEILING"

	// ErrCodeSequenceTooLong indicates an input sequence longer than the
	// frequent-sequence miner accepts. Callers must pre-truncate.
	ErrCodeSequenceTooLong ParamErrorCode = "SEQUENCE_TOO_LONG"

	// ErrCodeNonPositiveParam indicates a parameter that must be >= 1.
	ErrCodeNonPositiveParam ParamErrorCode = "NON_POSITIVE_PARAM"
)

// Error implements the error interface.
func (e *ParamError) Error() string {
	if e.Code == ErrCodeNonPositiveParam {
		return fmt.Sprintf("%s: %s=%d must be at least %d", e.Code, e.Param, e.Value, e.Limit)
	}
	return fmt.Sprintf("%s: %s=%d exceeds limit %d", e.Code, e.Param, e.Value, e.Limit)
}
