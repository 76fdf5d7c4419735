package harness

import (
	"fmt"
	"strings"
)

// AssertionError describes one failed assertion with enough context to
// debug it without re-running the scenario.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
	Motifs   []string
}

func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  actual:   %s\n", e.Actual)

	fmt.Fprintf(&buf, "mined motifs:\n")
	for i, m := range e.Motifs {
		fmt.Fprintf(&buf, "  [%d] %s\n", i+1, m)
	}

	return buf.String()
}

// EvaluateAssertions checks every assertion against the result. Returns one
// message per failure; an empty slice means the scenario passed.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertMotifsContain:
			err = assertMotifsContain(result, assertion)
		case AssertMotifsAbsent:
			err = assertMotifsAbsent(result, assertion)
		case AssertMotifCount:
			err = assertMotifCount(result, assertion)
		case AssertSequence:
			err = assertSequence(result, assertion)
		case AssertCategoryCount:
			err = assertCategoryCount(result, assertion)
		default:
			err = fmt.Errorf("assertions[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}

func assertMotifsContain(result *Result, assertion Assertion) error {
	for _, m := range result.Motifs {
		if m.Motif == assertion.Motif {
			return nil
		}
	}

	return &AssertionError{
		Type:     AssertMotifsContain,
		Expected: fmt.Sprintf("motif %s present", assertion.Motif),
		Actual:   "not found",
		Motifs:   result.motifStrings(),
	}
}

func assertMotifsAbsent(result *Result, assertion Assertion) error {
	for _, m := range result.Motifs {
		if m.Motif == assertion.Motif {
			return &AssertionError{
				Type:     AssertMotifsAbsent,
				Expected: fmt.Sprintf("motif %s absent", assertion.Motif),
				Actual:   "found",
				Motifs:   result.motifStrings(),
			}
		}
	}
	return nil
}

func assertMotifCount(result *Result, assertion Assertion) error {
	if len(result.Motifs) != assertion.Count {
		return &AssertionError{
			Type:     AssertMotifCount,
			Expected: fmt.Sprintf("%d motif(s)", assertion.Count),
			Actual:   fmt.Sprintf("%d motif(s)", len(result.Motifs)),
			Motifs:   result.motifStrings(),
		}
	}
	return nil
}

func assertSequence(result *Result, assertion Assertion) error {
	match := len(result.Sequence) == len(assertion.Symbols)
	if match {
		for i, sym := range assertion.Symbols {
			if result.Sequence[i] != sym {
				match = false
				break
			}
		}
	}

	if !match {
		return &AssertionError{
			Type:     AssertSequence,
			Expected: strings.Join(assertion.Symbols, " "),
			Actual:   strings.Join(result.Sequence, " "),
			Motifs:   result.motifStrings(),
		}
	}
	return nil
}

func assertCategoryCount(result *Result, assertion Assertion) error {
	count := 0
	for _, m := range result.Motifs {
		if m.Category == assertion.Category {
			count++
		}
	}

	if count != assertion.Count {
		return &AssertionError{
			Type:     AssertCategoryCount,
			Expected: fmt.Sprintf("%d motif(s) in category %q", assertion.Count, assertion.Category),
			Actual:   fmt.Sprintf("%d motif(s)", count),
			Motifs:   result.motifStrings(),
		}
	}
	return nil
}
