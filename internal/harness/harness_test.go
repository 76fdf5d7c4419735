package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEditCommitCycle(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/edit_commit_cycle.yaml")
	require.NoError(t, err)

	result, err := Run(scenario)

	require.NoError(t, err)
	assert.True(t, result.Passed(), "assertion failures: %v", result.Errors)
	assert.Equal(t, []string{"EV_971c41", "EV_46f1a0", "EV_971c41"}, result.Sequence)
	require.Len(t, result.Motifs, 3)
	assert.Equal(t, "CYCLE_EV_971c41_EV_46f1a0", result.Motifs[2].Original)
}

func TestRunDebugPromptFlow(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/debug_prompt_flow.yaml")
	require.NoError(t, err)

	result, err := Run(scenario)

	require.NoError(t, err)
	assert.True(t, result.Passed(), "assertion failures: %v", result.Errors)
	assert.Equal(t, "INTENT_DEBUG", result.Sequence[0], "the marker precedes the prompt's own symbol")
	assert.Len(t, result.Motifs, 11)
}

func TestRunCollectsAssertionFailures(t *testing.T) {
	scenario := &Scenario{
		Name:        "failing",
		Description: "deliberately wrong expectations",
		Trace: []EventStep{
			{Type: "file.create"},
			{Type: "git.commit"},
		},
		Assertions: []Assertion{
			{Type: AssertMotifsContain, Motif: "M_0000000000"},
			{Type: AssertMotifCount, Count: 99},
		},
	}

	result, err := Run(scenario)

	require.NoError(t, err, "failed assertions are collected, not returned as errors")
	assert.False(t, result.Passed())
	assert.Len(t, result.Errors, 2)
}

func TestRunParamOverrides(t *testing.T) {
	one := 1
	scenario := &Scenario{
		Name:        "bounded",
		Description: "max_total caps the unified output",
		Trace: []EventStep{
			{Type: "file.create"},
			{Type: "git.commit"},
			{Type: "file.modify"},
		},
		Params: &ParamOverrides{MaxTotal: &one},
		Assertions: []Assertion{
			{Type: AssertMotifCount, Count: 1},
		},
	}

	result, err := Run(scenario)

	require.NoError(t, err)
	assert.True(t, result.Passed(), "assertion failures: %v", result.Errors)
}

func TestRunInvalidParamsSurface(t *testing.T) {
	twenty := 20
	scenario := &Scenario{
		Name:        "broken-params",
		Description: "pattern length over the ceiling",
		Trace: []EventStep{
			{Type: "file.create"},
			{Type: "git.commit"},
		},
		Params: &ParamOverrides{MaxPatternLen: &twenty},
		Assertions: []Assertion{
			{Type: AssertMotifCount, Count: 0},
		},
	}

	_, err := Run(scenario)

	assert.Error(t, err, "parameter violations are run errors, not assertion failures")
}

func TestRunFileSteps(t *testing.T) {
	scenario := &Scenario{
		Name:        "file-hopping",
		Description: "alternating files emit the refinement motif",
		Trace: []EventStep{
			{Type: "file.modify", File: "a.go"},
			{Type: "file.modify", File: "b.go"},
			{Type: "file.modify", File: "a.go"},
		},
		Assertions: []Assertion{
			{Type: AssertMotifsContain, Motif: "ITERATIVE_REFINE"},
		},
	}

	result, err := Run(scenario)

	require.NoError(t, err)
	assert.True(t, result.Passed(), "assertion failures: %v", result.Errors)
}
