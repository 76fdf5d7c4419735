package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot is the golden-file representation of one scenario's mining
// output. Field order is fixed by the struct, so serialization is
// deterministic.
type Snapshot struct {
	Scenario string        `json:"scenario"`
	Sequence []string      `json:"sequence"`
	Motifs   []MotifRecord `json:"motifs"`
}

// RunWithGolden executes a scenario and compares its full mining snapshot
// against testdata/golden/{scenario.Name}.golden. Assertion failures inside
// the scenario are also test failures.
//
// To regenerate golden files:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		t.Fatalf("run scenario %s: %v", scenario.Name, err)
	}
	for _, msg := range result.Errors {
		t.Errorf("scenario %s: %s", scenario.Name, msg)
	}

	AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an already-computed result against its golden file.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	snapshot := Snapshot{
		Scenario: name,
		Sequence: result.Sequence,
		Motifs:   result.Motifs,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}
