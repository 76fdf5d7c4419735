package mine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weftworks/weft/internal/testutil"
)

func TestFileStructuralHotspot(t *testing.T) {
	trace := testutil.TraceOf()
	for i := 0; i < 6; i++ {
		trace.Events = append(trace.Events, testutil.EditEvent("file.modify", "a.go"))
	}

	motifs := FileStructural(trace)

	assert.Equal(t, []string{"HOTSPOT_6"}, motifs, "more than five edits to one file")
}

func TestFileStructuralDependencyChase(t *testing.T) {
	trace := testutil.TraceOf()
	for _, path := range []string{"a.go", "b.go", "c.go", "d.go", "e.go"} {
		trace.Events = append(trace.Events, testutil.EditEvent("file.modify", path))
	}

	motifs := FileStructural(trace)

	assert.Equal(t, []string{"DEPENDENCY_CHASE"}, motifs, "four switches, all to new files")
}

func TestFileStructuralIterativeRefine(t *testing.T) {
	trace := testutil.TraceOf()
	for _, path := range []string{"a.go", "b.go", "a.go"} {
		trace.Events = append(trace.Events, testutil.EditEvent("file.modify", path))
	}

	motifs := FileStructural(trace)

	assert.Equal(t, []string{"ITERATIVE_REFINE"}, motifs,
		"a->b then b->a returns to the file just left")
}

func TestFileStructuralIgnoresPathlessEvents(t *testing.T) {
	trace := testutil.TraceOf("git.commit", "run.tests")
	for _, path := range []string{"a.go", "b.go", "a.go"} {
		trace.Events = append(trace.Events, testutil.EditEvent("file.modify", path))
	}

	motifs := FileStructural(trace)

	assert.Equal(t, []string{"ITERATIVE_REFINE"}, motifs,
		"events without a file path neither switch nor edit")
}

func TestFileStructuralFileFieldFallback(t *testing.T) {
	// Details may carry the path under "file" instead of "file_path".
	trace := testutil.TraceOf()
	for i := 0; i < 6; i++ {
		event := testutil.Event("file.modify")
		event.Details.Fields = map[string]any{"file": "a.go"}
		trace.Events = append(trace.Events, event)
	}

	assert.Equal(t, []string{"HOTSPOT_6"}, FileStructural(trace))
}

func TestFileStructuralQuietTrace(t *testing.T) {
	trace := testutil.TraceOf("file.create", "git.commit")

	assert.Empty(t, FileStructural(trace), "no file details, no motifs")
	assert.Nil(t, FileStructural(nil))
}
