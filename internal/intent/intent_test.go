package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkersSingleCategory(t *testing.T) {
	assert.Equal(t, []string{"INTENT_DEBUG"}, Markers("there is a crash on startup"))
	assert.Equal(t, []string{"INTENT_DEPLOY"}, Markers("ship it to staging"))
}

func TestMarkersMultipleCategoriesInTableOrder(t *testing.T) {
	markers := Markers("fix the bug and add a test")

	assert.Equal(t, []string{"INTENT_DEBUG", "INTENT_FEATURE", "INTENT_TEST"}, markers,
		"multi-match prompts emit markers in table order")
}

func TestMarkersCaseInsensitive(t *testing.T) {
	assert.Equal(t, Markers("REFACTOR this"), Markers("refactor this"))
}

func TestMarkersFallback(t *testing.T) {
	assert.Equal(t, []string{Other}, Markers("zzzzzz"))
	assert.Equal(t, []string{Other}, Markers(""), "empty text is still a prompt")
}

func TestMarkersOneMarkerPerCategory(t *testing.T) {
	// Several keywords of one category still emit the category once.
	assert.Equal(t, []string{"INTENT_DEBUG"}, Markers("debug the error in the broken step"))
}

func TestMarkersSubstringMatch(t *testing.T) {
	// Matching is substring-based, not word-based. "pr" inside "problem"
	// also triggers the review category.
	markers := Markers("problem")

	assert.Contains(t, markers, "INTENT_DEBUG")
	assert.Contains(t, markers, "INTENT_REVIEW")
}

func TestCategories(t *testing.T) {
	cats := Categories()

	assert.Len(t, cats, 10)
	assert.Equal(t, "INTENT_DEBUG", cats[0])
	assert.Equal(t, "INTENT_REVIEW", cats[9])
	assert.NotContains(t, cats, Other, "the fallback is not a fixed category")
}
