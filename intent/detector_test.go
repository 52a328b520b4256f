package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankbuddy/bankbuddy/knowledge"
	"github.com/bankbuddy/bankbuddy/locale"
)

func newDetector(t *testing.T) *Detector {
	t.Helper()
	translator, err := locale.New(locale.English)
	require.NoError(t, err)
	return NewDetector(knowledge.NewInMemoryStore(), translator)
}

func TestDetector_Greetings(t *testing.T) {
	d := newDetector(t)
	inputs := []string{
		"hi", "Hello", "HEY", "good morning", "Good Afternoon", "good evening", "howdy",
		"hi there", "hello, I need some help", "GOOD MORNING everyone",
	}
	for _, in := range inputs {
		res, err := d.Detect(in)
		require.NoError(t, err, in)
		assert.NotEmpty(t, res.Response, in)
		assert.Empty(t, res.CategoryID, in)
		assert.Empty(t, res.MatchedQuestionID, in)
	}
}

func TestDetector_GreetingRequiresWordBoundary(t *testing.T) {
	d := newDetector(t)
	// "hithere" starts with "hi" but not at a word boundary
	res, err := d.Detect("hithere")
	require.NoError(t, err)
	assert.Empty(t, res.Response)
}

func TestDetector_LoanProcess(t *testing.T) {
	d := newDetector(t)
	res, err := d.Detect("loan process")
	require.NoError(t, err)
	assert.Equal(t, "loans", res.CategoryID)
	assert.Equal(t, "mortgage-process", res.MatchedQuestionID)
	assert.Contains(t, res.Response, "Pre-approval")
}

func TestDetector_LoanClarify(t *testing.T) {
	d := newDetector(t)
	res, err := d.Detect("I want a mortgage")
	require.NoError(t, err)
	assert.Equal(t, "loans", res.CategoryID)
	assert.Empty(t, res.MatchedQuestionID)
	assert.NotEmpty(t, res.Response)
}

func TestDetector_NoInformalIntent(t *testing.T) {
	d := newDetector(t)
	res, err := d.Detect("what are your card fees")
	require.NoError(t, err)
	assert.Empty(t, res.Response)
	assert.Empty(t, res.CategoryID)
	assert.Empty(t, res.MatchedQuestionID)
}
