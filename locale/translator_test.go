package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_English(t *testing.T) {
	tr, err := New(English)
	require.NoError(t, err)
	assert.Contains(t, tr.T("welcomeMessage"), "BankBuddy")
	assert.Equal(t, "Bank Accounts", tr.T("category_accounts"))
}

func TestTranslator_Hindi(t *testing.T) {
	tr, err := New(Hindi)
	require.NoError(t, err)
	assert.Contains(t, tr.T("welcomeMessage"), "बैंकबडी")
}

func TestTranslator_FallsBackToEnglish(t *testing.T) {
	tr, err := New(Tamil)
	require.NoError(t, err)
	// shortQueryResponse only exists in English
	assert.Contains(t, tr.T("shortQueryResponse"), "tell me a bit more")
}

func TestTranslator_MissingKeyReturnsKey(t *testing.T) {
	tr, err := New(English)
	require.NoError(t, err)
	assert.Equal(t, "no_such_key", tr.T("no_such_key"))
}

func TestTranslator_Parameters(t *testing.T) {
	tr, err := New(English)
	require.NoError(t, err)
	got := tr.T("commonQuestionsAbout", "Bank Accounts")
	assert.Equal(t, "Here are some common questions about Bank Accounts:", got)
}

func TestTranslator_AllLanguagesHaveCoreKeys(t *testing.T) {
	for _, lang := range []Language{English, Hindi, Tamil, Telugu} {
		tr, err := New(lang)
		require.NoError(t, err)
		for _, key := range []string{"welcomeMessage", "defaultResponse", "greeting"} {
			assert.NotEqual(t, key, tr.T(key), "lang=%s key=%s", lang, key)
		}
	}
}
