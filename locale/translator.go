// Package locale provides the bot's message catalog. Translations are
// embedded as YAML and resolved with a language → English → key fallback
// chain so a missing entry never fails a turn.
package locale

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bankbuddy/bankbuddy/logging"
)

// Language identifies a supported catalog language.
type Language string

// Supported languages.
const (
	English Language = "en"
	Hindi   Language = "hi"
	Tamil   Language = "ta"
	Telugu  Language = "te"
)

//go:embed translations.yaml
var translationsYAML []byte

// Translator resolves message keys against the embedded catalog for a fixed
// language. It is immutable after construction and safe for concurrent use.
type Translator struct {
	table  map[string]map[string]string
	lang   Language
	logger logging.Logger
}

// Options configures Translator construction.
type Options struct {
	// Logger receives warnings about missing keys. Defaults to NoOpLogger.
	Logger logging.Logger
}

// New builds a Translator for the given language from the embedded catalog.
func New(lang Language, optFns ...func(o *Options)) (*Translator, error) {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	var table map[string]map[string]string
	if err := yaml.Unmarshal(translationsYAML, &table); err != nil {
		return nil, fmt.Errorf("failed to decode translation catalog: %w", err)
	}
	return &Translator{table: table, lang: lang, logger: opts.Logger}, nil
}

// MustNew is New but panics on catalog decode failure. The catalog is
// embedded at build time, so a failure here is a programming error.
func MustNew(lang Language, optFns ...func(o *Options)) *Translator {
	t, err := New(lang, optFns...)
	if err != nil {
		panic(err)
	}
	return t
}

// Language returns the translator's configured language.
func (t *Translator) Language() Language { return t.lang }

// T resolves a message key, substituting positional parameters {0}, {1}, ...
// Resolution falls back to English when the configured language has no entry,
// and to the key itself when the key is missing entirely.
func (t *Translator) T(key string, params ...string) string {
	entry, ok := t.table[key]
	if !ok {
		t.logger.Warn("translation missing", "key", key)
		return key
	}
	text, ok := entry[string(t.lang)]
	if !ok || text == "" {
		text, ok = entry[string(English)]
		if !ok || text == "" {
			t.logger.Warn("translation missing", "key", key, "language", string(t.lang))
			return key
		}
	}
	for i, p := range params {
		text = strings.ReplaceAll(text, fmt.Sprintf("{%d}", i), p)
	}
	return text
}
