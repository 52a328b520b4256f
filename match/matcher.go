// Package match selects the best knowledge-base answer for free-text input.
// Matching is deliberately mechanical: informal-intent short-circuit, direct
// substring containment, then additive keyword-overlap scoring. There is no
// stemming, fuzziness or language understanding.
package match

import (
	"sort"
	"strings"

	"github.com/bankbuddy/bankbuddy/core"
	"github.com/bankbuddy/bankbuddy/intent"
	"github.com/bankbuddy/bankbuddy/internal/textutil"
	"github.com/bankbuddy/bankbuddy/logging"
)

// Score weights. Question-specific keywords outweigh category keywords; the
// category hint sits in between.
const (
	categoryHintScore    = 2
	questionKeywordScore = 3
	categoryKeywordScore = 1
)

// hintRules map input keywords to a category hint in fixed priority order.
// At most one hint applies per input (first matching rule wins).
var hintRules = []struct {
	categoryID string
	keywords   []string
}{
	{"accounts", []string{"account", "balance", "statement"}},
	{"cards", []string{"card", "credit", "debit"}},
	{"loans", []string{"loan", "mortgage", "interest"}},
	{"transfers", []string{"transfer", "payment", "bill"}},
	{"security", []string{"secure", "password", "login"}},
}

// ContainsBankingKeyword reports whether the normalized input mentions any of
// the category hint keywords. The controller uses this to pick between the
// short-query prompt and the generic default response.
func ContainsBankingKeyword(input string) bool {
	for _, rule := range hintRules {
		if textutil.ContainsAny(input, rule.keywords...) {
			return true
		}
	}
	return false
}

// categoryHint returns the single category implied by the input, or "" when
// no rule matches.
func categoryHint(input string) string {
	for _, rule := range hintRules {
		if textutil.ContainsAny(input, rule.keywords...) {
			return rule.categoryID
		}
	}
	return ""
}

// Matcher resolves free-text user input to the best-matching Question.
type Matcher struct {
	knowledge core.KnowledgeStore
	detector  *intent.Detector
	logger    logging.Logger
}

// Options configures Matcher construction.
type Options struct {
	// Logger receives match outcomes and swallowed store failures.
	Logger logging.Logger
}

// NewMatcher constructs a Matcher over the given knowledge store and
// informal-intent detector.
func NewMatcher(knowledge core.KnowledgeStore, detector *intent.Detector, optFns ...func(o *Options)) *Matcher {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Matcher{knowledge: knowledge, detector: detector, logger: opts.Logger}
}

// FindBestMatch returns the best-matching Question for the input, a synthetic
// Question carrying an informal response, or nil when nothing scores above
// zero. Store failures are logged and degrade to nil; the caller never
// receives an error.
func (m *Matcher) FindBestMatch(userInput string) *core.Question {
	input := textutil.Normalize(userInput)

	result, err := m.detector.Detect(input)
	if err != nil {
		m.logger.Warn("informal intent detection failed", "error", err)
	} else if result.Response != "" {
		return m.resolveInformal(userInput, result)
	}

	questions, err := m.knowledge.Questions()
	if err != nil {
		m.logger.Warn("question lookup failed", "error", err)
		return nil
	}

	// Direct containment beats scoring: the stored question text already
	// includes the whole input.
	for i := range questions {
		if strings.Contains(strings.ToLower(questions[i].Question), input) {
			return &questions[i]
		}
	}

	categories, err := m.knowledge.Categories()
	if err != nil {
		m.logger.Warn("category lookup failed", "error", err)
		return nil
	}
	categoriesByID := make(map[string]core.Category, len(categories))
	for _, c := range categories {
		categoriesByID[c.ID] = c
	}

	hint := categoryHint(input)

	type scored struct {
		question *core.Question
		score    int
	}
	matches := make([]scored, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		score := 0
		if hint != "" && q.HasCategory(hint) {
			score += categoryHintScore
		}
		for _, kw := range q.Keywords {
			if strings.Contains(input, strings.ToLower(kw)) {
				score += questionKeywordScore
			}
		}
		for _, catID := range q.CategoryIDs {
			category, ok := categoriesByID[catID]
			if !ok {
				// Dangling category reference; contributes nothing.
				continue
			}
			for _, kw := range category.Keywords {
				if strings.Contains(input, strings.ToLower(kw)) {
					score += categoryKeywordScore
				}
			}
		}
		matches = append(matches, scored{question: q, score: score})
	}

	// Stable sort keeps store order as the tie-break.
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	if len(matches) > 0 && matches[0].score > 0 {
		m.logger.Debug("keyword match", "question_id", matches[0].question.ID, "score", matches[0].score)
		return matches[0].question
	}

	m.logger.Debug("no match", "input_len", len(input))
	return nil
}

// resolveInformal converts a detector hit into a Question: a real one when the
// detector named a question id (soft-failing to nil if the id cannot be
// resolved), otherwise a synthetic per-turn question.
func (m *Matcher) resolveInformal(userInput string, result intent.Result) *core.Question {
	if result.MatchedQuestionID != "" {
		questions, err := m.knowledge.Questions()
		if err != nil {
			m.logger.Warn("question lookup failed", "error", err)
			return nil
		}
		for i := range questions {
			if questions[i].ID == result.MatchedQuestionID {
				return &questions[i]
			}
		}
		m.logger.Warn("informal match references unknown question", "question_id", result.MatchedQuestionID)
		return nil
	}
	if result.CategoryID != "" {
		return core.NewSyntheticQuestion(userInput, result.Response, result.CategoryID)
	}
	return core.NewGreetingQuestion(userInput, result.Response)
}
