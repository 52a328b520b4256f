// Package intent recognizes informal conversational patterns (greetings and
// vague loan mentions) ahead of keyword matching. Detection is rule-based:
// a fixed greeting set and a narrow loan/mortgage phrasing check. Anything
// else falls through to the scoring matcher.
package intent

import (
	"strings"

	"github.com/bankbuddy/bankbuddy/core"
	"github.com/bankbuddy/bankbuddy/internal/textutil"
	"github.com/bankbuddy/bankbuddy/locale"
)

// greetings are matched against the start of the normalized input, followed
// by a word boundary.
var greetings = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening", "howdy"}

// loansCategoryID is the knowledge-base category consulted for loan intents.
const loansCategoryID = "loans"

// Result is the outcome of informal-intent detection. An empty Response means
// no informal intent was recognized and keyword matching should proceed.
type Result struct {
	Response          string
	CategoryID        string
	MatchedQuestionID string
}

// Detector applies the informal-intent rules against the knowledge store.
type Detector struct {
	knowledge  core.KnowledgeStore
	translator *locale.Translator
}

// NewDetector constructs a Detector reading from the given knowledge store
// and phrasing its canned responses via the translator.
func NewDetector(knowledge core.KnowledgeStore, translator *locale.Translator) *Detector {
	return &Detector{knowledge: knowledge, translator: translator}
}

// Detect runs greeting detection first, then loan-intent detection. The
// returned error reflects a knowledge store failure during loan lookup;
// callers treat it as "no detection".
func (d *Detector) Detect(input string) (Result, error) {
	input = textutil.Normalize(input)

	for _, g := range greetings {
		if input == g || strings.HasPrefix(input, g+" ") {
			return Result{Response: d.translator.T("greeting")}, nil
		}
	}

	if textutil.ContainsAny(input, "loan", "mortgage") {
		return d.detectLoanIntent(input)
	}

	return Result{}, nil
}

// detectLoanIntent looks for loan questions the user is plausibly after. A
// "process" mention resolves directly to the first loan question whose text
// contains "process"; otherwise any qualifying loan question triggers a
// clarifying prompt scoped to the loans category.
func (d *Detector) detectLoanIntent(input string) (Result, error) {
	questions, err := d.knowledge.Questions()
	if err != nil {
		return Result{}, err
	}

	var loanQuestions []core.Question
	for _, q := range questions {
		if q.HasCategory(loansCategoryID) && textutil.ContainsAny(strings.ToLower(q.Question), "process", "apply", "how") {
			loanQuestions = append(loanQuestions, q)
		}
	}

	if strings.Contains(input, "process") {
		for _, q := range loanQuestions {
			if strings.Contains(strings.ToLower(q.Question), "process") {
				return Result{
					Response:          q.Answer,
					CategoryID:        loansCategoryID,
					MatchedQuestionID: q.ID,
				}, nil
			}
		}
	}

	if len(loanQuestions) > 0 {
		return Result{
			Response:   d.translator.T("loanClarify"),
			CategoryID: loansCategoryID,
		}, nil
	}

	return Result{}, nil
}
