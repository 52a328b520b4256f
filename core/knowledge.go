package core

import (
	"strings"

	"github.com/google/uuid"
)

// Category is a topic bucket (accounts, cards, ...) whose keywords bias
// matching toward questions tagged with it. Categories are static for the
// lifetime of a session.
type Category struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Synthetic question id prefixes. Questions carrying these ids exist only for
// the duration of a single turn and must never be persisted or logged as a
// matched question.
const (
	SyntheticIDPrefix = "synthetic-"
	GreetingIDPrefix  = "greeting-"
)

// Question is a stored FAQ entry: canonical question text, its answer and the
// keyword / category tags used for scoring. Real entries are immutable once
// loaded; synthetic entries are constructed transiently per turn to carry an
// informal-path response through the same return type as a real match.
//
// Contract:
//   - ID is unique and stable for real entries
//   - CategoryIDs may reference categories that no longer exist; consumers
//     tolerate dangling references by skipping them
//   - Keywords are matched as lowercase substrings of normalized input.
type Question struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	CategoryIDs []string `json:"category_ids"`
	Keywords    []string `json:"keywords"`
}

// NewSyntheticQuestion builds a transient category-scoped question wrapping an
// informal response. The generated id is prefix-tagged so it can be recognized
// and excluded from persistence.
func NewSyntheticQuestion(userInput, answer, categoryID string) *Question {
	return &Question{
		ID:          SyntheticIDPrefix + uuid.NewString(),
		Question:    userInput,
		Answer:      answer,
		CategoryIDs: []string{categoryID},
		Keywords:    []string{},
	}
}

// NewGreetingQuestion builds a transient question for a pure informality such
// as a greeting, with no category attached.
func NewGreetingQuestion(userInput, answer string) *Question {
	return &Question{
		ID:          GreetingIDPrefix + uuid.NewString(),
		Question:    userInput,
		Answer:      answer,
		CategoryIDs: []string{},
		Keywords:    []string{},
	}
}

// IsSynthetic reports whether the question was constructed for a single turn
// rather than loaded from the knowledge base.
func (q *Question) IsSynthetic() bool {
	return strings.HasPrefix(q.ID, SyntheticIDPrefix) || strings.HasPrefix(q.ID, GreetingIDPrefix)
}

// HasCategory reports whether the question is tagged with the given category id.
func (q *Question) HasCategory(categoryID string) bool {
	for _, id := range q.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

// KnowledgeStore exposes the read-only banking Q&A knowledge base. Contents
// are immutable during a session; implementations must return stable ordering
// so tie-breaks on "first in store order" are deterministic.
type KnowledgeStore interface {
	// Categories returns all categories in store order.
	Categories() ([]Category, error)
	// Questions returns all questions in store order.
	Questions() ([]Question, error)
	// QuestionsByCategory returns the subset of Questions tagged with the
	// given category id, preserving store order.
	QuestionsByCategory(categoryID string) ([]Question, error)
}
