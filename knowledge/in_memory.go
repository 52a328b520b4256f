package knowledge

import (
	"sync"

	"github.com/bankbuddy/bankbuddy/core"
	"github.com/bankbuddy/bankbuddy/logging"
)

// InMemoryStore is a process-local core.KnowledgeStore seeded with the
// default banking dataset. Reads return defensive copies in stable store
// order; Load swaps the whole dataset atomically after validation.
type InMemoryStore struct {
	mu         sync.RWMutex
	categories []core.Category
	questions  []core.Question
	logger     logging.Logger
}

// Options configures InMemoryStore construction.
type Options struct {
	// Categories and Questions replace the default seed dataset. They pass
	// through the same validation as Load.
	Categories []core.Category
	Questions  []core.Question
	// Logger receives warnings about dropped malformed records.
	Logger logging.Logger
}

// NewInMemoryStore constructs a knowledge store holding the default banking
// dataset unless overridden via options.
func NewInMemoryStore(optFns ...func(o *Options)) *InMemoryStore {
	opts := Options{
		Categories: DefaultCategories(),
		Questions:  DefaultQuestions(),
		Logger:     logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	s := &InMemoryStore{logger: opts.Logger}
	s.Load(opts.Categories, opts.Questions)
	return s
}

// Load validates, repairs and installs a replacement dataset. Malformed
// records (empty ids, empty question or answer text, duplicate ids) are
// dropped with a warning rather than trusted; nil keyword/category slices are
// repaired to empty ones so consumers can iterate unconditionally.
func (s *InMemoryStore) Load(categories []core.Category, questions []core.Question) {
	cats := make([]core.Category, 0, len(categories))
	seenCat := make(map[string]bool, len(categories))
	for _, c := range categories {
		if c.ID == "" || c.Name == "" {
			s.logger.Warn("dropping malformed category", "id", c.ID)
			continue
		}
		if seenCat[c.ID] {
			s.logger.Warn("dropping duplicate category", "id", c.ID)
			continue
		}
		seenCat[c.ID] = true
		if c.Keywords == nil {
			c.Keywords = []string{}
		}
		cats = append(cats, c)
	}

	qs := make([]core.Question, 0, len(questions))
	seenQ := make(map[string]bool, len(questions))
	for _, q := range questions {
		if q.ID == "" || q.Question == "" || q.Answer == "" {
			s.logger.Warn("dropping malformed question", "id", q.ID)
			continue
		}
		if seenQ[q.ID] {
			s.logger.Warn("dropping duplicate question", "id", q.ID)
			continue
		}
		seenQ[q.ID] = true
		if q.CategoryIDs == nil {
			q.CategoryIDs = []string{}
		}
		if q.Keywords == nil {
			q.Keywords = []string{}
		}
		qs = append(qs, q)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = cats
	s.questions = qs
}

// Categories returns a copy of all categories in store order.
func (s *InMemoryStore) Categories() ([]core.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

// Questions returns a copy of all questions in store order.
func (s *InMemoryStore) Questions() ([]core.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Question, len(s.questions))
	copy(out, s.questions)
	return out, nil
}

// QuestionsByCategory returns the questions tagged with categoryID,
// preserving store order.
func (s *InMemoryStore) QuestionsByCategory(categoryID string) ([]core.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Question, 0)
	for _, q := range s.questions {
		if q.HasCategory(categoryID) {
			out = append(out, q)
		}
	}
	return out, nil
}
