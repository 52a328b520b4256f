package history

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/bankbuddy/bankbuddy/core"
	"github.com/bankbuddy/bankbuddy/internal/textutil"
)

// InMemoryStore is a volatile core.HistoryStore keeping entries in an
// append-only process-local slice. It is safe for concurrent access and best
// suited for tests or ephemeral demo sessions. Returned slices are defensive
// copies to prevent external mutation of internal state.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries []core.ChatHistoryEntry
	lastID  int64
}

// NewInMemoryStore constructs an empty in-memory history store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{entries: []core.ChatHistoryEntry{}}
}

// LogInteraction appends a entry for one completed turn. Entry ids are
// nanosecond timestamps, bumped on collision so ids stay strictly increasing.
func (s *InMemoryStore) LogInteraction(userQuery, botResponse string, matchedQuestionID *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	var matched *string
	if matchedQuestionID != nil {
		v := *matchedQuestionID
		matched = &v
	}

	s.entries = append(s.entries, core.ChatHistoryEntry{
		ID:                strconv.FormatInt(id, 10),
		UserQuery:         userQuery,
		BotResponse:       botResponse,
		MatchedQuestionID: matched,
		Timestamp:         time.Now().UTC(),
	})
	return nil
}

// History returns a copy of all entries in insertion order.
func (s *InMemoryStore) History() ([]core.ChatHistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.ChatHistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// UnansweredQueries groups unmatched entries by normalized query text, sorted
// by count descending. Equal counts keep first-seen order.
func (s *InMemoryStore) UnansweredQueries() ([]core.UnansweredQuery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, e := range s.entries {
		if e.MatchedQuestionID != nil {
			continue
		}
		q := textutil.Normalize(e.UserQuery)
		if _, seen := counts[q]; !seen {
			order = append(order, q)
		}
		counts[q]++
	}

	out := make([]core.UnansweredQuery, 0, len(order))
	for _, q := range order {
		out = append(out, core.UnansweredQuery{Query: q, Count: counts[q]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out, nil
}

// MarkHelpfulness sets the WasHelpful flag on an existing entry.
func (s *InMemoryStore) MarkHelpfulness(id string, wasHelpful bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			v := wasHelpful
			s.entries[i].WasHelpful = &v
			return nil
		}
	}
	return ErrEntryNotFound
}
