package core

import "time"

// ChatHistoryEntry records one completed turn: what the user asked, what the
// bot answered, and which real question (if any) produced the answer.
// Entries are append-only; the only later mutation is setting WasHelpful.
//
// MatchedQuestionID is nil exactly when the response came from a synthetic,
// informal or default path. It never references a synthetic id.
type ChatHistoryEntry struct {
	ID                string    `json:"id"`
	UserQuery         string    `json:"user_query"`
	BotResponse       string    `json:"bot_response"`
	MatchedQuestionID *string   `json:"matched_question_id,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
	WasHelpful        *bool     `json:"was_helpful,omitempty"`
}

// UnansweredQuery aggregates history entries with no matched question by
// normalized query text.
type UnansweredQuery struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// HistoryStore persists chat interactions. It is the only mutable store in
// the system; implementations assume a single writer per session and need not
// guard against concurrent external writers.
type HistoryStore interface {
	// LogInteraction appends a new history entry. matchedQuestionID is nil
	// for synthetic / informal / default responses.
	LogInteraction(userQuery, botResponse string, matchedQuestionID *string) error
	// History returns all entries in insertion order.
	History() ([]ChatHistoryEntry, error)
	// UnansweredQueries groups unmatched entries by normalized query text,
	// sorted by count descending.
	UnansweredQueries() ([]UnansweredQuery, error)
	// MarkHelpfulness sets the WasHelpful flag on an existing entry.
	MarkHelpfulness(id string, wasHelpful bool) error
}
