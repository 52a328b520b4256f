package history

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/bankbuddy/bankbuddy/core"
)

// Interface compliance (compile-time assertion)
var _ core.HistoryStore = (*SQLiteStore)(nil)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := newSQLiteStore(t)
	if err := store.LogInteraction("open account", "visit any branch", strPtr("open-account")); err != nil {
		t.Fatalf("log failed: %v", err)
	}
	if err := store.LogInteraction("xyzzy", "could you rephrase?", nil); err != nil {
		t.Fatalf("log failed: %v", err)
	}

	entries, err := store.History()
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].UserQuery != "open account" || entries[0].MatchedQuestionID == nil || *entries[0].MatchedQuestionID != "open-account" {
		t.Fatalf("unexpected first entry: %#v", entries[0])
	}
	if entries[1].MatchedQuestionID != nil {
		t.Fatalf("expected unmatched second entry: %#v", entries[1])
	}
	if entries[0].Timestamp.IsZero() || entries[1].Timestamp.Before(entries[0].Timestamp) {
		t.Fatalf("expected ordered timestamps: %v then %v", entries[0].Timestamp, entries[1].Timestamp)
	}
}

func TestSQLiteStore_UnansweredQueries(t *testing.T) {
	store := newSQLiteStore(t)
	_ = store.LogInteraction("Crypto Wallet?", "no idea", nil)
	_ = store.LogInteraction("crypto wallet?", "no idea", nil)
	_ = store.LogInteraction("tax forms", "no idea", nil)
	_ = store.LogInteraction("open account", "sure", strPtr("open-account"))

	unanswered, err := store.UnansweredQueries()
	if err != nil {
		t.Fatalf("unanswered failed: %v", err)
	}
	if len(unanswered) != 2 {
		t.Fatalf("expected 2 groups, got %#v", unanswered)
	}
	if unanswered[0].Query != "crypto wallet?" || unanswered[0].Count != 2 {
		t.Fatalf("expected most frequent first, got %#v", unanswered[0])
	}
}

func TestSQLiteStore_MarkHelpfulness(t *testing.T) {
	store := newSQLiteStore(t)
	_ = store.LogInteraction("q", "a", nil)
	entries, _ := store.History()

	if err := store.MarkHelpfulness(entries[0].ID, false); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	entries, _ = store.History()
	if entries[0].WasHelpful == nil || *entries[0].WasHelpful {
		t.Fatalf("expected helpful=false, got %#v", entries[0].WasHelpful)
	}

	if err := store.MarkHelpfulness("does_not_exist", true); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}
