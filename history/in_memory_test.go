package history

import (
	"errors"
	"testing"

	"github.com/bankbuddy/bankbuddy/core"
)

// Interface compliance (compile-time assertion)
var _ core.HistoryStore = (*InMemoryStore)(nil)

func strPtr(s string) *string { return &s }

func TestInMemoryStore_RoundTrip(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.LogInteraction("how do i open an account", "visit any branch", strPtr("open-account")); err != nil {
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
	// append order preserved, fields verbatim
	if entries[0].UserQuery != "how do i open an account" || entries[0].BotResponse != "visit any branch" {
		t.Fatalf("unexpected first entry: %#v", entries[0])
	}
	if entries[0].MatchedQuestionID == nil || *entries[0].MatchedQuestionID != "open-account" {
		t.Fatalf("expected matched id, got %#v", entries[0].MatchedQuestionID)
	}
	if entries[1].MatchedQuestionID != nil {
		t.Fatalf("expected unmatched entry, got %#v", entries[1].MatchedQuestionID)
	}
	if entries[0].ID == "" || entries[1].ID == "" || entries[0].ID >= entries[1].ID {
		t.Fatalf("expected increasing ids, got %q then %q", entries[0].ID, entries[1].ID)
	}
}

func TestInMemoryStore_UnansweredQueries(t *testing.T) {
	store := NewInMemoryStore()
	for i := 0; i < 3; i++ {
		_ = store.LogInteraction("Crypto Wallet?", "no idea", nil)
	}
	_ = store.LogInteraction("  crypto wallet?  ", "no idea", nil) // normalizes into the same bucket
	_ = store.LogInteraction("open account", "sure", strPtr("open-account"))
	_ = store.LogInteraction("tax forms", "no idea", nil)

	unanswered, err := store.UnansweredQueries()
	if err != nil {
		t.Fatalf("unanswered failed: %v", err)
	}
	if len(unanswered) != 2 {
		t.Fatalf("expected 2 groups, got %#v", unanswered)
	}
	if unanswered[0].Query != "crypto wallet?" || unanswered[0].Count != 4 {
		t.Fatalf("expected most frequent first, got %#v", unanswered[0])
	}
	if unanswered[1].Query != "tax forms" || unanswered[1].Count != 1 {
		t.Fatalf("unexpected second group: %#v", unanswered[1])
	}
}

func TestInMemoryStore_MarkHelpfulness(t *testing.T) {
	store := NewInMemoryStore()
	_ = store.LogInteraction("q", "a", nil)
	entries, _ := store.History()

	if err := store.MarkHelpfulness(entries[0].ID, true); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	entries, _ = store.History()
	if entries[0].WasHelpful == nil || !*entries[0].WasHelpful {
		t.Fatalf("expected helpful flag set, got %#v", entries[0].WasHelpful)
	}

	if err := store.MarkHelpfulness("does_not_exist", false); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestInMemoryStore_HistoryReturnsCopy(t *testing.T) {
	store := NewInMemoryStore()
	_ = store.LogInteraction("q", "a", nil)
	entries, _ := store.History()
	entries[0].BotResponse = "mutated"
	again, _ := store.History()
	if again[0].BotResponse != "a" {
		t.Fatalf("expected copy isolation, got %q", again[0].BotResponse)
	}
}
