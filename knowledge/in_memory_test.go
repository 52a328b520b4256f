package knowledge

import (
	"reflect"
	"testing"

	"github.com/bankbuddy/bankbuddy/core"
)

// Interface compliance (compile-time assertion)
var _ core.KnowledgeStore = (*InMemoryStore)(nil)

func TestInMemoryStore_SeededDefaults(t *testing.T) {
	store := NewInMemoryStore()
	cats, err := store.Categories()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cats) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(cats))
	}
	qs, err := store.Questions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 15 {
		t.Fatalf("expected 15 questions, got %d", len(qs))
	}
	if qs[0].ID != "open-account" {
		t.Fatalf("expected stable store order, got first id %q", qs[0].ID)
	}
}

func TestInMemoryStore_QuestionsByCategoryIdempotent(t *testing.T) {
	store := NewInMemoryStore()
	first, err := store.QuestionsByCategory("loans")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := store.QuestionsByCategory("loans")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical ordered results, got %#v vs %#v", first, second)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 loan questions, got %d", len(first))
	}
	for _, q := range first {
		if !q.HasCategory("loans") {
			t.Fatalf("question %q not tagged with loans", q.ID)
		}
	}
}

func TestInMemoryStore_QuestionsByCategoryUnknown(t *testing.T) {
	store := NewInMemoryStore()
	qs, err := store.QuestionsByCategory("does-not-exist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 0 {
		t.Fatalf("expected empty result, got %d", len(qs))
	}
}

func TestInMemoryStore_LoadValidatesAndRepairs(t *testing.T) {
	store := NewInMemoryStore()
	store.Load(
		[]core.Category{
			{ID: "a", Name: "A"},
			{ID: "", Name: "broken"},
			{ID: "a", Name: "duplicate"},
		},
		[]core.Question{
			{ID: "q1", Question: "Q?", Answer: "A."},
			{ID: "", Question: "missing id", Answer: "x"},
			{ID: "q2", Question: "", Answer: "missing question"},
			{ID: "q1", Question: "dupe", Answer: "dupe"},
		},
	)

	cats, _ := store.Categories()
	if len(cats) != 1 || cats[0].Name != "A" {
		t.Fatalf("expected single repaired category, got %#v", cats)
	}
	if cats[0].Keywords == nil {
		t.Fatalf("expected nil keywords repaired to empty slice")
	}

	qs, _ := store.Questions()
	if len(qs) != 1 || qs[0].ID != "q1" || qs[0].Question != "Q?" {
		t.Fatalf("expected single valid question, got %#v", qs)
	}
	if qs[0].CategoryIDs == nil || qs[0].Keywords == nil {
		t.Fatalf("expected nil slices repaired, got %#v", qs[0])
	}
}

func TestInMemoryStore_ReadsReturnCopies(t *testing.T) {
	store := NewInMemoryStore()
	qs, _ := store.Questions()
	qs[0].ID = "mutated"
	again, _ := store.Questions()
	if again[0].ID != "open-account" {
		t.Fatalf("expected copy isolation, got %q", again[0].ID)
	}
}
